// Package export scrapes course timetable pages and writes the validated
// records to per-department CSV files for the upload step.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"catalog/internal/model"
	"catalog/internal/scraper"
)

// Header matches the intermediate file format consumed by the uploader.
var header = []string{"course_name", "course_code", "course_type", "slot"}

// Run scrapes every *.html file in inputDir and writes a <name>_data.csv per
// file into outputDir, keeping only rows that pass schema validation.
func Run(logger zerolog.Logger, validate *validator.Validate, inputDir, outputDir string) error {
	pages, err := filepath.Glob(filepath.Join(inputDir, "*.html"))
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no .html files found in %s", inputDir)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	for _, page := range pages {
		courses, err := scrapePage(page, logger)
		if err != nil {
			logger.Error().Err(err).Str("file", page).Msg("failed to scrape course page")
			continue
		}

		valid := make([]model.CourseCreate, 0, len(courses))
		for _, course := range courses {
			if err := validate.Struct(&course); err != nil {
				logger.Warn().Err(err).Str("file", page).Str("course_code", course.Code).Msg("dropping invalid course")
				continue
			}
			valid = append(valid, course)
		}

		name := strings.TrimSuffix(filepath.Base(page), ".html")
		name = strings.TrimPrefix(name, "asc_")
		out := filepath.Join(outputDir, name+"_data.csv")
		if err := writeCSV(out, valid); err != nil {
			logger.Error().Err(err).Str("file", out).Msg("failed to write CSV")
			continue
		}
		logger.Info().Str("file", out).Int("courses", len(valid)).Msg("exported course data")
	}
	return nil
}

func scrapePage(path string, logger zerolog.Logger) ([]model.CourseCreate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scraper.ScrapeCourses(f, logger)
}

func writeCSV(path string, courses []model.CourseCreate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, c := range courses {
		if err := w.Write([]string{c.Name, c.Code, c.Type, c.Slot}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
