// Package consolidate scrapes the per-semester department-course matrices and
// uploads the consolidated catalog, one document per department.
package consolidate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"catalog/internal/catalog"
	"catalog/internal/repository"
	"catalog/internal/scraper"
)

var streams = []string{"btech", "bs"}

// Run reads sem_<n>_<stream>.html files from inputDir for semesters 1-8,
// merges the per-stream scrape results and overwrites each department's
// catalog document. Missing files and failed writes are logged; the batch
// always continues.
func Run(ctx context.Context, logger zerolog.Logger, repo repository.CatalogRepository, inputDir string) error {
	var scraped []catalog.SemesterCourses

	for semester := 1; semester <= 8; semester++ {
		var semesterStreams []map[string]catalog.CodeSet

		for _, stream := range streams {
			path := filepath.Join(inputDir, fmt.Sprintf("sem_%d_%s.html", semester, stream))
			courses, err := scrapeFile(path, semester, logger)
			if err != nil {
				logger.Warn().Err(err).Str("file", path).Msg("skipping stream")
				continue
			}
			if len(courses) > 0 {
				semesterStreams = append(semesterStreams, courses)
			}
		}

		if len(semesterStreams) == 0 {
			logger.Info().Int("semester", semester).Msg("no course data found for semester")
			continue
		}
		scraped = append(scraped, catalog.SemesterCourses{Semester: semester, Streams: semesterStreams})
	}

	consolidated := catalog.Consolidate(scraped)
	if len(consolidated) == 0 {
		return fmt.Errorf("no department course data scraped from %s", inputDir)
	}

	departments := make([]string, 0, len(consolidated))
	for dept := range consolidated {
		departments = append(departments, dept)
	}
	sort.Strings(departments)

	logger.Info().Int("departments", len(departments)).Msg("starting catalog upload")
	for _, dept := range departments {
		if err := repo.SetDepartmentCourses(ctx, dept, consolidated[dept]); err != nil {
			logger.Error().Err(err).Str("department", dept).Msg("failed to upload department catalog")
			continue
		}
		logger.Info().Str("department", dept).Msg("uploaded department catalog")
	}
	return nil
}

func scrapeFile(path string, semester int, logger zerolog.Logger) (map[string]catalog.CodeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scraper.DepartmentCourses(f, scraper.IsFirstYear(semester), logger)
}
