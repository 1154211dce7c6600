// Package upload reads the intermediate CSV files and persists each valid
// course record to the courses collection.
package upload

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"catalog/internal/model"
	"catalog/internal/repository"
)

var requiredColumns = []string{"course_name", "course_code", "course_type", "slot"}

// Run uploads every *_data.csv file in inputDir. Invalid rows and failed
// writes are logged per item; one bad record never aborts the batch.
func Run(ctx context.Context, logger zerolog.Logger, validate *validator.Validate, repo repository.CourseRepository, inputDir string) error {
	files, err := filepath.Glob(filepath.Join(inputDir, "*_data.csv"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no *_data.csv files found in %s", inputDir)
	}

	uploaded, rejected := 0, 0
	for _, file := range files {
		n, bad, err := uploadFile(ctx, logger, validate, repo, file)
		if err != nil {
			logger.Error().Err(err).Str("file", file).Msg("failed to process CSV")
			continue
		}
		uploaded += n
		rejected += bad
	}
	logger.Info().Int("uploaded", uploaded).Int("rejected", rejected).Msg("course data upload completed")
	return nil
}

func uploadFile(ctx context.Context, logger zerolog.Logger, validate *validator.Validate, repo repository.CourseRepository, path string) (uploaded, rejected int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	headerRow, err := r.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("reading header: %w", err)
	}
	columns := make(map[string]int, len(headerRow))
	for i, name := range headerRow {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return 0, 0, fmt.Errorf("missing required column %q", name)
		}
	}

	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn().Err(err).Str("file", path).Int("line", line).Msg("skipping unreadable row")
			rejected++
			continue
		}

		course := model.CourseCreate{
			Name: strings.TrimSpace(record[columns["course_name"]]),
			Code: strings.TrimSpace(record[columns["course_code"]]),
			Type: strings.TrimSpace(record[columns["course_type"]]),
			Slot: strings.TrimSpace(record[columns["slot"]]),
		}
		if err := validate.Struct(&course); err != nil {
			logger.Warn().Err(err).Str("file", path).Int("line", line).Str("course_code", course.Code).Msg("invalid course data")
			rejected++
			continue
		}

		if _, err := repo.CreateCourse(ctx, course); err != nil {
			logger.Error().Err(err).Str("course_code", course.Code).Msg("error uploading course data")
			rejected++
			continue
		}
		logger.Info().Str("course_name", course.Name).Msg("uploaded successfully")
		uploaded++
	}
	return uploaded, rejected, nil
}
