// Package scraper extracts course records from the institution's
// semi-structured HTML timetable pages.
package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"catalog/internal/model"
)

// Course rows are marked by a fixed background color in the source pages.
const courseRowSelector = `tr[bgcolor='#CCCC99']`

// minColumns is the column count a row must exceed before its fixed indices
// can be read safely.
const minColumns = 8

const (
	codeColumn = 2
	nameColumn = 3
	typeColumn = 4
	slotColumn = 8
)

// RawCourse holds the positional text fields extracted from one course row
// before any domain validation has happened.
type RawCourse struct {
	Row     int
	Code    string
	Name    string
	Type    string
	SlotRaw string
}

var (
	labSlotScanRe = regexp.MustCompile(`L[1-6]`)
	numericRe     = regexp.MustCompile(`^[0-9]+$`)
)

// CourseRows extracts the candidate course rows from a parsed document.
// Rows with too few columns are skipped and logged; a bad row never fails
// the document.
func CourseRows(doc *goquery.Document, log zerolog.Logger) []RawCourse {
	var rows []RawCourse
	doc.Find(courseRowSelector).Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() <= minColumns {
			log.Warn().Int("row", i).Int("columns", cells.Length()).Msg("skipping malformed row")
			return
		}
		rows = append(rows, RawCourse{
			Row:     i,
			Code:    strings.TrimSpace(cells.Eq(codeColumn).Text()),
			Name:    strings.TrimSpace(cells.Eq(nameColumn).Text()),
			Type:    strings.TrimSpace(cells.Eq(typeColumn).Text()),
			SlotRaw: cellText(cells.Eq(slotColumn)),
		})
	})
	return rows
}

// Normalize converts a raw row into a course record, applying the
// type-dependent slot extraction rules. The record still has to pass schema
// validation before it may be persisted; Normalize is deliberately permissive
// about code shape and numeric slot range, the validator is authoritative.
func Normalize(raw RawCourse) (model.CourseCreate, error) {
	switch raw.Type {
	case model.TypeTheory, model.TypeLab, model.TypeNonCredit:
	default:
		return model.CourseCreate{}, fmt.Errorf("row %d: unknown course type %q", raw.Row, raw.Type)
	}

	var slot string
	switch raw.Type {
	case model.TypeLab:
		// Lab cells bury the slot inside free text, e.g. "Thursday 10-12\nL3 Lab".
		slot = labSlotScanRe.FindString(raw.SlotRaw)
		if slot == "" {
			return model.CourseCreate{}, fmt.Errorf("row %d: no lab slot in %q", raw.Row, raw.SlotRaw)
		}
	case model.TypeTheory:
		slot = firstSegment(raw.SlotRaw)
		if slot == "" {
			return model.CourseCreate{}, fmt.Errorf("row %d: empty slot", raw.Row)
		}
		if !numericRe.MatchString(slot) {
			return model.CourseCreate{}, fmt.Errorf("row %d: non-numeric theory slot %q", raw.Row, slot)
		}
	default:
		slot = firstSegment(raw.SlotRaw)
		if slot == "" {
			return model.CourseCreate{}, fmt.Errorf("row %d: empty slot", raw.Row)
		}
	}

	return model.CourseCreate{
		Name: raw.Name,
		Code: raw.Code,
		Type: raw.Type,
		Slot: slot,
	}, nil
}

// ScrapeCourses parses an HTML course page and returns the normalized
// records. Rows that fail normalization are logged and dropped; only a
// document that cannot be parsed at all is an error.
func ScrapeCourses(r io.Reader, log zerolog.Logger) ([]model.CourseCreate, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing course page: %w", err)
	}

	var courses []model.CourseCreate
	for _, raw := range CourseRows(doc, log) {
		course, err := Normalize(raw)
		if err != nil {
			log.Warn().Err(err).Str("course_code", raw.Code).Msg("dropping course row")
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}
