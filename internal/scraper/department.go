package scraper

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"catalog/internal/catalog"
	"catalog/internal/department"
)

// The department-course matrix lives in a table with a fixed element id.
const departmentTableSelector = "table#example"

const (
	departmentColumn = 4
	divisionColumn   = 8
)

// IsFirstYear reports whether a semester belongs to the combined first-year
// listings, which carry an extra leading column and need division checks.
func IsFirstYear(semester int) bool {
	return semester <= 2
}

// ErrTableNotFound is returned when a page has no department-course matrix.
var ErrTableNotFound = errors.New(`table with id "example" not found`)

// DepartmentCourses scrapes one department-course matrix into a mapping from
// department display name to the set of course codes listed for it.
//
// First-year pages list several departments' divisions together, so a row is
// only attributed to a department when its division column agrees with the
// statically known division; mismatched rows are dropped silently. Rows for
// skipped umbrella listings are excluded without diagnostics, unknown names
// are logged and skipped.
func DepartmentCourses(r io.Reader, firstYear bool, log zerolog.Logger) (map[string]catalog.CodeSet, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find(departmentTableSelector).First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	codeIndex := 8
	if firstYear {
		// First-year rows have an extra leading field shifting the code over.
		codeIndex = 9
	}

	rows := table.Find("tr")
	if body := table.Find("tbody").First(); body.Length() > 0 {
		rows = body.Find("tr")
	}

	departmentCourses := make(map[string]catalog.CodeSet)
	rows.Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		if cells.Length() <= minColumns {
			log.Warn().Int("row", i).Int("columns", cells.Length()).Msg("skipping short row")
			return
		}

		dept := strings.TrimSpace(cells.Eq(departmentColumn).Text())
		if dept == "" {
			return
		}

		if firstYear {
			division, ok := department.DivisionFor(dept)
			if !ok {
				log.Warn().Int("row", i).Str("department", dept).Msg("unknown department in first-year listing")
				return
			}
			if division != strings.TrimSpace(cells.Eq(divisionColumn).Text()) {
				// Belongs to another department's first-year group.
				return
			}
		}

		code := strings.TrimSpace(cells.Eq(codeIndex).Text())
		if code == "" {
			return
		}

		if _, ok, err := department.Resolve(dept); err != nil {
			log.Warn().Int("row", i).Str("department", dept).Msg("unknown department")
			return
		} else if !ok {
			// Skip-listed umbrella listing.
			return
		}

		if departmentCourses[dept] == nil {
			departmentCourses[dept] = make(catalog.CodeSet)
		}
		departmentCourses[dept].Add(code)
	})

	return departmentCourses, nil
}
