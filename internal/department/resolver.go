// Package department holds the static reference tables that map scraped
// department display names to canonical identities.
package department

import (
	"fmt"
	"sort"
	"strings"

	"catalog/internal/model"
)

var namesToCodes = map[string]string{
	"Chemical Engineering":                            "CL",
	"Aerospace Engineering":                           "AE",
	"Civil Engineering":                               "CE",
	"Computer Science and Engineering":                "CS",
	"Electrical Engineering":                          "EE",
	"Energy Science and Engineering":                  "EN",
	"Engineering Physics":                             "EP",
	"Metallurgical Engineering and Materials Science": "MM",
	"Environmental Science and Engineering":           "ES",
	"Mechanical Engineering":                          "ME",
	"Industrial Engineering and Operations Research":  "IE",
	"Economics":   "EC",
	"Chemistry":   "CH",
	"Mathematics": "MA",
}

// namesToDivisions disambiguates first-year combined listings, where several
// departments' divisions share one table.
var namesToDivisions = map[string]string{
	"Chemical Engineering":                            "D4",
	"Aerospace Engineering":                           "D2",
	"Civil Engineering":                               "D2",
	"Computer Science and Engineering":                "D3",
	"Electrical Engineering":                          "D4",
	"Energy Science and Engineering":                  "D1",
	"Engineering Physics":                             "D2",
	"Metallurgical Engineering and Materials Science": "D3",
	"Environmental Science and Engineering":           "D1",
	"Mechanical Engineering":                          "D1",
	"Industrial Engineering and Operations Research":  "D2",
	"Economics":   "D3",
	"Chemistry":   "D1",
	"Mathematics": "D1",
}

// skip lists umbrella listings that appear in the scraped tables but are not
// target departments for this catalog.
var skip = map[string]struct{}{
	"Physics":                              {},
	"Humanities and Social Sciences":       {},
	"Centre for Liberal Education (CLEdu)": {},
}

var codesToNames = func() map[string]string {
	m := make(map[string]string, len(namesToCodes))
	for name, code := range namesToCodes {
		m[code] = name
	}
	return m
}()

// CodeFor returns the two-letter code for a department display name.
func CodeFor(name string) (string, bool) {
	code, ok := namesToCodes[name]
	return code, ok
}

// NameForCode resolves a two-letter department code back to its display name.
func NameForCode(code string) (string, bool) {
	name, ok := codesToNames[code]
	return name, ok
}

// DivisionFor returns the division a department's first-year sections belong to.
func DivisionFor(name string) (string, bool) {
	div, ok := namesToDivisions[name]
	return div, ok
}

// IsSkipped reports whether a display name is excluded from the catalog.
// Skipped names are not errors; they are known listings that the catalog
// intentionally leaves out.
func IsSkipped(name string) bool {
	_, ok := skip[name]
	return ok
}

// Resolve maps a display name to its code, rejecting unknown names with a
// diagnostic. Skipped names resolve to ("", false, nil).
func Resolve(name string) (code string, ok bool, err error) {
	if IsSkipped(name) {
		return "", false, nil
	}
	code, found := namesToCodes[name]
	if !found {
		return "", false, fmt.Errorf("unknown department %q", name)
	}
	return code, true, nil
}

// All returns every target department as reference data, sorted by name.
func All() []model.Department {
	departments := make([]model.Department, 0, len(namesToCodes))
	for name, code := range namesToCodes {
		departments = append(departments, model.Department{
			ID:   strings.ToLower(code),
			Name: name,
			Code: code,
		})
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})
	return departments
}
