// Package catalog merges per-semester scrape results into the consolidated
// department → semester → course-code structure that gets persisted.
package catalog

import (
	"sort"
	"strconv"
)

// CodeSet is a deduplicated set of course codes.
type CodeSet map[string]struct{}

// Add inserts a code into the set.
func (s CodeSet) Add(code string) {
	s[code] = struct{}{}
}

// Sorted returns the codes in lexicographic order.
func (s CodeSet) Sorted() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SemesterCourses pairs a semester number with the per-stream scrape results
// collected for it (one department→set mapping per program track).
type SemesterCourses struct {
	Semester int
	Streams  []map[string]CodeSet
}

// Catalog is the persisted shape: one entry per department, keyed by
// semester number as a string, value a sorted duplicate-free code list.
type Catalog map[string]map[string][]string

// MergeStreams unions the source mapping into dst. Departments absent from
// one stream keep the codes contributed by the others; merging the same
// result twice changes nothing.
func MergeStreams(dst map[string]CodeSet, src map[string]CodeSet) {
	for dept, codes := range src {
		set, ok := dst[dept]
		if !ok {
			set = make(CodeSet, len(codes))
			dst[dept] = set
		}
		for code := range codes {
			set.Add(code)
		}
	}
}

// Consolidate folds the per-semester aggregates into the final catalog.
// A department's entry is rebuilt wholesale from the given scrape results;
// there is no incremental patching of prior state.
func Consolidate(semesters []SemesterCourses) Catalog {
	consolidated := make(Catalog)
	for _, sem := range semesters {
		merged := make(map[string]CodeSet)
		for _, stream := range sem.Streams {
			MergeStreams(merged, stream)
		}
		for dept, codes := range merged {
			if consolidated[dept] == nil {
				consolidated[dept] = make(map[string][]string)
			}
			consolidated[dept][strconv.Itoa(sem.Semester)] = codes.Sorted()
		}
	}
	return consolidated
}
