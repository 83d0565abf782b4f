// Package coverage computes aggregate line coverage for filtered source
// files from gcov coverage artifacts.
package coverage

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNoMatchingFiles indicates that no file with a positive line total
	// matched the configured filter patterns.
	ErrNoMatchingFiles = errors.New("no matching files")

	// ErrNoDataFiles indicates that the build directory contains no
	// coverage-data files at all.
	ErrNoDataFiles = errors.New("no coverage data files found")
)

// DefaultPatterns is the filter applied when the caller supplies none.
var DefaultPatterns = []string{"src/"}

// Entry holds the line coverage counts reported for a single source file.
type Entry struct {
	Filename string
	Covered  int
	Total    int
}

// Filter is an ordered set of path patterns. A filename matches when at
// least one pattern is a substring of it.
type Filter []string

// NewFilter builds a Filter, substituting DefaultPatterns for an empty list.
func NewFilter(patterns []string) Filter {
	if len(patterns) == 0 {
		return Filter(DefaultPatterns)
	}
	return Filter(patterns)
}

// Match reports whether any pattern is a substring of name.
func (f Filter) Match(name string) bool {
	for _, p := range f {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// Table maps a source filename to its chosen coverage entry.
type Table map[string]Entry

// Record stores coverage for a file. When the same file was already
// reported by another coverage-data file, the entry with the larger line
// total wins as a proxy for the more complete run; ties keep the
// first-seen entry. This is deliberately not a union of executed-line sets.
func (t Table) Record(name string, covered, total int) {
	if prev, ok := t[name]; ok && total <= prev.Total {
		return
	}
	t[name] = Entry{Filename: name, Covered: covered, Total: total}
}

// Aggregate is the summed coverage of all entries that matched the filter.
type Aggregate struct {
	Covered int
	Total   int
	Files   []Entry
}

// Percent returns the aggregate line coverage percentage.
func (a *Aggregate) Percent() float64 {
	return float64(a.Covered) / float64(a.Total) * 100
}

// Reduce filters the table and sums covered/total counts across matches.
// Matched files are sorted by name for deterministic diagnostics. Returns
// ErrNoMatchingFiles when the matched entries carry no lines.
func (t Table) Reduce(filter Filter) (*Aggregate, error) {
	agg := &Aggregate{}
	for name, e := range t {
		if !filter.Match(name) {
			continue
		}
		agg.Covered += e.Covered
		agg.Total += e.Total
		agg.Files = append(agg.Files, e)
	}

	if agg.Total == 0 {
		return nil, ErrNoMatchingFiles
	}

	sort.Slice(agg.Files, func(i, j int) bool {
		return agg.Files[i].Filename < agg.Files[j].Filename
	})
	return agg, nil
}
