// Package report formats coverage diagnostics for stderr.
package report

import (
	"fmt"
	"strings"

	"github.com/Electronya/covcalc/internal/coverage"
)

// Summary returns the one-line match summary.
func Summary(agg *coverage.Aggregate) string {
	return fmt.Sprintf("Matched %d files, %d/%d lines covered",
		len(agg.Files), agg.Covered, agg.Total)
}

// Breakdown returns per-file coverage counts, one line per matched file.
func Breakdown(agg *coverage.Aggregate) string {
	var b strings.Builder
	for i, e := range agg.Files {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %s: %d/%d", e.Filename, e.Covered, e.Total)
	}
	return b.String()
}
