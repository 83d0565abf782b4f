package coverage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Electronya/covcalc/internal/logger"
)

// summaryFile is one file record in a gcovr summary report.
type summaryFile struct {
	Filename    string `json:"filename"`
	LineTotal   int    `json:"line_total"`
	LineCovered int    `json:"line_covered"`
}

// summaryReport is the subset of the gcovr summary JSON schema we consume.
type summaryReport struct {
	Files []summaryFile `json:"files"`
}

// FromSummary computes aggregate coverage from a gcovr summary JSON file
// for files matching the filter. Records with a zero line total add no
// information and are skipped.
func FromSummary(path string, filter Filter) (*Aggregate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage summary: %w", err)
	}

	var report summaryReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse coverage summary %s: %w", path, err)
	}

	agg := &Aggregate{}
	for _, f := range report.Files {
		if !filter.Match(f.Filename) || f.LineTotal <= 0 {
			continue
		}
		agg.Covered += f.LineCovered
		agg.Total += f.LineTotal
		agg.Files = append(agg.Files, Entry{
			Filename: f.Filename,
			Covered:  f.LineCovered,
			Total:    f.LineTotal,
		})
	}

	if agg.Total == 0 {
		logger.Warn("no files matching filters %v in %s", filter, path)
		return nil, ErrNoMatchingFiles
	}

	return agg, nil
}
