package coverage

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/Electronya/covcalc/internal/exec"
	"github.com/Electronya/covcalc/internal/logger"
)

// DataFileSuffix is the extension of the runtime coverage counters emitted
// by instrumented binaries.
const DataFileSuffix = ".gcda"

// GcovRunner computes coverage by invoking the gcov annotator on each
// coverage-data file and parsing its textual report. Running gcov directly
// on the data files recovers the per-source attribution that summary tools
// lose when source files are #include'd into test files.
type GcovRunner struct {
	executor exec.Executor
	command  string
}

// NewGcovRunner creates a runner that invokes command through executor.
// An empty command defaults to "gcov".
func NewGcovRunner(executor exec.Executor, command string) *GcovRunner {
	if command == "" {
		command = "gcov"
	}
	return &GcovRunner{executor: executor, command: command}
}

// FindDataFiles returns all coverage-data files under root, in lexical
// walk order.
func FindDataFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), DataFileSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for %s files: %w", root, DataFileSuffix, err)
	}
	return files, nil
}

// Collect runs the annotator over every coverage-data file under buildDir
// and aggregates line coverage for source files matching the filter. A
// single failing invocation is skipped with a warning; it never aborts the
// whole run.
func (g *GcovRunner) Collect(buildDir string, filter Filter) (*Aggregate, error) {
	dataFiles, err := FindDataFiles(buildDir)
	if err != nil {
		return nil, err
	}
	if len(dataFiles) == 0 {
		logger.Warn("no %s files found in %s", DataFileSuffix, buildDir)
		return nil, ErrNoDataFiles
	}
	logger.Debug("found %d %s files in %s", len(dataFiles), DataFileSuffix, buildDir)

	table := make(Table)
	for _, dataFile := range dataFiles {
		// gcov resolves .gcno/.gcda pairs relative to its working
		// directory, so run it next to the data file with the bare name.
		logger.Debug("running %s on %s", g.command, dataFile)
		result, err := g.executor.Run(filepath.Dir(dataFile), g.command, filepath.Base(dataFile))
		if err != nil {
			logger.Warn("failed to run %s on %s: %v", g.command, dataFile, err)
			continue
		}
		parseGcovOutput(result.Stdout+result.Stderr, table)
	}

	agg, err := table.Reduce(filter)
	if err != nil {
		logger.Warn("no files matching filters %v under %s", filter, buildDir)
		return nil, err
	}
	return agg, nil
}
