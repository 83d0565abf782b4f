package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Electronya/covcalc/internal/coverage"
)

const testSummary = `{"files":[
	{"filename":"src/a.c","line_total":100,"line_covered":80},
	{"filename":"test/b.c","line_total":50,"line_covered":10}
]}`

// runCommand executes the root command with args, returning stdout and the
// execution error.
func runCommand(args ...string) (string, error) {
	cmd := NewCovcalcCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestSummary(t *testing.T) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "covcalc-app-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	path := filepath.Join(tmpDir, "coverage_summary.json")
	require.NoError(t, os.WriteFile(path, []byte(testSummary), 0644))
	return path
}

func TestCovcalcCommand_JSONMode(t *testing.T) {
	t.Run("should print one-decimal percentage on stdout", func(t *testing.T) {
		path := writeTestSummary(t)

		out, err := runCommand("--json", path, "-f", "src/")
		require.NoError(t, err)
		assert.Equal(t, "80.0\n", out)
	})

	t.Run("should apply the default src/ filter", func(t *testing.T) {
		path := writeTestSummary(t)

		out, err := runCommand("--json", path)
		require.NoError(t, err)
		assert.Equal(t, "80.0\n", out)
	})

	t.Run("should OR repeated filter patterns", func(t *testing.T) {
		path := writeTestSummary(t)

		out, err := runCommand("--json", path, "-f", "src/", "-f", "test/")
		require.NoError(t, err)
		// (80+10)/(100+50) = 60%
		assert.Equal(t, "60.0\n", out)
	})

	t.Run("should fail without a stdout line when nothing matches", func(t *testing.T) {
		path := writeTestSummary(t)

		out, err := runCommand("--json", path, "-f", "nomatch/")
		assert.ErrorIs(t, err, coverage.ErrNoMatchingFiles)
		assert.Empty(t, out)
	})

	t.Run("should fail on an unreadable summary", func(t *testing.T) {
		out, err := runCommand("--json", "/nonexistent/summary.json")
		assert.Error(t, err)
		assert.Empty(t, out)
	})
}

func TestCovcalcCommand_GcovMode(t *testing.T) {
	t.Run("should fail when the build dir has no data files", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "covcalc-app-test-*")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		out, err := runCommand("--gcov-dir", tmpDir)
		assert.ErrorIs(t, err, coverage.ErrNoDataFiles)
		assert.Empty(t, out)
	})
}

func TestCovcalcCommand_FlagValidation(t *testing.T) {
	t.Run("should reject both modes at once", func(t *testing.T) {
		out, err := runCommand("--json", "a.json", "--gcov-dir", "build")
		assert.Error(t, err)
		assert.Empty(t, out)
	})

	t.Run("should require one mode", func(t *testing.T) {
		out, err := runCommand()
		assert.Error(t, err)
		assert.Empty(t, out)
	})

	t.Run("should reject positional arguments", func(t *testing.T) {
		out, err := runCommand("--json", "a.json", "extra")
		assert.Error(t, err)
		assert.Empty(t, out)
	})
}
