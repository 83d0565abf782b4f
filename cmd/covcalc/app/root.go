package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Electronya/covcalc/internal/config"
	"github.com/Electronya/covcalc/internal/coverage"
	"github.com/Electronya/covcalc/internal/exec"
	"github.com/Electronya/covcalc/internal/logger"
	"github.com/Electronya/covcalc/internal/report"
)

// NewCovcalcCommand creates the root command for the covcalc tool.
func NewCovcalcCommand() *cobra.Command {
	var (
		jsonPath string
		gcovDir  string
		filters  []string
		gcovCmd  string
		timeout  int
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "covcalc (--json FILE | --gcov-dir DIR) [-f PATTERN ...]",
		Short: "Calculate line coverage for filtered source files.",
		Long: `Covcalc computes an aggregate line coverage percentage for a subset of
source files, selected by path patterns.

Coverage can be extracted in two modes:
  --json      from a gcovr summary JSON file
  --gcov-dir  by running gcov on every .gcda file under a build directory

The gcov mode is useful when source files are #include'd directly into test
files: gcovr may attribute their lines to the test file, while gcov's own
per-file report keeps the original attribution.

On success the coverage percentage (e.g. "85.3") is the only line written
to stdout; all diagnostics go to stderr. Exit code is 0 on success and 1 on
any failure.

Examples:
  # From a gcovr summary
  covcalc --json coverage_summary.json -f 'src/'

  # From coverage data files of a test build
  covcalc --gcov-dir twister-out -f 'src/adcAcquisition'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(logLevel)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Config values are defaults, command line flags override.
			if !cmd.Flags().Changed("gcov") {
				gcovCmd = cfg.GcovCommand
			}
			if !cmd.Flags().Changed("timeout") {
				timeout = cfg.Timeout
			}
			if len(filters) == 0 {
				filters = cfg.Filters
			}
			filter := coverage.NewFilter(filters)

			var agg *coverage.Aggregate
			if jsonPath != "" {
				agg, err = coverage.FromSummary(jsonPath, filter)
				if err != nil {
					return err
				}
				logger.Info("%s", report.Summary(agg))
			} else {
				executor := exec.NewCommandExecutor(time.Duration(timeout) * time.Second)
				runner := coverage.NewGcovRunner(executor, gcovCmd)
				agg, err = runner.Collect(gcovDir, filter)
				if err != nil {
					return err
				}
				logger.Info("%s", report.Summary(agg))
				logger.Info("per-file coverage:\n%s", report.Breakdown(agg))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.1f\n", agg.Percent())
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", "", "Path to gcovr coverage summary JSON file")
	cmd.Flags().StringVar(&gcovDir, "gcov-dir", "", "Path to build directory containing .gcda files")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "Path pattern to include (can be repeated, OR logic)")
	cmd.Flags().StringVar(&gcovCmd, "gcov", "gcov", "gcov command used to annotate coverage data files")
	cmd.Flags().IntVar(&timeout, "timeout", 30, "Per-file gcov timeout in seconds")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level for stderr diagnostics (debug|info|warn|error)")

	cmd.MarkFlagsMutuallyExclusive("json", "gcov-dir")
	cmd.MarkFlagsOneRequired("json", "gcov-dir")

	return cmd
}
