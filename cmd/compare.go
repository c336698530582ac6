package cmd

import (
	"github.com/fairlens/fairlens/core"
	"github.com/fairlens/fairlens/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd prints the period-over-period comparison.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the period against the previous equal-duration period.",
	Long: `Compare the reporting period against the immediately preceding period
of identical duration.

The comparison covers:
- Report volume change and resolution rate change
- The overall improvement verdict
- Top categories ranked by volume with per-category trends
- Effectiveness scoring against the resolution target
- Best and worst resolved categories

Examples:
  # Compare the default trailing period against the one before it
  fairlens compare --company acme

  # Compare an explicit quarter
  fairlens compare --company acme --start 2026-04-01 --end 2026-07-01`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompare(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build comparison", err)
		}
	},
}
