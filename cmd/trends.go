package cmd

import (
	"github.com/fairlens/fairlens/core"
	"github.com/fairlens/fairlens/internal/contract"
	"github.com/spf13/cobra"
)

// trendsCmd prints the trailing monthly trend and recurring categories.
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show the trailing 12-month trend and recurring categories.",
	Long: `Show monthly received/resolved counts for the trailing twelve months,
anchored to the evaluation instant rather than the reporting window, plus
categories that recur often enough to suggest a systemic issue.

Examples:
  # Monthly trend table
  fairlens trends --company acme

  # Export buckets for charting
  fairlens trends --company acme --output csv --output-file trend.csv
  fairlens trends --company acme --output parquet --output-file trend.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrends(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build trends", err)
		}
	},
}
