package cmd

import (
	"github.com/fairlens/fairlens/core"
	"github.com/fairlens/fairlens/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd builds and prints the full analytics snapshot.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the full ESG reporting snapshot for a company and period.",
	Long: `Build the complete analytics snapshot for one reporting period.

The snapshot covers:
- Report volume, anonymity share and channel utilization
- Breakdowns by status, category and priority
- Resolution statistics with age buckets and overdue counts
- The resolution funnel from intake to resolution
- The overall performance classification

Examples:
  # Default trailing three-month period
  fairlens report --company acme

  # Explicit reporting window
  fairlens report --company acme --start 2026-01-01 --end 2026-04-01

  # Export the snapshot for downstream tooling
  fairlens report --company acme --output json --output-file report.json
  fairlens report --company acme --output parquet --output-file report.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build report", err)
		}
	},
}
