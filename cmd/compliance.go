package cmd

import (
	"errors"
	"os"

	"github.com/fairlens/fairlens/core"
	"github.com/fairlens/fairlens/internal/contract"
	"github.com/spf13/cobra"
)

// complianceCmd evaluates the compliance predicates. A failing predicate
// exits non-zero so the command can gate CI or scheduled checks.
var complianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Evaluate GRI completeness and resolution quality.",
	Long: `Evaluate the fixed compliance checks for a company and period:

- GRI data completeness: the period has reports and at least one category
- Resolution quality: resolution rate at least 70% and average resolution
  time at most 90 days

The evaluation always prints its advisory output. When a check fails the
command exits with status 1, making it suitable for CI gating.

Examples:
  # Human-readable evaluation
  fairlens compliance --company acme

  # Machine-readable for pipelines
  fairlens compliance --company acme --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := core.ExecuteCompliance(rootCtx, cfg, storeManager)
		if err == nil {
			return
		}
		if errors.Is(err, core.ErrComplianceNotMet) {
			contract.LogWarn("Compliance gate failed", err)
			CloseStores()
			os.Exit(1)
		}
		contract.LogFatal("Cannot evaluate compliance", err)
	},
}
