package cmd

import (
	"github.com/huangsam/gazer/core"
	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/internal/iocache"
	"github.com/spf13/cobra"
)

// reportCmd produces the full-graph report across all relation categories.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show your full social graph ranked by account impact.",
	Long: `Fetch your follower and followee lists, classify every account as a
mutual, watching or watcher relation, and rank them all by impact score.

The relation snapshot is cached locally and reused until it goes stale,
so repeated runs within the cache window make no API calls for the graph.
Profile details are cached permanently per account.

Examples:
  # Rank your whole graph by impact
  gazer report

  # Force a fresh snapshot and widen the result set
  gazer report --refresh --limit 100

  # Use the raw follower ratio instead of the impact score
  gazer report --mode ratio

  # Export findings to CSV for tracking
  gazer report --output csv --output-file graph.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGazerReport(rootCtx, cfg, apiClient, iocache.Manager); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
