package cmd

import (
	"github.com/huangsam/gazer/core"
	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/internal/iocache"
	"github.com/spf13/cobra"
)

// diffCmd compares a fresh snapshot against the previously cached one.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show follower changes since the last cached snapshot.",
	Long: `Force a snapshot refresh and print the follower delta against the
previously cached snapshot: who started following you and who left.

The first run has nothing to compare against and prints a notice instead.

Examples:
  # See who followed or unfollowed you since the last run
  gazer diff`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGazerDiff(rootCtx, cfg, apiClient, iocache.Manager); err != nil {
			contract.LogFatal("Cannot run diff", err)
		}
	},
}
