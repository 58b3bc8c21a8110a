package cmd

import (
	"github.com/huangsam/gazer/core"
	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/internal/iocache"
	"github.com/huangsam/gazer/schema"
	"github.com/spf13/cobra"
)

// mutualsCmd ranks accounts that follow you and that you follow back.
var mutualsCmd = &cobra.Command{
	Use:   "mutuals",
	Short: "Show accounts you follow that also follow you.",
	Long: `List the intersection of your followers and followees, ranked by
impact score.

Examples:
  # Rank your mutuals
  gazer mutuals

  # Top 10 mutuals as JSON
  gazer mutuals --limit 10 --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGazerCategory(rootCtx, cfg, apiClient, iocache.Manager, schema.MutualCategory); err != nil {
			contract.LogFatal("Cannot run mutuals report", err)
		}
	},
}

// watchingCmd ranks accounts you follow that do not follow you back.
var watchingCmd = &cobra.Command{
	Use:   "watching",
	Short: "Show accounts you follow that don't follow you back.",
	Long: `List the accounts you follow one-sidedly, ranked by impact score.

Useful for spotting high-value accounts you watch and pruning ones that
no longer earn the spot.

Examples:
  # Rank the accounts you watch
  gazer watching

  # Export to CSV for review
  gazer watching --output csv --output-file watching.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGazerCategory(rootCtx, cfg, apiClient, iocache.Manager, schema.WatchingCategory); err != nil {
			contract.LogFatal("Cannot run watching report", err)
		}
	},
}

// watchersCmd ranks accounts that follow you without being followed back.
var watchersCmd = &cobra.Command{
	Use:   "watchers",
	Short: "Show accounts that follow you without a follow back.",
	Long: `List the accounts that follow you one-sidedly, ranked by impact
score.

Useful for discovering influential accounts in your audience that you
may want to follow back.

Examples:
  # Rank your watchers
  gazer watchers

  # Rank by raw follower ratio instead
  gazer watchers --mode ratio`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGazerCategory(rootCtx, cfg, apiClient, iocache.Manager, schema.WatcherCategory); err != nil {
			contract.LogFatal("Cannot run watchers report", err)
		}
	},
}
