// Package cmd defines the command-line interface for gazer.
package cmd

import (
	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(mutualsCmd)
	rootCmd.AddCommand(watchingCmd)
	rootCmd.AddCommand(watchersCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("mode", string(schema.ImpactMode), "Scoring mode: impact or ratio")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("refresh", false, "Force a snapshot refresh regardless of cache age")
	rootCmd.PersistentFlags().String("ttl", "1h", "How long a cached snapshot stays fresh (Go duration)")
	rootCmd.PersistentFlags().Int("page-size", contract.DefaultPageSize, "Accounts fetched per API page (max 100)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.JSONBackend), "Cache backend: json or sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("cache-dir", "", "Directory for JSON cache files (default ~/.gazer)")
	rootCmd.PersistentFlags().String("api-url", "", "GitHub API base URL override")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
