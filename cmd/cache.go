package cmd

import (
	"fmt"

	"github.com/huangsam/gazer/internal/contract"
	"github.com/huangsam/gazer/internal/iocache"
	"github.com/huangsam/gazer/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.CacheBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")
	cacheDir := viper.GetString("cache-dir")
	if cacheDir == "" {
		cacheDir = contract.DefaultCacheDir()
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config
	if err := iocache.InitStores(backend, connStr, cacheDir); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr
	cfg.CacheDir = cacheDir

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by report commands. This avoids credential checks
// and API client construction for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local snapshot and profile caches",
	Long: `Manage the caches that keep gazer fast and API-friendly.

Gazer keeps two caches: a relation snapshot (followers and followees,
refreshed when stale) and a permanent profile store (per-account details,
fetched once).

Supported backends: JSON files (default), SQLite, MySQL, PostgreSQL, or None

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached data

Examples:
  # Check cache status
  gazer cache status

  # Clear cache after following many accounts
  gazer cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached snapshot and profile data",
	Long: `Delete all cached data from the configured backend.

Use this when:
- The cached snapshot is corrupt or suspected stale
- You changed accounts or tokens
- Testing behavior without cache

For JSON: Deletes the cache files
For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache tables

Examples:
  # Clear the default JSON cache
  gazer cache clear

  # Clear MySQL cache (set connection string via env variable)
  GAZER_CACHE_BACKEND=mysql GAZER_CACHE_DB_CONNECT="..." gazer cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, cfg.CacheDir, contract.GetDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the snapshot and profile caches.

Displays:
- Backend type and connection status
- Total number of cached entries
- Last and oldest cache entry timestamps

Examples:
  # Check cache status
  gazer cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		relStatus, err := iocache.Manager.GetRelationsStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot cache status", err)
		}
		iocache.PrintCacheStatus("Snapshot", relStatus)

		profStatus, err := iocache.Manager.GetProfilesStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get profile cache status", err)
		}
		iocache.PrintCacheStatus("Profile", profStatus)
	},
}
