package schema

// Custom string types for type safety.
type (
	// Category classifies an account's relationship to us.
	Category string

	// ScoringMode represents the scoring strategy used for ranking.
	ScoringMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// CacheBackend represents the durable storage backend for caching.
	CacheBackend string
)

// All relationship categories.
const (
	MutualCategory   Category = "mutual"   // In both followers and followees
	WatchingCategory Category = "watching" // Followee who does not follow back
	WatcherCategory  Category = "watcher"  // Follower we do not follow back
)

// All scoring modes supported.
const (
	ImpactMode ScoringMode = "impact" // default: repo weight + follower ratio
	RatioMode  ScoringMode = "ratio"  // follower/followee ratio only
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	JSONBackend       CacheBackend = "json" // default
	SQLiteBackend     CacheBackend = "sqlite"
	MySQLBackend      CacheBackend = "mysql"
	PostgreSQLBackend CacheBackend = "postgresql"
	NoneBackend       CacheBackend = "none"
)

// AllCategories lists the categories in display order.
var AllCategories = []Category{MutualCategory, WatchingCategory, WatcherCategory}

// ValidScoringModes lists all valid scoring modes.
var ValidScoringModes = map[ScoringMode]struct{}{
	ImpactMode: {},
	RatioMode:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[CacheBackend]struct{}{
	JSONBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
