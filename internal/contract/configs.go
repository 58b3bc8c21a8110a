package contract

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/gazer/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultTTL         = time.Hour
	DefaultPageSize    = 100
	MaxPageSize        = 100 // Remote API cap on per_page
)

// DefaultWorkers is the default width of the enrichment worker pool.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// TokenEnvVar is the environment variable holding the bearer token.
const TokenEnvVar = "GITHUB_TOKEN"

// ErrMissingCredential indicates the bearer token was absent at startup.
var ErrMissingCredential = errors.New("missing credential: set " + TokenEnvVar)

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	Token       string
	ResultLimit int
	Workers     int
	Mode        schema.ScoringMode
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	Refresh  bool          // Force a snapshot refresh regardless of TTL
	TTL      time.Duration // Snapshot staleness window
	PageSize int           // Remote pagination page size

	CacheBackend   schema.CacheBackend
	CacheDBConnect string // Please use env var as this is plaintext
	CacheDir       string // Directory for JSON-backed stores

	APIBaseURL string // Override for test doubles; empty means production

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Limit          int    `mapstructure:"limit"`
	Workers        int    `mapstructure:"workers"`
	Mode           string `mapstructure:"mode"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Refresh        bool   `mapstructure:"refresh"`
	TTL            string `mapstructure:"ttl"`
	PageSize       int    `mapstructure:"page-size"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	CacheDir       string `mapstructure:"cache-dir"`
	APIBaseURL     string `mapstructure:"api-url"`
	Color          string `mapstructure:"color"`
}

// ProcessAndValidate converts the raw input into the final validated Config.
// It resolves the bearer token from the environment; absence is fatal to the
// run before any core logic executes.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	token := strings.TrimSpace(os.Getenv(TokenEnvVar))
	if token == "" {
		return ErrMissingCredential
	}
	cfg.Token = token

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", input.Workers)
	}
	cfg.Workers = input.Workers

	mode := schema.ScoringMode(strings.ToLower(input.Mode))
	if _, ok := schema.ValidScoringModes[mode]; !ok {
		return fmt.Errorf("invalid scoring mode: %s. Must be impact or ratio", input.Mode)
	}
	cfg.Mode = mode

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s. Must be text, csv, json or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 4 {
		cfg.Precision = 4
	}

	cfg.Width = input.Width
	cfg.Refresh = input.Refresh

	ttl, err := time.ParseDuration(input.TTL)
	if err != nil {
		return fmt.Errorf("invalid ttl %q: %w", input.TTL, err)
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	cfg.TTL = ttl

	if input.PageSize <= 0 || input.PageSize > MaxPageSize {
		return fmt.Errorf("page-size must be between 1 and %d, got %d", MaxPageSize, input.PageSize)
	}
	cfg.PageSize = input.PageSize

	backend := schema.CacheBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("invalid cache backend: %s. Must be json, sqlite, mysql, postgresql, or none", input.CacheBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.CacheDBConnect); err != nil {
		return err
	}
	cfg.CacheBackend = backend
	cfg.CacheDBConnect = input.CacheDBConnect

	cfg.CacheDir = input.CacheDir
	if cfg.CacheDir == "" {
		cfg.CacheDir = DefaultCacheDir()
	}

	cfg.APIBaseURL = input.APIBaseURL

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// ValidateDatabaseConnectionString checks that SQL backends carry a
// connection string and non-SQL backends do not require one.
func ValidateDatabaseConnectionString(backend schema.CacheBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required for mysql (format: user:pass@tcp(host:port)/dbname)")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required for postgresql (format: host=... port=... user=... dbname=...)")
		}
	}
	return nil
}
