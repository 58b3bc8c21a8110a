package contract

import (
	"testing"
	"time"

	"github.com/huangsam/gazer/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a ConfigRawInput that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:        DefaultResultLimit,
		Workers:      4,
		Mode:         "impact",
		Precision:    DefaultPrecision,
		Output:       "text",
		TTL:          "1h",
		PageSize:     DefaultPageSize,
		CacheBackend: "json",
		Color:        "yes",
	}
}

// TestProcessAndValidate tests config validation and conversion.
func TestProcessAndValidate(t *testing.T) {
	t.Setenv(TokenEnvVar, "ghp_testtoken")

	t.Run("valid input", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput()))
		assert.Equal(t, "ghp_testtoken", cfg.Token)
		assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
		assert.Equal(t, schema.ImpactMode, cfg.Mode)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.Equal(t, time.Hour, cfg.TTL)
		assert.Equal(t, schema.JSONBackend, cfg.CacheBackend)
		assert.True(t, cfg.UseColors)
		assert.NotEmpty(t, cfg.CacheDir)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv(TokenEnvVar, "")
		err := ProcessAndValidate(&Config{}, validInput())
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("whitespace token is missing", func(t *testing.T) {
		t.Setenv(TokenEnvVar, "   ")
		err := ProcessAndValidate(&Config{}, validInput())
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("limit bounds", func(t *testing.T) {
		input := validInput()
		input.Limit = 0
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.Limit = MaxResultLimit + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.Limit = MaxResultLimit
		assert.NoError(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid mode", func(t *testing.T) {
		input := validInput()
		input.Mode = "chaos"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("mode is case-insensitive", func(t *testing.T) {
		input := validInput()
		input.Mode = "RATIO"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.RatioMode, cfg.Mode)
	})

	t.Run("invalid output", func(t *testing.T) {
		input := validInput()
		input.Output = "xml"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("precision clamped", func(t *testing.T) {
		input := validInput()
		input.Precision = 0
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, 1, cfg.Precision)

		input.Precision = 9
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, 4, cfg.Precision)
	})

	t.Run("invalid ttl", func(t *testing.T) {
		input := validInput()
		input.TTL = "tomorrow"
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.TTL = "-5m"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("page size bounds", func(t *testing.T) {
		input := validInput()
		input.PageSize = 0
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.PageSize = MaxPageSize + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid backend", func(t *testing.T) {
		input := validInput()
		input.CacheBackend = "redis"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("sql backend requires connection string", func(t *testing.T) {
		input := validInput()
		input.CacheBackend = "mysql"
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.CacheDBConnect = "user:pass@tcp(localhost:3306)/gazer"
		assert.NoError(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid color", func(t *testing.T) {
		input := validInput()
		input.Color = "maybe"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

// TestValidateDatabaseConnectionString tests backend connection requirements.
func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.JSONBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(h:3306)/db"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=h dbname=db"))
}
