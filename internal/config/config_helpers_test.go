package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{"unset uses default", nil, DefaultMaxCookingTime},
		{"empty uses default", strPtr(""), DefaultMaxCookingTime},
		{"plain integer", strPtr("90"), 90},
		{"negative is parsed", strPtr("-1"), -1},
		{"zero is parsed", strPtr("0"), 0},
		{"float falls back", strPtr("12.5"), DefaultMaxCookingTime},
		{"garbage falls back", strPtr("two hours"), DefaultMaxCookingTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "MAX_COOKING_TIME", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("MAX_COOKING_TIME", DefaultMaxCookingTime))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  time.Duration
	}{
		{"unset uses default", nil, DefaultCatalogCacheTTL},
		{"empty uses default", strPtr(""), DefaultCatalogCacheTTL},
		{"minutes", strPtr("15m"), 15 * time.Minute},
		{"compound", strPtr("1h30m"), 90 * time.Minute},
		{"milliseconds", strPtr("250ms"), 250 * time.Millisecond},
		{"bare number falls back", strPtr("600"), DefaultCatalogCacheTTL},
		{"garbage falls back", strPtr("forever"), DefaultCatalogCacheTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "CATALOG_CACHE_TTL", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "10.0.0.1", []string{"10.0.0.1"}},
		{"trims and drops blanks", " 10.0.0.1, ,192.168.1.5 ,", []string{"10.0.0.1", "192.168.1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TRUSTED_PROXIES", tt.value)
			assert.Equal(t, tt.want, getEnvAsList("TRUSTED_PROXIES"))
		})
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := Config{DBUser: "chef", DBPassword: "secret", DBHost: "db", DBPort: "5433", DBName: "foodgram"}
	assert.Equal(t, "postgres://chef:secret@db:5433/foodgram?sslmode=disable", cfg.GetDBConnString())
}

func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "40")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "2m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 40, cfg.DBMaxConns)
		assert.Equal(t, 2*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "lots")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "soon")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
	})
}

func strPtr(s string) *string { return &s }

// setOrUnset sets key for the duration of the test, or makes sure it is absent when value is nil
func setOrUnset(t *testing.T, key string, value *string) {
	t.Helper()
	if value != nil {
		t.Setenv(key, *value)
		return
	}
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
