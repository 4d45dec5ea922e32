package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		// Clear relevant env vars
		clearEnvVars(t)
		// Must set API_KEY or it fails validation
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "test-key", cfg.APIKey)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		// Set custom values
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("DB_USER", "customuser")
		t.Setenv("DB_PASSWORD", "custompass")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "customdb")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "customuser", cfg.DBUser)
		assert.Equal(t, "custompass", cfg.DBPassword)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "customdb", cfg.DBName)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)
		// Explicitly unset API_KEY
		os.Unsetenv("API_KEY")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("handles negative port number", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "-1")

		// Should load without error (validation happens at server startup)
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, -1, cfg.Port)
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", false},
			{"max valid port", "65535", false},
			{"above max port", "65536", false}, // Loads but invalid for use
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("API_KEY", "test-key")
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestLoad_ComposeEnvironment(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "compose-key")
	t.Setenv("DB_HOST", "db")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres://postgres:postgres@db:5432/foodgram?sslmode=disable", cfg.GetDBConnString())
	assert.Equal(t, "json", cfg.LogFormat)
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	// Clear all config-related env vars to ensure clean test state
	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
		"MAX_COOKING_TIME", "CATALOG_CACHE_SIZE", "CATALOG_CACHE_TTL",
		"DEFAULT_PAGE_SIZE", "SHOPPING_LIST_LOCALE", "TRUSTED_PROXIES", "MAX_REQUEST_BYTES",
		"ADMIN_API_KEY",
	}

	for _, key := range envVars {
		os.Unsetenv(key)
	}
}

// TestLoad_DomainSettings covers the recipe, catalog and listing settings
func TestLoad_DomainSettings(t *testing.T) {
	t.Run("uses domain defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultMaxCookingTime, cfg.MaxCookingTime)
		assert.Equal(t, DefaultCatalogCacheSize, cfg.CatalogCacheSize)
		assert.Equal(t, DefaultCatalogCacheTTL, cfg.CatalogCacheTTL)
		assert.Equal(t, DefaultPageSize, cfg.DefaultPageSize)
		assert.Equal(t, "en", cfg.ShoppingListLocale)
		assert.Equal(t, "foodgram", cfg.DBName)
	})

	t.Run("reads overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("MAX_COOKING_TIME", "600")
		t.Setenv("CATALOG_CACHE_SIZE", "64")
		t.Setenv("CATALOG_CACHE_TTL", "30s")
		t.Setenv("DEFAULT_PAGE_SIZE", "12")
		t.Setenv("SHOPPING_LIST_LOCALE", "ru")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 600, cfg.MaxCookingTime)
		assert.Equal(t, 64, cfg.CatalogCacheSize)
		assert.Equal(t, 30*time.Second, cfg.CatalogCacheTTL)
		assert.Equal(t, 12, cfg.DefaultPageSize)
		assert.Equal(t, "ru", cfg.ShoppingListLocale)
	})

	t.Run("rejects non-positive max cooking time", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("MAX_COOKING_TIME", "0")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "MAX_COOKING_TIME")
	})

	t.Run("admin key is optional", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.AdminKey)

		t.Setenv("ADMIN_API_KEY", "admin-key")
		cfg, err = Load()
		require.NoError(t, err)
		assert.Equal(t, "admin-key", cfg.AdminKey)
	})

	t.Run("rejects admin key equal to the gateway key", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("ADMIN_API_KEY", "test-key")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "ADMIN_API_KEY")
	})

	t.Run("rejects max cooking time the column cannot hold", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("MAX_COOKING_TIME", "40000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "40000 exceeds 32767")
	})

	t.Run("accepts the column limit", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("MAX_COOKING_TIME", "32767")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, MaxStoredCookingTime, cfg.MaxCookingTime)
	})

	t.Run("rejects non-positive page size", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DEFAULT_PAGE_SIZE", "-3")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DEFAULT_PAGE_SIZE")
	})
}

func TestLoad_TrustedProxies(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "test-key")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, ,10.0.0.2 ")
	t.Setenv("MAX_REQUEST_BYTES", "2048")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Equal(t, int64(2048), cfg.MaxRequestBytes)
}
