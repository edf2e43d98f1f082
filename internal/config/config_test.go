package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PotionGacha_Go/internal/domain"
)

var configEnvVars = []string{
	"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR", "ENVIRONMENT", "SERVICE_NAME", "VERSION",
	"TRUSTED_PROXIES", "DB_DRIVER", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "DB_LOCK_TIMEOUT",
	"CATALOG_PATH", "MAX_HP", "MAX_MP", "GACHA_UNIT_COST", "MAX_GACHA_DRAWS",
}

// clearEnvVars unsets every variable Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Empty(t, cfg.LogDir, "file logging is opt-in")
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, 5*time.Second, cfg.DBLockTimeout)
		assert.Equal(t, domain.DefaultLimits(), cfg.Limits())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("DB_DRIVER", "memory")
		t.Setenv("DB_LOCK_TIMEOUT", "250ms")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")
		t.Setenv("MAX_HP", "150")
		t.Setenv("GACHA_UNIT_COST", "25")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.UseMemoryStore())
		assert.Equal(t, 250*time.Millisecond, cfg.DBLockTimeout)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, 150, cfg.Limits().MaxHP)
		assert.Equal(t, 200, cfg.Limits().MaxMP)
		assert.Equal(t, 25, cfg.Limits().GachaUnitCost)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("rejects non-positive limits", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("MAX_MP", "0")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "MAX_MP must be positive")
	})

	t.Run("rejects unknown log level and format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("LOG_LEVEL", "chatty")
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log level")
		assert.Contains(t, err.Error(), "unknown log format")
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_DRIVER", "sqlite")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown DB_DRIVER")
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "h",
		DBPort:     "5433",
		DBName:     "d",
	}
	assert.Equal(t, "postgres://u:p@h:5433/d?sslmode=disable", cfg.GetDBConnString())
}
