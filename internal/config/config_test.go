package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults when only the api key is set", func(t *testing.T) {
		t.Setenv("HELIUS_API_KEY", "test-key")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, "mainnet-beta", cfg.Cluster)
		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 2, cfg.HTTPRetryMax)
		assert.Zero(t, cfg.MaxMintlistPages)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.TelemetryEnabled)
		assert.Equal(t, "helius-cli", cfg.ServiceName)
	})

	t.Run("reads every setting from the environment", func(t *testing.T) {
		t.Setenv("HELIUS_API_KEY", "test-key")
		t.Setenv("HELIUS_CLUSTER", "devnet")
		t.Setenv("HELIUS_HTTP_TIMEOUT", "30s")
		t.Setenv("HELIUS_HTTP_RETRY_MAX", "5")
		t.Setenv("HELIUS_MAX_MINTLIST_PAGES", "12")
		t.Setenv("HELIUS_LOG_LEVEL", "debug")
		t.Setenv("HELIUS_TELEMETRY_ENABLED", "true")
		t.Setenv("HELIUS_SERVICE_NAME", "helius-worker")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "devnet", cfg.Cluster)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 5, cfg.HTTPRetryMax)
		assert.Equal(t, 12, cfg.MaxMintlistPages)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.TelemetryEnabled)
		assert.Equal(t, "helius-worker", cfg.ServiceName)
	})

	t.Run("fails when the api key is missing", func(t *testing.T) {
		t.Setenv("HELIUS_API_KEY", "placeholder")
		os.Unsetenv("HELIUS_API_KEY")

		_, err := Load()
		assert.Error(t, err)
	})
}
