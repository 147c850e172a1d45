package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults are applied when nothing is set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "https://maps.googleapis.com/maps/api", cfg.Google.BaseURL)
		assert.Equal(t, "https://prim.iledefrance-mobilites.fr/marketplace", cfg.Ratp.BaseURL)
		assert.Equal(t, "https://prim.iledefrance-mobilites.fr/marketplace/v2", cfg.Ratp.BaseURLV2)
		assert.Equal(t, 10*time.Second, cfg.Ratp.RequestTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("API_HOST", "0.0.0.0")
		t.Setenv("API_PORT", "9090")
		t.Setenv("RATP_API_ENDPOINT", "http://localhost:8081")
		t.Setenv("HTTP_TIMEOUT", "3")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
		assert.Equal(t, "http://localhost:8081", cfg.Ratp.BaseURL)
		// The v2 root tracks the overridden v1 root unless set explicitly.
		assert.Equal(t, "http://localhost:8081/v2", cfg.Ratp.BaseURLV2)
		assert.Equal(t, 3*time.Second, cfg.Backend.RequestTimeout)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}
