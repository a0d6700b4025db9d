package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, "static", cfg.StaticDir)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 5*time.Second, cfg.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.WriteTimeout)
	require.Equal(t, 60*time.Second, cfg.IdleTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")

	cfg := Load()

	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, "/srv/static", cfg.StaticDir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestLoadIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_WRITE_TIMEOUT", "not-a-duration")

	cfg := Load()

	require.Equal(t, 10*time.Second, cfg.WriteTimeout)
}
