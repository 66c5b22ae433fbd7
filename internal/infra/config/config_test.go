package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowedOriginsEnvOverride(t *testing.T) {
	t.Setenv("HTTP_ALLOWED_ORIGINS", " https://app.example.com, https://staging.example.com ,")

	cfg := defaultConfig()
	applyEnvOverrides(cfg)

	require.Equal(t,
		[]string{"https://app.example.com", "https://staging.example.com"},
		cfg.HTTP.AllowedOrigins)
}

func TestDefaultConfigAllowsAnyOrigin(t *testing.T) {
	cfg := defaultConfig()
	require.Empty(t, cfg.HTTP.AllowedOrigins)
}
