package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "https://api.fxtwitter.com", cfg.Upstream.BaseURL)
	assert.Equal(t, []string{"twitter.com", "x.com"}, cfg.Resolver.Hosts)
	assert.Equal(t, "DoReMi", cfg.Resolver.BrandPrefix)
	assert.Equal(t, int64(5_000_000), cfg.Resolver.BitrateCeiling)
	assert.Equal(t, int64(1000), cfg.Download.MinBytes)
	assert.False(t, cfg.Telegram.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("RESOLVER_HOSTS", "x.com,fxtwitter.com")
	t.Setenv("RESOLVER_BITRATE_CEILING", "2500000")
	t.Setenv("DOWNLOAD_MIN_BYTES", "4096")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"x.com", "fxtwitter.com"}, cfg.Resolver.Hosts)
	assert.Equal(t, int64(2_500_000), cfg.Resolver.BitrateCeiling)
	assert.Equal(t, int64(4096), cfg.Download.MinBytes)
}
