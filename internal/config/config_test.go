package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New(WithDisableFlagsParsing(true))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.RunAddr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewEnvOverridesDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := New(WithDisableFlagsParsing(true))
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.RunAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := New(WithDisableFlagsParsing(true))
	require.Error(t, err)
}

func TestNewRejectsMalformedRunAddr(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "not an address")

	_, err := New(WithDisableFlagsParsing(true))
	require.Error(t, err)
}
