package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("API_PORT", "")
	t.Setenv("JOURNEY_DURATION", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, 60.0, cfg.JourneyDuration)
	assert.Equal(t, 3600.0, cfg.JourneyDistance)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JOURNEY_DURATION", "90")
	t.Setenv("JOURNEY_DISTANCE", "5000")
	t.Setenv("API_PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 90.0, cfg.JourneyDuration)
	assert.Equal(t, 5000.0, cfg.JourneyDistance)
	assert.Equal(t, "9999", cfg.APIPort)
}

func TestLoadRejectsInvalidFloats(t *testing.T) {
	t.Setenv("JOURNEY_DURATION", "not-a-number")
	t.Setenv("JOURNEY_DISTANCE", "-10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.JourneyDuration)
	assert.Equal(t, 3600.0, cfg.JourneyDistance)
}

func TestValidate(t *testing.T) {
	cfg := &Config{JourneyDuration: 0, JourneyDistance: 3600}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JOURNEY_DURATION")
}
