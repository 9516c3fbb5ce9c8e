package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_USER", "filmlist")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "filmlist")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigMissingRequiredCollectsAllErrors(t *testing.T) {
	// Only one of the four required variables present.
	t.Setenv("DB_USER", "filmlist")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "30m")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestLoadConfigPoolSizeClamped(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_POOL_SIZE", "2")

	_, err := LoadConfig()
	// Clamping is reported as a configuration error.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_POOL_SIZE")
}
