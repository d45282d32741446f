package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, time.Duration(0), cfg.Session.TTL)
	assert.False(t, cfg.Session.ProtectWrites)
}

func TestLoad_SessionOverrides(t *testing.T) {
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("SESSION_PROTECT_WRITES", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Session.ProtectWrites)
}

func TestValidate_BadSessionStore(t *testing.T) {
	t.Setenv("SESSION_STORE", "cookiejar")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDatabaseConfig_Defaults(t *testing.T) {
	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, int32(25), cfg.MaxConns)
	assert.Equal(t, 5, cfg.MaxRetries)
}

func TestLoadDatabaseConfig_BadPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := LoadDatabaseConfig()
	assert.Error(t, err)
}
