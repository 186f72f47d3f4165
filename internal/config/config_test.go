package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// No config file exists relative to the test working directory, so
	// Load falls back to defaults plus any environment overrides.
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "freight_db", cfg.Database.Name)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, "admin123", cfg.Bootstrap.AdminPassword)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "freight")
	t.Setenv("DB_NAME", "freight_prod")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("ADMIN_PASSWORD", "rotated-secret")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "freight", cfg.Database.User)
	assert.Equal(t, "freight_prod", cfg.Database.Name)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, "rotated-secret", cfg.Bootstrap.AdminPassword)
}
