package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("INDEX_CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, SessionStoreRedis, cfg.SessionStore)
	assert.Equal(t, 60*time.Second, cfg.IndexCacheTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("SESSION_STORE", SessionStoreCookie)
	t.Setenv("INDEX_CACHE_ENABLED", "false")
	t.Setenv("INDEX_CACHE_TTL", "5m")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, SessionStoreCookie, cfg.SessionStore)
	assert.False(t, cfg.IndexCacheEnabled)
	assert.Equal(t, 5*time.Minute, cfg.IndexCacheTTL)
	assert.Equal(t, "localhost:6380", cfg.RedisAddr())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("INDEX_CACHE_ENABLED", "maybe")
	t.Setenv("INDEX_CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IndexCacheEnabled)
	assert.Equal(t, 60*time.Second, cfg.IndexCacheTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DBDriver:      DriverPostgres,
			SessionStore:  SessionStoreCookie,
			SessionSecret: "s3cret",
			GinMode:       "release",
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.DBDriver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.SessionStore = "memcached"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.SessionSecret = ""
	assert.Error(t, cfg.Validate())
	cfg.GinMode = "debug"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.SessionSecret = "default-secret-key-change-me"
	assert.Error(t, cfg.Validate())

	cfg.GinMode = "debug"
	assert.NoError(t, cfg.Validate())
}
