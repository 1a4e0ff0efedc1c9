package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-api/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "/api", cfg.HTTP.Prefix)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, int32(10), cfg.Psql.MaxConns)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, configs.DriverPostgres, cfg.Store.Driver)
	assert.False(t, cfg.Store.Seed)
	assert.Empty(t, cfg.Fallback.File)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_PREFIX", "/v2")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/marketing?sslmode=disable")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("STORE_SEED", "true")
	t.Setenv("FALLBACK_FILE", "/etc/marketing/dataset.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "/v2", cfg.HTTP.Prefix)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "WARN", cfg.Log.SlogLevel().String())
	assert.Equal(t, "db", cfg.Psql.Addr.Hostname())
	assert.Equal(t, configs.DriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "/etc/marketing/dataset.yaml", cfg.Fallback.File)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load()
	assert.ErrorContains(t, err, `unknown driver "sqlite"`)
}
