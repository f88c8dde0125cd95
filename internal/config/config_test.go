package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"GRIDASTAR_ADDR", "GIN_MODE", "GRIDASTAR_WORKERS", "GRIDASTAR_MAX_CELLS", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL_SECONDS"} {
		t.Setenv(key, "")
	}
	t.Setenv("GRIDASTAR_ADDR", ":8080")
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, runtime.NumCPU(), cfg.SearchWorkers)
	assert.Equal(t, 250000, cfg.MaxGridCells)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 300, cfg.CacheTTLSeconds)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GRIDASTAR_ADDR", "127.0.0.1:9000")
	t.Setenv("GRIDASTAR_WORKERS", "3")
	t.Setenv("GRIDASTAR_MAX_CELLS", "100")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 3, cfg.SearchWorkers)
	assert.Equal(t, 100, cfg.MaxGridCells)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GRIDASTAR_WORKERS", "many")
	_, err := Load()
	assert.ErrorContains(t, err, "GRIDASTAR_WORKERS")

	t.Setenv("GRIDASTAR_WORKERS", "0")
	_, err = Load()
	assert.Error(t, err)
}
