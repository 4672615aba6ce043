package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("partial file overrides only named fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"database_path": "/tmp/site.db",
			"auth_delay":    "10ms",
			"redis_db":      2,
		})

		var cfg Config
		cfg.LoadDefaults()
		parseJson(&cfg, []string{"-config", path})

		assert.Equal(t, "/tmp/site.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Millisecond, cfg.AuthDelay)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, BackendSQLite, cfg.StorageBackend)
		assert.Equal(t, 2*time.Second, cfg.ContactDelay)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := Config{DatabasePath: "keep.db"}
		parseJson(&cfg, []string{"-s", "memory"})
		assert.Equal(t, "keep.db", cfg.DatabasePath)
	})

	t.Run("missing file panics", func(t *testing.T) {
		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", bad}) })
	})
}
