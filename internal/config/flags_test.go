package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"-s", "redis", "-d", "x.db", "-r", "cache:6379", "-l", "debug"},
			expected: &Config{StorageBackend: "redis", DatabasePath: "x.db", RedisAddr: "cache:6379", LogLevel: "debug"},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-s=memory", "-verbose"},
			expected: &Config{StorageBackend: "memory"},
		},
		{
			name:        "flag without value",
			args:        []string{"-s"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
