package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-s", "redis", "-x", "1"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s", "redis"},
		},
		{
			name:         "equals form",
			args:         []string{"-d=portfolio.db", "-l", "debug"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=portfolio.db"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-s", "memory"},
			allowedFlags: []string{"-c", "-s"},
			want:         []string{"-c", "-s", "memory"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigFile([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigFile([]string{"-s", "memory", "-config", "/path/long.json"}))
	assert.Equal(t, "/path/2.json", ConfigFile([]string{"-c", "/path/1.json", "-config=/path/2.json"}))
	assert.Empty(t, ConfigFile([]string{"-x", "1"}))
	assert.Empty(t, ConfigFile(nil))
}
