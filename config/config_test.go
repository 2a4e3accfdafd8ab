package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30, cfg.ExploreRefreshSeconds)
	assert.Zero(t, cfg.SessionMaxAge)
	require.NotNil(t, cfg.Cache)
	assert.Equal(t, "memory", cfg.Cache.Type)
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
listen: 0.0.0.0:9000
data_dir: /var/lib/eventapp
log_level: debug
session_max_age: 86400
explore_refresh_seconds: 10
cache:
  type: redis
  redis_url: localhost:6379
`))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Listen)
	assert.Equal(t, "/var/lib/eventapp", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 86400, cfg.SessionMaxAge)
	assert.Equal(t, 10, cfg.ExploreRefreshSeconds)
	assert.Equal(t, "redis", cfg.Cache.Type)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisURL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "zero refresh interval",
			content: "explore_refresh_seconds: 0",
			wantErr: "explore_refresh_seconds must be positive",
		},
		{
			name: "redis cache without url",
			content: `
cache:
  type: redis
`,
			wantErr: "cache.redis_url is required",
		},
		{
			name: "unknown cache type",
			content: `
cache:
  type: memcached
`,
			wantErr: "unknown cache.type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
