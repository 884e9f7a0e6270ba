package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func _lookupEnv(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig("", _lookupEnv(nil))
		assert.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
		assert.Equal(t, "/api/v1", config.BasePath)
	})

	t.Run("file then env", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(
			"listen: \":9090\"\n"+
				"basePath: /sheets\n"+
				"authToken: from-file\n"+
				"corsOrigins:\n  - https://grid.example\n"), 0600))

		config, err := LoadConfig(configPath, _lookupEnv(map[string]string{
			"AUTH_TOKEN":        "from-env",
			"DATABASE_FILEPATH": "/tmp/grid.db",
		}))
		assert.NoError(t, err)
		assert.Equal(t, ":9090", config.Listen)
		assert.Equal(t, "/sheets", config.BasePath)
		assert.Equal(t, "from-env", config.AuthToken)
		assert.Equal(t, "/tmp/grid.db", config.DatabasePath)
		assert.Equal(t, []string{"https://grid.example"}, config.CorsOrigins)
		assert.Equal(t, "info", config.LogLevel)
	})

	t.Run("cors origins from env", func(t *testing.T) {
		config, err := LoadConfig("", _lookupEnv(map[string]string{"CORS_ORIGINS": " https://a.example , ,https://b.example"}))
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, config.CorsOrigins)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), _lookupEnv(nil))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("listen: [unterminated"), 0600))

		_, err := LoadConfig(configPath, _lookupEnv(nil))
		assert.Error(t, err)
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "nonsense"}.SlogLevel())
}
