package core

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupConfigFromEnv(t *testing.T) {
	t.Setenv("AI_SERVICE_ADDRESS", "localhost:11111")
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_DRIVER", "")

	cfg, err := LoadBaseConfig("")
	require.NoError(t, err)

	assert.Equal(t, "localhost:11111", cfg.Addr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.FormatURL())
	assert.Equal(t, DEFAULT_DB_NAME, cfg.Mongo.DatabaseName())
	assert.Equal(t, STORE_DRIVER_MONGO, cfg.Store.Driver)
	assert.Equal(t, DEFAULT_APP_NAME, cfg.AppName)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestMissingMongoURLPreventsStartup(t *testing.T) {
	t.Setenv("MONGODB_URL", "")
	t.Setenv("STORE_DRIVER", "")

	_, err := LoadBaseConfig("")
	assert.Error(t, err)
	assert.Panics(t, func() {
		MustLoadBaseConfig("")
	})
}

func TestMemoryDriverDoesNotNeedURL(t *testing.T) {
	t.Setenv("MONGODB_URL", "")
	t.Setenv("STORE_DRIVER", "MEMORY")

	cfg, err := LoadBaseConfig("")
	require.NoError(t, err)
	assert.Equal(t, STORE_DRIVER_MEMORY, cfg.Store.Driver)
}

func TestLoadConfigFromToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.toml")
	raw := `
addr = ":9000"

[log]
level = "warn"

[mongo]
url = "mongodb://mongo:27017"
database = "ai"
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := LoadBaseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "ai", cfg.Mongo.Database)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URL)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
}

func TestUnsupportedDriver(t *testing.T) {
	cfg := CoreConfig{Store: StoreConfig{Driver: "redis"}}
	assert.Error(t, cfg.Validate())
}

func TestSlogLevelDefaultsToInfo(t *testing.T) {
	l := Log{Level: "verbose"}
	assert.Equal(t, slog.LevelInfo, l.SlogLevel())
}
