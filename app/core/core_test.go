package core

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpanel/ai-service/pkg/errors"
)

func TestSetupWithMemoryStore(t *testing.T) {
	cfg := CoreConfig{Store: StoreConfig{Driver: STORE_DRIVER_MEMORY}}
	cfg.SetDefaults()

	core, err := SetupCore(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, core.ResourceStore())
	assert.NotNil(t, core.HttpEngine())
	assert.NoError(t, core.Shutdown(context.Background()))
}

func TestSetupWithUnreachableMongo(t *testing.T) {
	cfg := CoreConfig{Mongo: MongoConfig{URL: "mongodb://"}}
	cfg.SetDefaults()

	_, err := SetupCore(context.Background(), cfg)
	assert.Error(t, err)
	assert.Equal(t, errors.KindConnection, errors.KindOf(err))
}

func TestSetupWritesStartupToConfiguredLog(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logPath := filepath.Join(t.TempDir(), "ai-service.log")
	cfg := CoreConfig{
		Store: StoreConfig{Driver: STORE_DRIVER_MEMORY},
		Log:   Log{Level: "info", Path: logPath},
	}
	cfg.SetDefaults()

	core, err := SetupCore(context.Background(), cfg)
	require.NoError(t, err)
	defer core.Shutdown(context.Background())

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"Starting up AI Service..."`)
}
