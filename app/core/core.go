package core

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/openpanel/ai-service/app/store"
	"github.com/openpanel/ai-service/app/store/memstore"
	"github.com/openpanel/ai-service/app/store/mongostore"
)

type Core struct {
	cfg        CoreConfig
	stores     store.Provider[primitive.ObjectID]
	httpEngine *gin.Engine

	metrics *Metrics
}

// SetupCore configures logging and opens the store connection. The store
// must answer a ping before the core is returned.
func SetupCore(ctx context.Context, cfg CoreConfig) (*Core, error) {
	setupLogger(cfg.Log)
	slog.Info("Starting up AI Service...")

	core := NewCore(cfg, setupStoreProvider(cfg))
	if err := core.stores.Connect(ctx); err != nil {
		return nil, err
	}
	slog.Info("core ready", slog.String("app", cfg.AppName), slog.String("store", cfg.Store.Driver), slog.String("database", cfg.Mongo.Database))
	return core, nil
}

// NewCore assembles a core around an already built store provider without
// connecting it.
func NewCore(cfg CoreConfig, stores store.Provider[primitive.ObjectID]) *Core {
	return &Core{
		cfg:        cfg,
		stores:     stores,
		httpEngine: gin.New(),
		metrics:    NewMetrics("ai_service", "core"),
	}
}

func setupLogger(cfg Log) {
	var writer io.Writer = os.Stdout
	if cfg.Path != "" {
		writer = &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, //days
			Compress:   true,
		}
	}
	l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(l)
}

func setupStoreProvider(cfg CoreConfig) store.Provider[primitive.ObjectID] {
	if cfg.Store.Driver == STORE_DRIVER_MEMORY {
		slog.Warn("using in-memory store, data will not survive a restart")
		return memstore.NewProvider()
	}
	return mongostore.Setup(cfg.Mongo)
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) ResourceStore() store.ResourceStore[primitive.ObjectID] {
	return s.stores.ResourceStore()
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

// Shutdown releases the store connection.
func (s *Core) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down AI Service...")
	return s.stores.Close(ctx)
}
