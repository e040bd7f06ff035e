package mongostore

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/openpanel/ai-service/pkg/errors"
	"github.com/openpanel/ai-service/pkg/i18n"
)

type ConnectConfig interface {
	FormatURL() string
}

// MongoProvider owns the single client shared by every store. The client
// is safe for concurrent use and is only replaced by Connect and Close.
type MongoProvider struct {
	conf   ConnectConfig
	client *mongo.Client
}

func NewProvider(conf ConnectConfig) *MongoProvider {
	return &MongoProvider{conf: conf}
}

// Connect opens the client and pings the primary. It must be called exactly
// once; a second call leaks the previous client.
func (p *MongoProvider) Connect(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(p.conf.FormatURL()))
	if err != nil {
		slog.Error("Could not connect to MongoDB", slog.String("error", err.Error()))
		return errors.New("MongoProvider.Connect", i18n.ERROR_CONNECTION, err).WithKind(errors.KindConnection)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		slog.Error("Could not reach MongoDB", slog.String("error", err.Error()))
		return errors.New("MongoProvider.Connect.Ping", i18n.ERROR_CONNECTION, err).WithKind(errors.KindConnection)
	}

	p.client = client
	slog.Info("Connected to MongoDB")
	return nil
}

func (p *MongoProvider) Close(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := p.client.Disconnect(ctx); err != nil {
		return errors.New("MongoProvider.Close", i18n.ERROR_CONNECTION, err).WithKind(errors.KindConnection)
	}
	p.client = nil
	slog.Info("Closed MongoDB connection")
	return nil
}

func (p *MongoProvider) Connected() bool {
	return p.client != nil
}

// Handle returns the named database. Calling it before Connect is a
// programming error.
func (p *MongoProvider) Handle(databaseName string) *mongo.Database {
	if p.client == nil {
		panic("mongostore: Handle called before Connect")
	}
	return p.client.Database(databaseName)
}
