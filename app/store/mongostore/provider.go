package mongostore

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openpanel/ai-service/app/store"
	"github.com/openpanel/ai-service/pkg/mongostore"
	"github.com/openpanel/ai-service/pkg/register"
)

type Config interface {
	mongostore.ConnectConfig
	DatabaseName() string
}

// Provider wires the collection stores onto one shared connection.
type Provider struct {
	*mongostore.MongoProvider
	dbname string
	stores *Stores
}

type Stores struct {
	store.ResourceStore[primitive.ObjectID]
}

type RegisterKey struct{}

// Setup builds the provider without connecting. Stores resolve their
// collection lazily, so Connect may run afterwards.
func Setup(conf Config) *Provider {
	p := &Provider{
		MongoProvider: mongostore.NewProvider(conf),
		dbname:        conf.DatabaseName(),
		stores:        &Stores{},
	}

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(p)
	}
	return p
}

// Database is the handle scoped to the configured database.
func (p *Provider) Database() *mongo.Database {
	return p.Handle(p.dbname)
}

func (p *Provider) ResourceStore() store.ResourceStore[primitive.ObjectID] {
	return p.stores.ResourceStore
}
