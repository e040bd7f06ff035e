package memstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openpanel/ai-service/app/store"
)

// Provider keeps every store in process memory. Data is lost on restart.
type Provider struct {
	resources *ResourceStore
}

func NewProvider() *Provider {
	return &Provider{resources: NewResourceStore()}
}

func (p *Provider) Connect(ctx context.Context) error { return nil }

func (p *Provider) Close(ctx context.Context) error { return nil }

func (p *Provider) ResourceStore() store.ResourceStore[primitive.ObjectID] {
	return p.resources
}
