package store

import (
	"context"
	"errors"

	"github.com/openpanel/ai-service/pkg/types"
)

var (
	// ErrNotFound is returned when no document matches a well formed id.
	ErrNotFound = errors.New("store: document not found")
	// ErrInvalidID is returned when a raw id cannot be parsed into the
	// store's native identifier.
	ErrInvalidID = errors.New("store: invalid identifier")
)

// ResourceStore holds resources in a single collection. ID is the store's
// native identifier type.
type ResourceStore[ID any] interface {
	ParseID(raw string) (ID, error)
	FormatID(id ID) string
	// Create inserts data and returns the id the store generated for it.
	Create(ctx context.Context, data types.Resource) (ID, error)
	GetResource(ctx context.Context, id ID) (*types.Resource, error)
	// ListResources returns at most limit resources in natural order.
	ListResources(ctx context.Context, limit int64) ([]types.Resource, error)
	// Update applies changes with $set semantics and returns how many
	// documents actually changed. Writing equal values changes nothing.
	Update(ctx context.Context, id ID, changes types.ChangeSet) (int64, error)
	Delete(ctx context.Context, id ID) (int64, error)
}

// Provider is the lifecycle of a store backend.
type Provider[ID any] interface {
	Connect(ctx context.Context) error
	Close(ctx context.Context) error
	ResourceStore() ResourceStore[ID]
}
