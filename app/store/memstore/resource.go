package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openpanel/ai-service/app/store"
	"github.com/openpanel/ai-service/pkg/types"
)

// ResourceStore is an in-memory resource collection that behaves like the
// mongo one: ObjectID keys, insertion order, $set update counts.
// Safe for concurrent use.
type ResourceStore struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]types.Resource
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		docs: make(map[primitive.ObjectID]types.Resource),
	}
}

func (s *ResourceStore) ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, store.ErrInvalidID
	}
	return id, nil
}

func (s *ResourceStore) FormatID(id primitive.ObjectID) string {
	return id.Hex()
}

func (s *ResourceStore) Create(ctx context.Context, data types.Resource) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	data.ID = id.Hex()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = data
	s.order = append(s.order, id)
	return id, nil
}

func (s *ResourceStore) GetResource(ctx context.Context, id primitive.ObjectID) (*types.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &doc, nil
}

func (s *ResourceStore) ListResources(ctx context.Context, limit int64) ([]types.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]types.Resource, 0, min(int64(len(s.order)), max(limit, 0)))
	for _, id := range s.order {
		if limit > 0 && int64(len(res)) >= limit {
			break
		}
		res = append(res, s.docs[id])
	}
	return res, nil
}

func (s *ResourceStore) Update(ctx context.Context, id primitive.ObjectID, changes types.ChangeSet) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return 0, nil
	}
	if !changes.Apply(&doc) {
		return 0, nil
	}
	s.docs[id] = doc
	return 1, nil
}

func (s *ResourceStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return 0, nil
	}
	delete(s.docs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return 1, nil
}
