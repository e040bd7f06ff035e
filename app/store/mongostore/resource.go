package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openpanel/ai-service/app/store"
	"github.com/openpanel/ai-service/pkg/register"
	"github.com/openpanel/ai-service/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.ResourceStore = NewResourceStore(provider)
	})
}

type resourceDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d resourceDocument) toResource() types.Resource {
	return types.Resource{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Type:      d.Type,
		Content:   d.Content,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

type DatabaseHandle interface {
	Database() *mongo.Database
}

// ResourceStore 处理 resources 集合的操作
type ResourceStore struct {
	handle     DatabaseHandle
	collection string
}

func NewResourceStore(handle DatabaseHandle) *ResourceStore {
	return &ResourceStore{
		handle:     handle,
		collection: types.COLLECTION_RESOURCES,
	}
}

func (s *ResourceStore) coll() *mongo.Collection {
	return s.handle.Database().Collection(s.collection)
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
	res, err := s.coll().InsertOne(ctx, resourceDocument{
		Name:      data.Name,
		Type:      data.Type,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("mongostore: inserted id is not an ObjectID")
	}
	return id, nil
}

func (s *ResourceStore) GetResource(ctx context.Context, id primitive.ObjectID) (*types.Resource, error) {
	var doc resourceDocument
	if err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	res := doc.toResource()
	return &res, nil
}

func (s *ResourceStore) ListResources(ctx context.Context, limit int64) ([]types.Resource, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := s.coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []resourceDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	res := make([]types.Resource, 0, len(docs))
	for _, doc := range docs {
		res = append(res, doc.toResource())
	}
	return res, nil
}

func (s *ResourceStore) Update(ctx context.Context, id primitive.ObjectID, changes types.ChangeSet) (int64, error) {
	if changes.IsEmpty() {
		return 0, nil
	}
	set := bson.M{}
	for field, v := range changes {
		set[field] = v
	}
	res, err := s.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *ResourceStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
