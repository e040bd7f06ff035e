// Package storetest holds the behavior every ResourceStore backend must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpanel/ai-service/app/store"
	"github.com/openpanel/ai-service/pkg/types"
)

// RunResourceStoreTests expects s to start with an empty collection.
func RunResourceStoreTests[ID any](t *testing.T, s store.ResourceStore[ID]) {
	t.Helper()
	ctx := context.Background()

	newResource := func(name string) types.Resource {
		return types.Resource{Name: name, Type: "text", Content: "hello", CreatedAt: types.GetCurrentTime()}
	}

	t.Run("Create and Get", func(t *testing.T) {
		in := newResource("doc1")
		id, err := s.Create(ctx, in)
		require.NoError(t, err)

		got, err := s.GetResource(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, s.FormatID(id), got.ID)
		assert.Equal(t, in.Name, got.Name)
		assert.Equal(t, in.Type, got.Type)
		assert.Equal(t, in.Content, got.Content)
		assert.True(t, in.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("ParseID round trip", func(t *testing.T) {
		id, err := s.Create(ctx, newResource("doc2"))
		require.NoError(t, err)

		parsed, err := s.ParseID(s.FormatID(id))
		require.NoError(t, err)
		assert.Equal(t, s.FormatID(id), s.FormatID(parsed))

		_, err = s.ParseID("not-a-valid-id")
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})

	t.Run("Get missing", func(t *testing.T) {
		id, err := s.Create(ctx, newResource("gone"))
		require.NoError(t, err)
		deleted, err := s.Delete(ctx, id)
		require.NoError(t, err)
		assert.EqualValues(t, 1, deleted)

		_, err = s.GetResource(ctx, id)
		assert.ErrorIs(t, err, store.ErrNotFound)

		deleted, err = s.Delete(ctx, id)
		require.NoError(t, err)
		assert.EqualValues(t, 0, deleted)
	})

	t.Run("Update counts only real changes", func(t *testing.T) {
		id, err := s.Create(ctx, newResource("upd"))
		require.NoError(t, err)

		modified, err := s.Update(ctx, id, types.ChangeSet{"content": "hello"})
		require.NoError(t, err)
		assert.EqualValues(t, 0, modified)

		modified, err = s.Update(ctx, id, types.ChangeSet{"content": "world"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, modified)

		got, err := s.GetResource(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "world", got.Content)
		assert.Equal(t, "upd", got.Name)
		assert.Equal(t, "text", got.Type)
	})

	t.Run("List respects limit and order", func(t *testing.T) {
		all, err := s.ListResources(ctx, 1000)
		require.NoError(t, err)
		before := len(all)

		for _, name := range []string{"l1", "l2", "l3"} {
			_, err := s.Create(ctx, newResource(name))
			require.NoError(t, err)
		}

		limited, err := s.ListResources(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		all, err = s.ListResources(ctx, 1000)
		require.NoError(t, err)
		require.Len(t, all, before+3)
		assert.Equal(t, []string{"l1", "l2", "l3"}, []string{all[before].Name, all[before+1].Name, all[before+2].Name})
	})
}
