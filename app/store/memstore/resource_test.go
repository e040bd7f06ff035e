package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpanel/ai-service/app/store/storetest"
	"github.com/openpanel/ai-service/pkg/types"
)

func TestResourceStore(t *testing.T) {
	storetest.RunResourceStoreTests(t, NewResourceStore())
}

func TestConcurrentCreate(t *testing.T) {
	s := NewResourceStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, types.Resource{Name: "n", Type: "t", Content: "c"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := s.ListResources(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}

func TestReturnedResourceIsACopy(t *testing.T) {
	s := NewResourceStore()
	ctx := context.Background()

	id, err := s.Create(ctx, types.Resource{Name: "n", Type: "t", Content: "c"})
	require.NoError(t, err)

	got, err := s.GetResource(ctx, id)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := s.GetResource(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "n", again.Name)
}
