package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKey struct{}

func TestResolveByType(t *testing.T) {
	var calls []string
	RegisterFunc[*[]string](testKey{}, func(s *[]string) { *s = append(*s, "first") })
	RegisterFunc[int](testKey{}, func(int) { calls = append(calls, "int") })
	RegisterFunc[*[]string](testKey{}, func(s *[]string) { *s = append(*s, "second") })

	var got []string
	for _, f := range ResolveFuncHandlers[*[]string](testKey{}) {
		f(&got)
	}

	assert.Equal(t, []string{"first", "second"}, got)
	assert.Empty(t, calls)
	assert.Len(t, ResolveFuncHandlers[int](testKey{}), 1)
	assert.Empty(t, ResolveFuncHandlers[string](struct{}{}))
}
