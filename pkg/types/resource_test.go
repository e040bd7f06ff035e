package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateResourceChangeSet(t *testing.T) {
	tests := []struct {
		name  string
		input UpdateResource
		want  ChangeSet
	}{
		{
			name:  "empty patch",
			input: UpdateResource{},
			want:  ChangeSet{},
		},
		{
			name:  "only name",
			input: UpdateResource{Name: lo.ToPtr("X")},
			want:  ChangeSet{"name": "X"},
		},
		{
			name:  "empty content is still a change",
			input: UpdateResource{Content: lo.ToPtr("")},
			want:  ChangeSet{"content": ""},
		},
		{
			name:  "all fields",
			input: UpdateResource{Name: lo.ToPtr("a"), Type: lo.ToPtr("b"), Content: lo.ToPtr("c")},
			want:  ChangeSet{"name": "a", "type": "b", "content": "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.ChangeSet())
		})
	}
}

func TestUpdateResourceNullFieldsAreDropped(t *testing.T) {
	var u UpdateResource
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"content":"world"}`), &u))

	assert.Equal(t, ChangeSet{"content": "world"}, u.ChangeSet())
}

func TestChangeSetApply(t *testing.T) {
	r := Resource{Name: "doc1", Type: "text", Content: "hello"}

	assert.False(t, ChangeSet{"content": "hello"}.Apply(&r))
	assert.True(t, ChangeSet{"content": "world"}.Apply(&r))
	assert.Equal(t, Resource{Name: "doc1", Type: "text", Content: "world"}, r)
}

func TestCreateResourceValidate(t *testing.T) {
	assert.Empty(t, CreateResource{Name: lo.ToPtr("a"), Type: lo.ToPtr("b"), Content: lo.ToPtr("")}.Validate())
	assert.ElementsMatch(t, []string{"name is required", "type is required", "content is required"}, CreateResource{}.Validate())
	assert.Equal(t, []string{"name is required"}, CreateResource{Name: lo.ToPtr(""), Type: lo.ToPtr("b"), Content: lo.ToPtr("c")}.Validate())
	assert.Empty(t, CreateResource{Name: lo.ToPtr(" "), Type: lo.ToPtr("\t"), Content: lo.ToPtr("c")}.Validate())
}

func TestUpdateResourceValidate(t *testing.T) {
	assert.Empty(t, UpdateResource{}.Validate())
	assert.Equal(t, []string{"type must not be empty"}, UpdateResource{Type: lo.ToPtr("")}.Validate())
	assert.Empty(t, UpdateResource{Name: lo.ToPtr("   ")}.Validate())
}

func TestResourceWireShape(t *testing.T) {
	r := Resource{
		ID:        "65f1c0ffee0000000000abcd",
		Name:      "doc1",
		Type:      "text",
		Content:   "hello",
		CreatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"65f1c0ffee0000000000abcd","name":"doc1","type":"text","content":"hello","created_at":"2025-01-01T12:00:00Z"}`, string(raw))
}

func TestGetCurrentTimeMillisecondPrecision(t *testing.T) {
	now := GetCurrentTime()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Millisecond))
}
