package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithKindSetsDefaultCode(t *testing.T) {
	tests := []struct {
		kind Kind
		code int
	}{
		{KindInternal, http.StatusInternalServerError},
		{KindConnection, http.StatusServiceUnavailable},
		{KindValidation, http.StatusUnprocessableEntity},
		{KindInvalidIdentifier, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := New("test", "msg", nil).WithKind(tt.kind)
			assert.Equal(t, tt.kind, err.Kind())
			assert.Equal(t, tt.code, err.GetCode())
		})
	}
}

func TestKindOfThroughWrapping(t *testing.T) {
	base := New("store.Get", "error.notfound", nil).WithKind(KindNotFound)
	wrapped := fmt.Errorf("handler: %w", Trace("logic.Get", base))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(stderrors.New("plain")))
}

func TestWrapKeepsKindAndData(t *testing.T) {
	base := New("a", "error.notfound", nil).WithKind(KindNotFound).WithData(map[string]interface{}{"ID": "x"})
	w := Wrap(base, "b", "error.notfound")

	assert.Equal(t, KindNotFound, w.Kind())
	assert.Equal(t, http.StatusNotFound, w.GetCode())
	assert.Equal(t, "x", w.Data()["ID"])
	assert.Contains(t, w.Error(), `"trace":"b"`)
}

func TestMessageFallsBackToCause(t *testing.T) {
	err := New("a", "", stderrors.New("boom"))
	assert.Equal(t, "boom", err.Message())
	assert.True(t, stderrors.Is(err, err.cause))
}
