package mongostore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openpanel/ai-service/pkg/errors"
)

type urlConfig string

func (u urlConfig) FormatURL() string { return string(u) }

func TestConnectInvalidURL(t *testing.T) {
	p := NewProvider(urlConfig("not-a-mongo-url"))

	err := p.Connect(context.Background())
	assert.Error(t, err)
	assert.Equal(t, errors.KindConnection, errors.KindOf(err))
	assert.False(t, p.Connected())
}

func TestCloseWithoutConnectIsNoop(t *testing.T) {
	p := NewProvider(urlConfig("mongodb://localhost:27017"))
	assert.NoError(t, p.Close(context.Background()))
}

func TestHandleBeforeConnectPanics(t *testing.T) {
	p := NewProvider(urlConfig("mongodb://localhost:27017"))
	assert.Panics(t, func() {
		p.Handle("openpanel_ai")
	})
}
