package mongostore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openpanel/ai-service/app/store/storetest"
	"github.com/openpanel/ai-service/pkg/testutils"
)

type testConfig struct {
	url    string
	dbname string
}

func (c testConfig) FormatURL() string    { return c.url }
func (c testConfig) DatabaseName() string { return c.dbname }

func setupProvider(t *testing.T) *Provider {
	testutils.LoadEnvOrPanic()
	url := os.Getenv("MONGODB_URL")
	if url == "" {
		t.Skip("MONGODB_URL not set")
	}

	p := Setup(testConfig{
		url:    url,
		dbname: fmt.Sprintf("ai_service_test_%d", time.Now().UnixNano()),
	})
	ctx := context.Background()
	require.NoError(t, p.Connect(ctx))
	t.Cleanup(func() {
		_ = p.Database().Drop(ctx)
		_ = p.Close(ctx)
	})
	return p
}

func TestResourceStore(t *testing.T) {
	p := setupProvider(t)
	storetest.RunResourceStoreTests(t, p.ResourceStore())
}
