package source

import (
	"context"
	"errors"

	"github.com/dm/idxreport/internal/client"
)

// MockESClient implements client.ESClient for testing.
type MockESClient struct {
	CatIndicesFn func(ctx context.Context, pattern string) ([]client.IndexInfo, error)
	patterns     []string
}

func (m *MockESClient) CatIndices(ctx context.Context, pattern string) ([]client.IndexInfo, error) {
	m.patterns = append(m.patterns, pattern)
	if m.CatIndicesFn != nil {
		return m.CatIndicesFn(ctx, pattern)
	}
	return []client.IndexInfo{{Index: "test-index", Pri: "1", PriStoreSize: "1024"}}, nil
}

func (m *MockESClient) BaseURL() string {
	return "http://mock:9200"
}

var errMockFailure = errors.New("mock failure")
