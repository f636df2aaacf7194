package client

import (
	"context"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// catIndicesColumns is the h= column list requested from /_cat/indices.
var catIndicesColumns = []string{"index", "pri.store.size", "pri"}

// DailyPattern returns the wildcard index pattern matching every index whose
// name carries the given day, e.g. "*2024*01*15".
func DailyPattern(day time.Time) string {
	return day.Format("*2006*01*02")
}

// CatIndices fetches the indices matching pattern from
// /_cat/indices/<pattern>?v&h=index,pri.store.size,pri&format=json&bytes=b.
// An empty pattern lists every index.
func (c *DefaultClient) CatIndices(ctx context.Context, pattern string) ([]IndexInfo, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	verbose := true
	req := esapi.CatIndicesRequest{
		H:      catIndicesColumns,
		Format: "json",
		Bytes:  "b",
		V:      &verbose,
	}
	if pattern != "" {
		req.Index = []string{pattern}
	}

	c.log.Debug("cat indices", zap.String("pattern", pattern), zap.String("base_url", c.config.BaseURL))

	res, err := req.Do(reqCtx, c.transport)
	if err != nil {
		return nil, fmt.Errorf("CatIndices: do request: %w", err)
	}

	body, err := readBody(res)
	if err != nil {
		return nil, fmt.Errorf("CatIndices: %w", err)
	}

	var result []IndexInfo
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("CatIndices: %w: %w", ErrDecode, err)
	}

	c.log.Debug("cat indices done", zap.String("pattern", pattern), zap.Int("records", len(result)))
	return result, nil
}
