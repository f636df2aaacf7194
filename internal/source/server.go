package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dm/idxreport/internal/client"
	"github.com/dm/idxreport/internal/model"
)

// FetchServer queries one daily index pattern per day, newest first: now,
// now-1d, ... now-(days-1)d. Days are fetched one after another and the first
// failure aborts the whole fetch.
func FetchServer(ctx context.Context, c client.ESClient, days int, now time.Time, log *zap.Logger) ([]model.Index, error) {
	if log == nil {
		log = zap.NewNop()
	}
	src := c.BaseURL()
	if days < 1 {
		return nil, newError(NetworkError, OriginServer, src, fmt.Errorf("days must be at least 1, got %d", days))
	}

	var out []model.Index
	for i := 0; i < days; i++ {
		day := startOfDay(now.AddDate(0, 0, -i))
		pattern := client.DailyPattern(day)

		records, err := c.CatIndices(ctx, pattern)
		if err != nil {
			kind := NetworkError
			if errors.Is(err, client.ErrDecode) {
				kind = ParseError
			}
			return nil, newError(kind, OriginServer, src, fmt.Errorf("%s: %w", pattern, err))
		}

		indices, err := toIndices(records, day)
		if err != nil {
			return nil, newError(ParseError, OriginServer, src, fmt.Errorf("%s: %w", pattern, err))
		}

		log.Debug("fetched daily indices", zap.String("pattern", pattern), zap.Int("records", len(indices)))
		out = append(out, indices...)
	}

	if out == nil {
		out = []model.Index{}
	}
	return out, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
