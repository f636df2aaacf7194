package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/multierr"

	"github.com/dm/idxreport/internal/client"
	"github.com/dm/idxreport/internal/format"
	"github.com/dm/idxreport/internal/model"
)

// toIndices converts cat records into model.Index values. Every malformed
// record is reported; the combined error is nil only if all records converted.
func toIndices(records []client.IndexInfo, day time.Time) ([]model.Index, error) {
	out := make([]model.Index, 0, len(records))
	var errs error
	for i, r := range records {
		idx, err := toIndex(r, day)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("record %d (%q): %w", i, r.Index, err))
			continue
		}
		out = append(out, idx)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func toIndex(r client.IndexInfo, day time.Time) (model.Index, error) {
	name := strings.TrimSpace(r.Index)
	if name == "" {
		return model.Index{}, fmt.Errorf("missing index name")
	}

	shards, err := parseShards(r.Pri)
	if err != nil {
		return model.Index{}, fmt.Errorf("pri %q: %w", r.Pri, err)
	}

	// Closed indices report no store size. Sizes exported without bytes=b
	// carry a unit suffix.
	var size int64
	if s := strings.TrimSpace(r.PriStoreSize); s != "" {
		size, err = format.ParseBytes(s)
		if err != nil {
			return model.Index{}, fmt.Errorf("pri.store.size %q: %w", r.PriStoreSize, err)
		}
		if size < 0 {
			return model.Index{}, fmt.Errorf("pri.store.size %q: negative size", r.PriStoreSize)
		}
	}

	return model.Index{
		Name:      name,
		Day:       day,
		Shards:    shards,
		SizeBytes: size,
	}, nil
}

// parseShards reads a primary shard count. Only plain decimal digits are
// accepted; cast would read a leading 0 as octal and 0x as hex.
func parseShards(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("not a non-negative decimal integer")
	}
	if s = strings.TrimLeft(s, "0"); s == "" {
		s = "0"
	}
	return cast.ToIntE(s)
}
