package engine

import (
	"sort"
	"strings"

	"github.com/dm/idxreport/internal/model"
)

// Largest returns up to n records ordered by primary store size, largest
// first. n <= 0 returns every record.
func Largest(records []model.Index, n int) []model.Index {
	out := sortIndices(records, func(a, b model.Index) int {
		return cmpInt64(b.SizeBytes, a.SizeBytes)
	})
	return limit(out, n)
}

// MostShards returns up to n records ordered by primary shard count, highest
// first. n <= 0 returns every record.
func MostShards(records []model.Index, n int) []model.Index {
	out := sortIndices(records, func(a, b model.Index) int {
		return cmpInt64(int64(b.Shards), int64(a.Shards))
	})
	return limit(out, n)
}

// LeastBalanced returns up to n rows ordered by GiB per primary shard, the
// heaviest shards first. Each row carries the shard count that would bring
// shards down to targetGB. n <= 0 returns every row.
func LeastBalanced(records []model.Index, n int, targetGB float64) []model.BalanceRow {
	sorted := sortIndices(records, func(a, b model.Index) int {
		return cmpFloat64(b.Balance(), a.Balance())
	})
	sorted = limit(sorted, n)

	rows := make([]model.BalanceRow, len(sorted))
	for i, idx := range sorted {
		rows[i] = model.BalanceRow{
			Index:       idx,
			Balance:     idx.Balance(),
			Recommended: idx.RecommendedShards(targetGB),
		}
	}
	return rows
}

// sortIndices returns a sorted copy of records. cmp orders by the primary key;
// ties are broken by name ascending (case-insensitive), then newest day first.
func sortIndices(records []model.Index, cmp func(a, b model.Index) int) []model.Index {
	out := make([]model.Index, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := cmp(a, b); c != 0 {
			return c < 0
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.Day.After(b.Day)
	})
	return out
}

func limit(records []model.Index, n int) []model.Index {
	if n <= 0 || n >= len(records) {
		return records
	}
	return records[:n]
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
