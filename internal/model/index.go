package model

import (
	"math"
	"time"
)

const oneGiB = float64(1 << 30)

// Index is a single index record as seen by the reports. Size and shard
// count refer to primaries only; replicas are not part of the cat query.
type Index struct {
	Name      string
	Day       time.Time // day the record was fetched for; zero when loaded from file
	Shards    int       // primary shard count
	SizeBytes int64     // primary store size
}

// SizeGB returns the primary store size in GiB.
func (i Index) SizeGB() float64 {
	return float64(i.SizeBytes) / oneGiB
}

// Balance returns GiB stored per primary shard. Zero shards yield 0.
func (i Index) Balance() float64 {
	if i.Shards <= 0 {
		return 0
	}
	return i.SizeGB() / float64(i.Shards)
}

// RecommendedShards returns the primary shard count that keeps every shard at
// or under targetGB. Always at least 1.
func (i Index) RecommendedShards(targetGB float64) int {
	if targetGB <= 0 {
		return 1
	}
	n := int(math.Ceil(i.SizeGB() / targetGB))
	if n < 1 {
		return 1
	}
	return n
}

// BalanceRow holds display-ready data for a single row in the least balanced report.
type BalanceRow struct {
	Index
	Balance     float64 // GiB per primary shard
	Recommended int     // primary shards needed to reach the target shard size
}
