package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/idxreport/internal/model"
)

func TestFamilyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"logs-app-2024.01.15", "logs-app"},
		{"logs-app-2024-01-15", "logs-app"},
		{"logs_app_2024.01.15", "logs_app"},
		{"metrics.2024.01.15", "metrics"},
		{"weekly-2024.w03", "weekly"},
		{"weekly-2024-W3", "weekly"},
		{"monthly-2024.01", "monthly"},
		{"plain-index", "plain-index"},
		{".kibana", ".kibana"},
		{"2024.01.15", "2024.01.15"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, FamilyName(tc.in))
		})
	}
}

func TestGroupFamilies(t *testing.T) {
	d13 := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	d14 := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	d15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	in := []model.Index{
		{Name: "logs-2024.01.15", Day: d15, Shards: 2, SizeBytes: 100},
		{Name: "logs-2024.01.14", Day: d14, Shards: 2, SizeBytes: 50},
		{Name: "logs-2024.01.13", Day: d13, Shards: 1, SizeBytes: 25},
		{Name: "Billing-2024.01.15", Day: d15, Shards: 1, SizeBytes: 7},
		{Name: "static", Shards: 4, SizeBytes: 1000},
	}

	got := GroupFamilies(in)
	require.Len(t, got, 3)
	assert.Equal(t, model.Index{Name: "Billing", Day: d15, Shards: 1, SizeBytes: 7}, got[0])
	assert.Equal(t, model.Index{Name: "logs", Day: d15, Shards: 5, SizeBytes: 175}, got[1])
	assert.Equal(t, model.Index{Name: "static", Shards: 4, SizeBytes: 1000}, got[2])
}

func TestGroupFamilies_Empty(t *testing.T) {
	got := GroupFamilies(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
