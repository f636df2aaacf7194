package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewTableModel_DefaultPageSize(t *testing.T) {
	assert.Equal(t, defaultPageSize, newTableModel(0).pageSize)
	assert.Equal(t, defaultPageSize, newTableModel(-3).pageSize)
	assert.Equal(t, 5, newTableModel(5).pageSize)
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, pageCount(tc.total, tc.size), "total=%d size=%d", tc.total, tc.size)
	}
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name               string
		total, page, size  int
		wantStart, wantEnd int
	}{
		{"first page", 25, 0, 10, 0, 10},
		{"middle page", 25, 1, 10, 10, 20},
		{"last partial page", 25, 2, 10, 20, 25},
		{"page past end resets", 25, 9, 10, 0, 10},
		{"empty", 0, 0, 10, 0, 0},
		{"no paging", 7, 3, 0, 0, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := pageBounds(tc.total, tc.page, tc.size)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestTableModel_ClampPage(t *testing.T) {
	tm := newTableModel(10)
	tm.page = 7
	tm.clampPage(25)
	assert.Equal(t, 2, tm.page)

	tm.clampPage(0)
	assert.Equal(t, 0, tm.page)
}

func TestTableModel_PrevPageStopsAtZero(t *testing.T) {
	tm := newTableModel(10)
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, tm.page)
}

func TestTableModel_EscCancelsSearchKeepsFilter(t *testing.T) {
	tm := newTableModel(10)
	tm.search = "logs"
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	assert.True(t, tm.searching)
	assert.Equal(t, "logs", tm.input.Value())

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, tm.searching)
	assert.Equal(t, "logs", tm.search, "esc while typing keeps the applied filter")

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", tm.search)
}

func TestTableModel_EnterResetsPage(t *testing.T) {
	tm := newTableModel(10)
	tm.page = 2
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" app ")})
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "app", tm.search)
	assert.Equal(t, 0, tm.page)
}

func TestTableModel_IgnoresNonKeyMsg(t *testing.T) {
	tm := newTableModel(10)
	got, cmd := tm.Update(tea.WindowSizeMsg{Width: 10})
	assert.Nil(t, cmd)
	assert.Equal(t, tm.page, got.page)
}

func TestMatchesName(t *testing.T) {
	assert.True(t, matchesName("logs-2024.01.15", ""))
	assert.True(t, matchesName("logs-2024.01.15", "LOGS"))
	assert.True(t, matchesName("App-Events", "events"))
	assert.False(t, matchesName("metrics", "logs"))
}
