package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// defaultPageSize is used when no page size is configured.
const defaultPageSize = 10

// tableModel holds the paging and name filter state of one report tab.
type tableModel struct {
	page      int // 0-indexed
	pageSize  int
	search    string
	searching bool
	input     textinput.Model
}

// newTableModel initialises a tableModel. pageSize <= 0 selects defaultPageSize.
func newTableModel(pageSize int) tableModel {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	ti := textinput.New()
	ti.Placeholder = "index name..."
	ti.CharLimit = 80
	return tableModel{
		pageSize: pageSize,
		input:    ti,
	}
}

// Update handles keyboard input for pagination and filtering.
func (t tableModel) Update(msg tea.Msg) (tableModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	if t.searching {
		switch {
		case key.Matches(km, keys.Escape):
			t.searching = false
			t.input.Blur()
			if t.input.Value() == "" {
				t.search = ""
			}
			return t, nil
		case km.String() == "enter":
			t.search = strings.TrimSpace(t.input.Value())
			t.searching = false
			t.input.Blur()
			t.page = 0
			return t, nil
		default:
			var cmd tea.Cmd
			t.input, cmd = t.input.Update(km)
			return t, cmd
		}
	}

	switch {
	case key.Matches(km, keys.Search):
		t.searching = true
		t.input.SetValue(t.search)
		t.input.CursorEnd()
		t.input.Focus()
		return t, textinput.Blink
	case key.Matches(km, keys.Escape):
		t.search = ""
		t.input.SetValue("")
		t.page = 0
	case key.Matches(km, keys.PrevPage):
		if t.page > 0 {
			t.page--
		}
	case key.Matches(km, keys.NextPage):
		t.page++
	}
	return t, nil
}

// pageCount returns the total number of pages for totalRows rows at pageSize rows per page.
// Always at least 1.
func pageCount(totalRows, pageSize int) int {
	if totalRows == 0 || pageSize <= 0 {
		return 1
	}
	c := totalRows / pageSize
	if totalRows%pageSize != 0 {
		c++
	}
	return c
}

// pageBounds returns the [start, end) row range shown on page.
func pageBounds(totalRows, page, pageSize int) (start, end int) {
	if pageSize <= 0 {
		return 0, totalRows
	}
	start = page * pageSize
	if start >= totalRows || start < 0 {
		start = 0
	}
	end = start + pageSize
	if end > totalRows {
		end = totalRows
	}
	return start, end
}

// clampPage ensures the page index stays within valid bounds given the total
// number of rows and the configured pageSize.
func (t *tableModel) clampPage(totalRows int) {
	pc := pageCount(totalRows, t.pageSize)
	if t.page >= pc {
		t.page = pc - 1
	}
	if t.page < 0 {
		t.page = 0
	}
}

// matchesName reports whether name contains search, ignoring case. An empty
// search matches everything.
func matchesName(name, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(search))
}
