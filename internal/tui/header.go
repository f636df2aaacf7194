package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/idxreport/internal/format"
)

// renderHeader renders the top bar: report tabs on the left, record count,
// total primary shards and total primary size on the right.
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		style := StyleTabInactive
		if reportTab(i) == app.active {
			style = StyleTabActive
		}
		tabs = append(tabs, style.Render(name))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var shards, size int64
	for _, r := range app.records {
		shards += int64(r.Shards)
		size += r.SizeBytes
	}
	right := fmt.Sprintf("%s indices  %s shards  %s",
		format.FormatNumber(int64(len(app.records))), format.FormatNumber(shards), format.FormatBytes(size))

	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	spacing := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return StyleHeader.Width(width).Render(left + strings.Repeat(" ", spacing) + right)
}
