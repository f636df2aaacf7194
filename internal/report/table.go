package report

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/dm/idxreport/internal/format"
	"github.com/dm/idxreport/internal/model"
)

const (
	emptyText       = "  (no indices)" // rendered in place of a table with no rows
	numericColStart = 2                // columns from here on are right-aligned
)

// Column headers per report.
var (
	largestHeaders = []string{"#", "Index", "Size", "Shards"}
	shardsHeaders  = []string{"#", "Index", "Shards", "Size"}
	balanceHeaders = []string{"#", "Index", "Size", "Shards", "GB/Shard", "Recommended"}
)

// RenderLargest renders already-ranked rows as the largest indexes table.
// offset is the rank of rows[0] minus one, so paged views keep global ranks.
func RenderLargest(rows []model.Index, offset int) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.Itoa(offset + i + 1),
			sanitize(r.Name),
			format.FormatGB(r.SizeBytes),
			strconv.Itoa(r.Shards),
		}
	}
	return renderTable(largestHeaders, cells, 2, nil)
}

// RenderMostShards renders already-ranked rows as the most shards table.
func RenderMostShards(rows []model.Index, offset int) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.Itoa(offset + i + 1),
			sanitize(r.Name),
			strconv.Itoa(r.Shards),
			format.FormatGB(r.SizeBytes),
		}
	}
	return renderTable(shardsHeaders, cells, 2, nil)
}

// RenderLeastBalanced renders already-ranked rows as the least balanced
// table. The GB/Shard column is colored against targetGB.
func RenderLeastBalanced(rows []model.BalanceRow, offset int, targetGB float64) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.Itoa(offset + i + 1),
			sanitize(r.Name),
			format.FormatGB(r.SizeBytes),
			strconv.Itoa(r.Shards),
			format.FormatRatio(r.Balance),
			strconv.Itoa(r.Recommended),
		}
	}
	cellStyle := func(row, col int) (lipgloss.Style, bool) {
		if col != 4 || row < 0 || row >= len(rows) {
			return lipgloss.Style{}, false
		}
		return BalanceStyle(rows[row].Balance, targetGB), true
	}
	return renderTable(balanceHeaders, cells, 4, cellStyle)
}

// renderTable builds a lipgloss table with a header rule and no outer border.
// accentCol is the column holding the ranked metric; override may replace the
// style of any body cell.
func renderTable(headers []string, cells [][]string, accentCol int, override func(row, col int) (lipgloss.Style, bool)) string {
	if len(cells) == 0 {
		return StyleDim.Render(emptyText)
	}

	t := ltable.New().
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if col >= numericColStart || col == 0 {
				base = base.Align(lipgloss.Right)
			}
			if row == ltable.HeaderRow {
				if col == accentCol {
					return base.Bold(true).Foreground(ColorBlue)
				}
				return base.Bold(true).Foreground(ColorGray)
			}
			if override != nil {
				if s, ok := override(row, col); ok {
					return base.Inherit(s)
				}
			}
			if col == accentCol {
				return base.Foreground(ColorCyan)
			}
			return base.Foreground(ColorWhite)
		}).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorGray)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	return t.String()
}

// sanitize strips control characters so a hostile index name cannot inject
// terminal escape sequences.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
