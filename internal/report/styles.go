package report

import "github.com/charmbracelet/lipgloss"

// Color constants shared by the printed reports and the interactive viewer.
var (
	ColorGreen  = lipgloss.Color("#10b981")
	ColorYellow = lipgloss.Color("#f59e0b")
	ColorRed    = lipgloss.Color("#ef4444")
	ColorGray   = lipgloss.Color("#6b7280")
	ColorBlue   = lipgloss.Color("#3b82f6")
	ColorCyan   = lipgloss.Color("#06b6d4")
	ColorPurple = lipgloss.Color("#8b5cf6")
	ColorWhite  = lipgloss.Color("#f8fafc")
	ColorDark   = lipgloss.Color("#1e293b")
)

// StyleTitle renders the heading printed above each report.
var StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)

// StyleDim renders secondary text such as empty-table notes.
var StyleDim = lipgloss.NewStyle().Foreground(ColorGray)

// Named color styles for table cell coloring.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
)

// BalanceStyle colors a GiB-per-shard ratio against the target shard size:
// red above 1.5x target, yellow above target, green otherwise.
func BalanceStyle(ratio, targetGB float64) lipgloss.Style {
	switch {
	case targetGB > 0 && ratio > targetGB*1.5:
		return StyleRed
	case targetGB > 0 && ratio > targetGB:
		return StyleYellow
	default:
		return StyleGreen
	}
}
