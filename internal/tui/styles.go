package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/idxreport/internal/report"
)

// StyleHeader is the full-width dark bar holding the report tabs.
var StyleHeader = lipgloss.NewStyle().
	Background(report.ColorDark).
	Foreground(report.ColorWhite).
	Padding(0, 1)

// Tab styles.
var (
	StyleTabActive = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(report.ColorCyan).
			Background(report.ColorDark).
			Padding(0, 1)

	StyleTabInactive = lipgloss.NewStyle().
				Foreground(report.ColorGray).
				Background(report.ColorDark).
				Padding(0, 1)
)

// StyleFilter highlights the active name filter.
var StyleFilter = lipgloss.NewStyle().Foreground(report.ColorPurple)
