package tui

import "github.com/dm/idxreport/internal/report"

// tabHints describes how the active report is ranked.
var tabHints = [tabCount]string{
	"ranked by primary store size",
	"ranked by primary shard count",
	"GB/Shard: green at or under target, yellow over, red over 1.5x",
}

// renderFooter renders the active report's hint and a help prompt, or every
// key binding when help is toggled on.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	text := tabHints[app.active] + "  ? for help"
	if app.showHelp {
		text = helpText
	}
	return report.StyleDim.Width(width).Render(text)
}
