// Package tui is an interactive viewer over the acquired index records. It
// never fetches; it ranks and pages what it was given.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/idxreport/internal/engine"
	"github.com/dm/idxreport/internal/format"
	"github.com/dm/idxreport/internal/model"
	"github.com/dm/idxreport/internal/report"
)

type reportTab int

const (
	tabLargest reportTab = iota
	tabMostShards
	tabLeastBalanced
	tabCount
)

var tabNames = [tabCount]string{"Largest", "Most shards", "Least balanced"}

// App is the root Bubble Tea model for the report viewer.
type App struct {
	records  []model.Index
	targetGB float64

	tables [tabCount]tableModel
	active reportTab

	// Layout
	width, height int

	// UI state
	showHelp bool
}

// NewApp creates an App over records. pageSize <= 0 selects the default page
// size; targetGB drives the least balanced report.
func NewApp(records []model.Index, pageSize int, targetGB float64) *App {
	app := &App{records: records, targetGB: targetGB}
	for i := range app.tables {
		app.tables[i] = newTableModel(pageSize)
	}
	return app
}

// Init implements tea.Model.
func (app *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It is the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case tea.KeyMsg:
		tbl := &app.tables[app.active]
		// While the filter input is open every key except ctrl+c is text.
		if tbl.searching && msg.String() != "ctrl+c" {
			return app, app.updateTable(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Tab):
			app.active = (app.active + 1) % tabCount
		case key.Matches(msg, keys.ShiftTab):
			app.active = (app.active + tabCount - 1) % tabCount
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		default:
			return app, app.updateTable(msg)
		}
	}

	return app, nil
}

// updateTable forwards msg to the active tab and keeps its page in range.
func (app *App) updateTable(msg tea.Msg) tea.Cmd {
	tbl := &app.tables[app.active]
	var cmd tea.Cmd
	*tbl, cmd = tbl.Update(msg)
	tbl.clampPage(len(app.filtered(tbl.search)))
	return cmd
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	parts := []string{
		renderHeader(app),
		app.renderActive(),
		renderFooter(app),
	}
	return strings.Join(parts, "\n")
}

// filtered returns the records whose name matches search.
func (app *App) filtered(search string) []model.Index {
	if search == "" {
		return app.records
	}
	out := make([]model.Index, 0, len(app.records))
	for _, r := range app.records {
		if matchesName(r.Name, search) {
			out = append(out, r)
		}
	}
	return out
}

// renderActive renders the title line and the current page of the active report.
func (app *App) renderActive() string {
	tbl := app.tables[app.active]
	records := app.filtered(tbl.search)
	start, end := pageBounds(len(records), tbl.page, tbl.pageSize)

	var title, body string
	switch app.active {
	case tabMostShards:
		title = report.TitleMostShards
		body = report.RenderMostShards(engine.MostShards(records, 0)[start:end], start)
	case tabLeastBalanced:
		title = fmt.Sprintf("%s, target %g GB/shard", report.TitleLeastBalanced, app.targetGB)
		body = report.RenderLeastBalanced(engine.LeastBalanced(records, 0, app.targetGB)[start:end], start, app.targetGB)
	default:
		title = report.TitleLargest
		body = report.RenderLargest(engine.Largest(records, 0)[start:end], start)
	}

	return report.StyleTitle.Render(title) + "  " + renderStatus(tbl, len(records)) + "\n" + body
}

// renderStatus renders the filter input while typing, or the page position
// and active filter otherwise.
func renderStatus(tbl tableModel, total int) string {
	if tbl.searching {
		return "Filter: " + tbl.input.View()
	}
	status := report.StyleDim.Render(fmt.Sprintf("Page %d/%d  %s indices",
		tbl.page+1, pageCount(total, tbl.pageSize), format.FormatNumber(int64(total))))
	if tbl.search != "" {
		status += "  " + StyleFilter.Render(fmt.Sprintf("filter=%q", tbl.search))
	}
	return status
}

// Run starts the viewer on the alternate screen and blocks until the user quits.
func Run(app *App, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
