// Package report prints the index reports to a writer.
package report

import (
	"fmt"
	"io"

	"github.com/dm/idxreport/internal/engine"
	"github.com/dm/idxreport/internal/model"
)

// Report titles, shared with the interactive viewer.
const (
	TitleLargest       = "Largest indexes by primary storage size"
	TitleMostShards    = "Indexes with the most primary shards"
	TitleLeastBalanced = "Least balanced indexes (GB per primary shard)"
)

// Printer writes the three reports. Write errors are ignored: a report pass
// never fails.
type Printer struct {
	w        io.Writer
	top      int
	targetGB float64
}

// NewPrinter returns a Printer that prints up to top rows per report (0 means
// all) and recommends shard counts against targetGB.
func NewPrinter(w io.Writer, top int, targetGB float64) *Printer {
	return &Printer{w: w, top: top, targetGB: targetGB}
}

// PrintAll runs every report pass exactly once, in the fixed order largest,
// most shards, least balanced.
func (p *Printer) PrintAll(records []model.Index) {
	p.PrintLargestIndexes(records)
	p.PrintMostShards(records)
	p.PrintLeastBalanced(records)
}

// PrintLargestIndexes prints records ranked by primary store size, descending.
func (p *Printer) PrintLargestIndexes(records []model.Index) {
	p.section(TitleLargest, RenderLargest(engine.Largest(records, p.top), 0))
}

// PrintMostShards prints records ranked by primary shard count, descending.
func (p *Printer) PrintMostShards(records []model.Index) {
	p.section(TitleMostShards, RenderMostShards(engine.MostShards(records, p.top), 0))
}

// PrintLeastBalanced prints records ranked by GiB per primary shard,
// descending, with the recommended primary shard count for each.
func (p *Printer) PrintLeastBalanced(records []model.Index) {
	rows := engine.LeastBalanced(records, p.top, p.targetGB)
	title := fmt.Sprintf("%s, target %s GB/shard", TitleLeastBalanced, trimFloat(p.targetGB))
	p.section(title, RenderLeastBalanced(rows, 0, p.targetGB))
}

func (p *Printer) section(title, body string) {
	_, _ = fmt.Fprintln(p.w, StyleTitle.Render(title))
	_, _ = fmt.Fprintln(p.w, body)
	_, _ = fmt.Fprintln(p.w)
}

// trimFloat formats f without trailing zeros, e.g. 30 → "30", 12.5 → "12.5".
func trimFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
