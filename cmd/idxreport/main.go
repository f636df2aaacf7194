// Command idxreport reports the largest, most sharded and least balanced
// Elasticsearch indices, read from a cluster or a local JSON file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dm/idxreport/internal/config"
	"github.com/dm/idxreport/internal/engine"
	"github.com/dm/idxreport/internal/logging"
	"github.com/dm/idxreport/internal/report"
	"github.com/dm/idxreport/internal/source"
	"github.com/dm/idxreport/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	fs := config.NewFlagSet("idxreport", stderr)
	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fs.Usage()
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fs.Usage()
		return 1
	}

	log, closeLog := logging.New(logging.Options{
		Verbose: cfg.Verbose,
		File:    cfg.LogFile,
		Stderr:  stderr,
	})
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, err := source.Acquire(ctx, cfg, source.Options{Logger: log})
	if err != nil {
		if kind, ok := source.KindOf(err); ok {
			log.Debug("acquisition failed", zap.Stringer("kind", kind), zap.Bool("debug", cfg.Debug))
		}
		// Message line first, then the stack trace.
		fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	log.Debug("acquired index records", zap.Int("records", len(records)), zap.Bool("debug", cfg.Debug))

	if cfg.Group {
		records = engine.GroupFamilies(records)
		log.Debug("grouped index families", zap.Int("families", len(records)))
	}

	if cfg.Interactive {
		app := tui.NewApp(records, cfg.Top, cfg.ShardTargetGB)
		if err := tui.Run(app, os.Stdin, stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	report.NewPrinter(stdout, cfg.Top, cfg.ShardTargetGB).PrintAll(records)
	return 0
}
