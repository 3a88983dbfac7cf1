package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/invtotal"
	"github.com/etnz/invtotal/overlay"
	"github.com/etnz/invtotal/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// replayCmd holds the flags for the 'replay' subcommand.
type replayCmd struct {
	strict   bool
	json     bool
	exact    bool
	mode     string
	noLedger bool
	overlay  bool
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "replay a tick log and report the session" }
func (*replayCmd) Usage() string {
	return `invt replay [-strict] [-json] [-exact] [-mode <mode>] [-no-ledger] [-overlay] <tick log>

  Feeds a recorded tick log (JSONL, optionally zstd compressed with a .zst
  extension) through a session, then prints the final totals and the ledger.
  With -json, prints one frame per tick instead.
  See 'invt topic ticklog' for the tick log format.
`
}

func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "validate every record against the tick schema")
	f.BoolVar(&c.json, "json", false, "print one JSON frame per tick")
	f.BoolVar(&c.exact, "exact", false, "print exact amounts in the summary")
	f.StringVar(&c.mode, "mode", "", "override the configured valuation mode: total or profit-loss")
	f.BoolVar(&c.noLedger, "no-ledger", false, "do not print the ledger")
	f.BoolVar(&c.overlay, "overlay", false, "also print the overlay layout of the last tick")
}

func (c *replayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: replay requires exactly one tick log")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.mode != "" {
		if cfg.Mode, err = invtotal.ParseValuationMode(c.mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing mode: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	prices, err := LoadPrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	r, err := invtotal.OpenTickLog(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening tick log %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	var onFrame func(invtotal.TickRecord, invtotal.Frame) error
	if c.json {
		enc := json.NewEncoder(stdout)
		onFrame = func(_ invtotal.TickRecord, fr invtotal.Frame) error { return enc.Encode(fr) }
	}

	s, last, err := replayLog(r, cfg, prices, logger, c.strict, onFrame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	if c.json {
		return subcommands.ExitSuccess
	}

	frame := s.Last()
	report := renderer.Report(frame, s.Ledger(frame.Mode), renderer.ReportOptions{
		ExactGP:  c.exact || cfg.ShowExactGP,
		NoLedger: c.noLedger,
	})
	if c.overlay {
		layout := overlay.New(nil).Present(overlay.Input{
			Frame:   frame,
			Config:  cfg,
			Pointer: last.Pointer,
			Now:     frame.At,
			Ledger:  s,
		})
		report += "\n" + renderer.LayoutMarkdown(layout)
	}
	printMarkdown(report)
	return subcommands.ExitSuccess
}

// replayLog feeds every record read from r through a new session, calling
// onFrame, if not nil, after each tick. It returns the session and the last
// record.
func replayLog(r io.Reader, cfg invtotal.Config, catalog invtotal.Catalog, logger *zap.Logger, strict bool, onFrame func(invtotal.TickRecord, invtotal.Frame) error) (*invtotal.Session, invtotal.TickRecord, error) {
	dec := invtotal.NewTickDecoder(r)
	if strict {
		if err := dec.Strict(); err != nil {
			return nil, invtotal.TickRecord{}, err
		}
	}

	s := invtotal.NewSession(catalog, invtotal.WithLogger(logger))
	var last invtotal.TickRecord
	ticks := 0
	for rec, err := range dec.All() {
		if err != nil {
			return nil, last, err
		}
		frame := s.Tick(rec.Input(cfg))
		last = rec
		ticks++
		if onFrame != nil {
			if err := onFrame(rec, frame); err != nil {
				return nil, last, err
			}
		}
	}
	logger.Info("replay done", zap.Int("ticks", ticks), zap.String("session", s.ID()))
	return s, last, nil
}
