package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/invtotal"
	"github.com/google/subcommands"
	"github.com/klauspost/compress/zstd"
)

type fmtCmd struct {
	outputFile string
	strict     bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats a tick log into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `invt fmt [-strict] [-o <file>] <tick log>

  Validates the tick log, drops blank lines and unknown fields, and writes
  it back one record per line with a stable field order.
  The output goes to stdout, or to the -o file, compressed when its name
  ends with ".zst".

Usage Examples:
# Compress a recorded session.
$ invt fmt -o session.jsonl.zst session.jsonl

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "write the formatted log to this file instead of stdout")
	f.BoolVar(&p.strict, "strict", false, "validate every record against the tick schema")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: fmt requires exactly one tick log")
		return subcommands.ExitUsageError
	}

	in, err := invtotal.OpenTickLog(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening tick log: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	out, err := p.output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", p.outputFile, err)
		return subcommands.ExitFailure
	}

	n, err := formatLog(out, in, p.strict)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting tick log %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if p.outputFile != "" {
		fmt.Fprintf(os.Stderr, "Formatted %d ticks into %q.\n", n, p.outputFile)
	}
	return subcommands.ExitSuccess
}

// output opens the destination of the formatted log.
func (p *fmtCmd) output() (io.WriteCloser, error) {
	if p.outputFile == "" {
		return nopCloser{stdout}, nil
	}
	file, err := os.Create(p.outputFile)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(p.outputFile, ".zst") {
		return file, nil
	}
	enc, err := zstd.NewWriter(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return zstdWriter{Encoder: enc, f: file}, nil
}

// formatLog copies every record of r to w in canonical form and returns
// the number of records.
func formatLog(w io.Writer, r io.Reader, strict bool) (int, error) {
	dec := invtotal.NewTickDecoder(r)
	if strict {
		if err := dec.Strict(); err != nil {
			return 0, err
		}
	}
	n := 0
	for rec, err := range dec.All() {
		if err != nil {
			return n, err
		}
		if err := invtotal.EncodeTick(w, rec); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// zstdWriter flushes the encoder before closing the file.
type zstdWriter struct {
	*zstd.Encoder
	f *os.File
}

func (z zstdWriter) Close() error {
	if err := z.Encoder.Close(); err != nil {
		z.f.Close()
		return err
	}
	return z.f.Close()
}
