package invtotal

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// This file contains the tick log codec. A tick log is a JSONL file, one tick
// per line, optionally zstd compressed, recorded from a host so that sessions
// can be replayed offline.

//go:embed schemas/tick.schema.json
var tickSchemaSource string

// Point is a canvas position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TickRecord is one line of a tick log.
type TickRecord struct {
	At        time.Time `json:"at"`
	Primary   Widget    `json:"primary"`
	Fallbacks []Widget  `json:"fallbacks,omitempty"`
	Inventory Container `json:"inventory,omitempty"`
	Equipment Container `json:"equipment,omitempty"`
	// Pointer is nil when the mouse is outside the canvas.
	Pointer *Point `json:"pointer,omitempty"`
}

// Input returns the engine input for the record.
func (r TickRecord) Input(cfg Config) TickInput {
	return TickInput{
		Now:       r.At,
		Signals:   Signals{Primary: r.Primary, Fallbacks: r.Fallbacks},
		Inventory: r.Inventory,
		Equipment: r.Equipment,
		Config:    cfg,
	}
}

// TickDecoder reads tick records from a JSONL stream.
type TickDecoder struct {
	sc     *bufio.Scanner
	schema *jsonschema.Schema
	line   int
}

// NewTickDecoder creates a decoder reading from r.
func NewTickDecoder(r io.Reader) *TickDecoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	return &TickDecoder{sc: sc}
}

// Strict enables validation of every record against the tick schema.
func (d *TickDecoder) Strict() error {
	schema, err := jsonschema.CompileString("tick.schema.json", tickSchemaSource)
	if err != nil {
		return fmt.Errorf("invalid tick schema: %w", err)
	}
	d.schema = schema
	return nil
}

// All iterates over the records. Iteration stops after the first error.
func (d *TickDecoder) All() iter.Seq2[TickRecord, error] {
	return func(yield func(TickRecord, error) bool) {
		for d.sc.Scan() {
			d.line++
			line := d.sc.Bytes()
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			rec, err := d.decode(line)
			if !yield(rec, err) || err != nil {
				return
			}
		}
		if err := d.sc.Err(); err != nil {
			yield(TickRecord{}, fmt.Errorf("line %d: %w", d.line, err))
		}
	}
}

func (d *TickDecoder) decode(line []byte) (TickRecord, error) {
	if d.schema != nil {
		var v any
		if err := json.Unmarshal(line, &v); err != nil {
			return TickRecord{}, fmt.Errorf("line %d: %w", d.line, err)
		}
		if err := d.schema.Validate(v); err != nil {
			return TickRecord{}, fmt.Errorf("line %d: %w", d.line, err)
		}
	}
	var rec TickRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		return TickRecord{}, fmt.Errorf("line %d: %w", d.line, err)
	}
	return rec, nil
}

// zstdFile closes both the decoder and the underlying file.
type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

// OpenTickLog opens a tick log file, decompressing ".zst" files on the fly.
func OpenTickLog(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return zstdFile{Decoder: dec, f: f}, nil
}

// EncodeTick appends a single record to w as a JSON line.
func EncodeTick(w io.Writer, rec TickRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// MarshalJSON writes the frame with a stable field order.
func (f Frame) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("session", f.Session)
	w.Append("at", f.At)
	w.Append("state", f.State)
	w.Append("previous", f.Previous)
	if f.Transition != NoTransition {
		w.Append("transition", f.Transition.String())
	}
	w.Append("mode", f.Mode)
	w.Append("visible", f.Visible)
	w.Optional("interstitial", f.Interstitial)
	w.Append("inventory", f.Inventory)
	w.Append("equipment", f.Equipment)
	w.Append("totals", f.Totals)
	w.Append("profit", f.Profit)
	if f.RunTime != NoRunTime {
		w.Append("runTime", FormatRunTime(f.RunTime))
	}
	return w.MarshalJSON()
}

// MarshalJSON writes the entry as it is displayed.
func (e LedgerEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("description", e.Description())
	if !e.IsSummary() {
		w.Append("item", e.Item)
		w.Append("quantity", e.Quantity)
		w.Append("amount", e.Amount)
	}
	w.Append("value", e.Value())
	return w.MarshalJSON()
}
