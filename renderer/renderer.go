// Package renderer prints inventory total frames and ledgers as markdown, for
// terminals and reports.
package renderer

import (
	"bytes"

	"github.com/etnz/invtotal"
	md "github.com/nao1215/markdown"
)

// ReportOptions holds configuration for rendering a session report.
type ReportOptions struct {
	ExactGP  bool // Show exact amounts in the summary instead of abbreviations.
	NoLedger bool // Do not render the ledger section.
}

// Report renders the frame summary followed by the ledger matching the mode.
func Report(f invtotal.Frame, entries []invtotal.LedgerEntry, opts ReportOptions) string {
	var buf bytes.Buffer
	buf.WriteString(FrameMarkdown(f, opts.ExactGP))
	if !opts.NoLedger {
		buf.WriteString("\n")
		buf.WriteString(LedgerMarkdown(f.Mode, entries))
	}
	return buf.String()
}

// newDoc returns a markdown builder writing into buf.
func newDoc(buf *bytes.Buffer) *md.Markdown {
	return md.NewMarkdown(buf)
}
