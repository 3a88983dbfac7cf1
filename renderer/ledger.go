package renderer

import (
	"bytes"

	"github.com/etnz/invtotal"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders a ledger view as a table. Summary rows are bold.
func LedgerMarkdown(mode invtotal.ValuationMode, entries []invtotal.LedgerEntry) string {
	var buf bytes.Buffer
	doc := newDoc(&buf)

	title := "Ledger"
	if mode == invtotal.ProfitLoss {
		title = "Gains and Losses"
	}
	doc.H2(title)

	if len(entries) == 0 {
		doc.PlainText("Nothing changed since the run started.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Item", "Unit Price", "Value"},
	}
	for _, e := range entries {
		if e.IsSummary() {
			table.Rows = append(table.Rows, []string{
				md.Bold(e.Description()),
				"",
				md.Bold(invtotal.SignedExact(e.Value())),
			})
			continue
		}
		table.Rows = append(table.Rows, []string{
			e.Description(),
			invtotal.Exact(e.Amount),
			invtotal.SignedExact(e.Value()),
		})
	}
	doc.Table(table)
	return doc.String()
}
