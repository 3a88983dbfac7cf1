package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/invtotal"
	md "github.com/nao1215/markdown"
)

// FrameMarkdown renders the headline numbers of a frame.
func FrameMarkdown(f invtotal.Frame, exact bool) string {
	var buf bytes.Buffer
	doc := newDoc(&buf)

	doc.H1("Inventory Total")

	headline := "Total"
	if f.Mode == invtotal.ProfitLoss {
		headline = "Profit / Loss"
	}
	amount := invtotal.TotalText(f.Amount(), exact)
	if f.Interstitial {
		amount += " (settling)"
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold(headline), md.Bold(amount)},
		Rows: [][]string{
			{"State", f.State.String()},
			{"Carried Value", invtotal.Exact(f.Inventory.Value)},
			{"Carried Quantity", invtotal.GroupQuantity(f.Inventory.Quantity)},
			{"Worn Value", invtotal.Exact(f.Equipment.Value)},
		},
	}
	if f.Mode == invtotal.ProfitLoss {
		table.Rows = append(table.Rows, []string{"Since Run Start", invtotal.SignedExact(f.Profit)})
	}
	if f.RunTime != invtotal.NoRunTime {
		table.Rows = append(table.Rows, []string{"Run Time", invtotal.FormatRunTime(f.RunTime)})
	}
	doc.Table(table)

	if !f.At.IsZero() {
		doc.PlainText(fmt.Sprintf("As of %s.", f.At.Format("2006-01-02 15:04:05")))
	}
	return doc.String()
}
