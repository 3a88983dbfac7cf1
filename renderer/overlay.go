package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/invtotal/overlay"
	md "github.com/nao1215/markdown"
)

// LayoutMarkdown describes what the overlay would paint.
func LayoutMarkdown(l overlay.Layout) string {
	var buf bytes.Buffer
	doc := newDoc(&buf)
	doc.H2("Overlay")

	if !l.Visible {
		doc.PlainText("The overlay is hidden.")
		return doc.String()
	}

	text := l.Total.Value
	if l.RunTime != nil {
		text += l.RunTime.Value
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Property", "Value"},
		Rows: [][]string{
			{"Text", md.Code(text)},
			{"Box", fmt.Sprint(l.Box)},
			{"Background", l.Palette.Background.String()},
			{"Text Color", l.Palette.Text.String()},
		},
	}
	if l.Coin != nil {
		table.Rows = append(table.Rows, []string{"Coin Stack", fmt.Sprintf("%d (tier %d)", l.Coin.Quantity, l.Coin.Tier)})
	}
	doc.Table(table)

	if l.Tooltip != nil {
		doc.H3("Tooltip")
		rows := make([]string, 0, len(l.Tooltip.Rows))
		for _, r := range l.Tooltip.Rows {
			rows = append(rows, fmt.Sprintf("%s: %s", r.Description.Value, r.Amount.Value))
		}
		doc.BulletList(rows...)
	}
	return doc.String()
}
