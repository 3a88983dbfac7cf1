package overlay

import (
	"image"

	"github.com/etnz/invtotal"
)

// SectionPadding is the vertical gap between tooltip sections.
const SectionPadding = 5

// Tooltip colors.
var (
	TooltipBackground = invtotal.MustParseColor("#1B1B1B")
	TooltipBorder     = invtotal.MustParseColor("#0B0B0B")
	DetailText        = invtotal.MustParseColor("#FFF7E3")
	Orange            = invtotal.MustParseColor("#FFC800")
	Yellow            = invtotal.MustParseColor("#FFFF00")
	Green             = invtotal.MustParseColor("#00FF00")
	Red               = invtotal.MustParseColor("#FF0000")
	White             = invtotal.MustParseColor("#FFFFFF")
)

// Row is one line of the tooltip.
type Row struct {
	Entry       invtotal.LedgerEntry
	Description Text
	Amount      Text
}

// Tooltip is the ledger detail box drawn next to the pointer.
type Tooltip struct {
	Box  image.Rectangle
	Rows []Row
}

// layoutTooltip places the ledger rows left of the pointer, vertically centered.
func (p *Presenter) layoutTooltip(entries []invtotal.LedgerEntry, mode invtotal.ValuationMode, pointer image.Point) *Tooltip {
	descriptions := make([]string, len(entries))
	amounts := make([]string, len(entries))
	maxWidth := 0
	for i, e := range entries {
		descriptions[i] = e.Description()
		amounts[i] = invtotal.Exact(e.Value())
		maxWidth = max(maxWidth, p.measurer.StringWidth(descriptions[i])+p.measurer.StringWidth(amounts[i]))
	}

	// vertical offsets: a gap before the summaries, and between gains and losses.
	offsets := make([]int, len(entries))
	offset := 0
	for i, e := range entries {
		if i > 0 {
			prev := entries[i-1]
			switch {
			case !prev.IsSummary() && e.IsSummary():
				offset += SectionPadding
			case mode == invtotal.ProfitLoss && !prev.IsSummary() && prev.Value() >= 0 && e.Value() < 0:
				offset += SectionPadding
			}
		}
		offsets[i] = offset
	}

	rowW := maxWidth + 20 + HorizontalPadding*2
	rowH := p.measurer.LineHeight()
	h := len(entries)*rowH + TextYOffset/2 + offset + 2
	x := pointer.X - rowW - 10
	y := pointer.Y - h/2

	t := &Tooltip{Box: image.Rect(x, y, x+rowW, y+h)}
	for i, e := range entries {
		textY := y + rowH*i + TextYOffset + offsets[i]
		amountW := p.measurer.StringWidth(amounts[i])
		t.Rows = append(t.Rows, Row{
			Entry: e,
			Description: Text{
				Value: descriptions[i],
				At:    image.Pt(x+HorizontalPadding, textY),
				Color: descriptionColor(e),
			},
			Amount: Text{
				Value: amounts[i],
				At:    image.Pt(x+rowW-HorizontalPadding-amountW, textY),
				Color: amountColor(e.Value(), mode),
			},
		})
	}
	return t
}

func descriptionColor(e invtotal.LedgerEntry) invtotal.Color {
	switch e.Kind {
	case invtotal.SummaryTotal:
		return Orange
	case invtotal.SummaryGain, invtotal.SummaryLoss:
		return Yellow
	default:
		return DetailText
	}
}

// amountColor is green for gains; losses are red only in the gain/loss view.
func amountColor(value int64, mode invtotal.ValuationMode) invtotal.Color {
	switch {
	case value > 0:
		return Green
	case value < 0 && mode == invtotal.ProfitLoss:
		return Red
	default:
		return White
	}
}

// RoundedContains reports whether pt lies inside r with corners rounded by
// arc, the corner arc diameter.
func RoundedContains(r image.Rectangle, arc int, pt image.Point) bool {
	if !pt.In(r) {
		return false
	}
	a := float64(min(arc, r.Dx())) / 2
	b := float64(min(arc, r.Dy())) / 2
	if a <= 0 || b <= 0 {
		return true
	}
	px, py := float64(pt.X), float64(pt.Y)
	var cx, cy float64
	switch {
	case px < float64(r.Min.X)+a:
		cx = float64(r.Min.X) + a
	case px >= float64(r.Max.X)-a:
		cx = float64(r.Max.X) - a
	default:
		return true
	}
	switch {
	case py < float64(r.Min.Y)+b:
		cy = float64(r.Min.Y) + b
	case py >= float64(r.Max.Y)-b:
		cy = float64(r.Max.Y) - b
	default:
		return true
	}
	dx, dy := (px-cx)/a, (py-cy)/b
	return dx*dx+dy*dy <= 1
}
