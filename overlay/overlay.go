// Package overlay computes what the inventory total overlay looks like for a
// frame: whether it is shown, its colors, the geometry of the box, the coin
// stack and the ledger tooltip. Painting is left to the host, which only needs
// to fill and stroke rounded rectangles, draw text and draw the coin image at
// the computed positions.
package overlay

import (
	"image"
	"time"
	"unicode/utf8"

	"github.com/etnz/invtotal"
)

// Layout constants, in pixels.
const (
	OriginX           = 100
	OriginY           = 100
	BoxHeight         = 20
	HorizontalPadding = 10
	TextYOffset       = 17
	CoinSize          = 15
	CoinPadding       = 3
	coinImageOffset   = 4
)

// TooltipDelay is the minimum time after a new run before the tooltip shows.
const TooltipDelay = invtotal.StabilizationDelay + 500*time.Millisecond

// Measurer is the host text layout collaborator.
type Measurer interface {
	StringWidth(s string) int
	LineHeight() int
}

// FixedMeasurer approximates a font with a fixed advance per rune.
type FixedMeasurer struct {
	Advance int
	Height  int
}

// DefaultMeasurer approximates the small game font.
var DefaultMeasurer = FixedMeasurer{Advance: 5, Height: 14}

// StringWidth implements Measurer.
func (m FixedMeasurer) StringWidth(s string) int { return m.Advance * utf8.RuneCountInString(s) }

// LineHeight implements Measurer.
func (m FixedMeasurer) LineHeight() int { return m.Height }

// LedgerSource provides the ledger views on demand. *invtotal.Session is one.
type LedgerSource interface {
	Ledger(mode invtotal.ValuationMode) []invtotal.LedgerEntry
}

// Input is what the presenter needs for one render.
type Input struct {
	Frame  invtotal.Frame
	Config invtotal.Config
	// Pointer is nil when the mouse is not on the canvas.
	Pointer *invtotal.Point
	Now     time.Time
	Ledger  LedgerSource
}

// Text is a string to draw at a baseline position.
type Text struct {
	Value string
	At    image.Point
	Color invtotal.Color
}

// Coin is the coin stack image to draw.
type Coin struct {
	Quantity int32
	Tier     int32
	Bounds   image.Rectangle
}

// Layout is everything the host needs to paint the overlay.
type Layout struct {
	Visible bool
	// Box is the outer bounds, border included.
	Box image.Rectangle
	// Fill is the background area inside the border.
	Fill    image.Rectangle
	Radius  int
	Palette invtotal.Palette
	// Stroke is false for a fully transparent background.
	Stroke  bool
	Amount  int64
	Total   Text
	RunTime *Text
	Coin    *Coin
	Tooltip *Tooltip
}

// Presenter computes layouts.
type Presenter struct {
	measurer Measurer
}

// New creates a presenter measuring text with m, DefaultMeasurer if nil.
func New(m Measurer) *Presenter {
	if m == nil {
		m = DefaultMeasurer
	}
	return &Presenter{measurer: m}
}

// Visible reports whether the overlay is shown at all.
func Visible(f invtotal.Frame, cfg invtotal.Config) bool {
	switch {
	case !f.Visible && !cfg.ShowWhileInventoryUnselected:
		return false
	case f.Totals.IsEmpty() && !cfg.ShowOnEmpty:
		return false
	case f.State == invtotal.Bank && !cfg.ShowWhileBanking:
		return false
	}
	return true
}

// DisplayAmount returns the amount and text of the box. During the
// interstitial window the amount is zero, and the text is "0" in ProfitLoss
// mode or the plain total in Total mode.
func DisplayAmount(f invtotal.Frame, cfg invtotal.Config) (int64, string) {
	if f.Interstitial {
		if f.Mode == invtotal.ProfitLoss {
			return 0, "0"
		}
		return 0, invtotal.TotalText(f.Totals.Value, cfg.ShowExactGP)
	}
	amount := f.Amount()
	return amount, invtotal.TotalText(amount, cfg.ShowExactGP)
}

// PaletteFor selects the box colors: neutral while banking or in Total mode,
// profit for a nonnegative amount, loss otherwise.
func PaletteFor(state invtotal.LifecycleState, mode invtotal.ValuationMode, amount int64, colors invtotal.Palettes) invtotal.Palette {
	switch {
	case state == invtotal.Bank || mode == invtotal.Total:
		return colors.Neutral
	case amount >= 0:
		return colors.Profit
	default:
		return colors.Loss
	}
}

// RunTimeText returns the " (MM:SS)" suffix, or "" when not applicable.
func RunTimeText(f invtotal.Frame, cfg invtotal.Config) string {
	if !cfg.ShowRunTime || f.RunTime == invtotal.NoRunTime {
		return ""
	}
	return " (" + invtotal.FormatRunTime(f.RunTime) + ")"
}

// Present computes the layout of the overlay.
func (p *Presenter) Present(in Input) Layout {
	f, cfg := in.Frame, in.Config
	if !Visible(f, cfg) {
		return Layout{}
	}

	amount, text := DisplayAmount(f, cfg)
	runTime := RunTimeText(f, cfg)

	textWidth := p.measurer.StringWidth(text)
	var fixedRunTimeWidth, runTimeWidth, imageWidth int
	if len(runTime) >= 2 {
		// reserve a stable width so the box does not wobble every second.
		fixedRunTimeWidth = 5*(len(runTime)-2) + 3*2 + 5
		runTimeWidth = p.measurer.StringWidth(runTime)
	}
	if cfg.ShowCoinStack {
		imageWidth = CoinSize + CoinPadding
	}
	width := textWidth + fixedRunTimeWidth + imageWidth + HorizontalPadding*2

	offX, offY := cfg.Offsets()
	x, y := OriginX+offX, OriginY+offY

	palette := PaletteFor(f.State, f.Mode, amount, cfg.Colors)
	l := Layout{
		Visible: true,
		Box:     image.Rect(x, y, x+width+1, y+BoxHeight+1),
		Fill:    image.Rect(x+1, y+1, x+1+width, y+1+BoxHeight),
		Radius:  cfg.Radius(),
		Palette: palette,
		Stroke:  palette.Background.A > 0,
		Amount:  amount,
		Total: Text{
			Value: text,
			At:    image.Pt(x+HorizontalPadding, y+TextYOffset),
			Color: palette.Text,
		},
	}
	if runTime != "" {
		l.RunTime = &Text{
			Value: runTime,
			At:    image.Pt(x+width-HorizontalPadding-runTimeWidth-imageWidth, y+TextYOffset),
			Color: palette.Text,
		}
	}
	if cfg.ShowCoinStack {
		cx := x + width - HorizontalPadding - CoinSize + coinImageOffset
		l.Coin = &Coin{
			Quantity: CoinQuantity(amount),
			Tier:     CoinTier(amount),
			Bounds:   image.Rect(cx, y+3, cx+CoinSize, y+3+CoinSize),
		}
	}

	if p.tooltipEnabled(in, l) {
		mode := f.Mode
		if entries := in.Ledger.Ledger(mode); len(entries) > 0 {
			pointer := image.Pt(in.Pointer.X, in.Pointer.Y)
			l.Tooltip = p.layoutTooltip(entries, mode, pointer)
		}
	}
	return l
}

// tooltipEnabled checks the tooltip gates: pointer over the box, not in
// storage, past the new run delay, and enabled by the user.
func (p *Presenter) tooltipEnabled(in Input, l Layout) bool {
	if !in.Config.ShowTooltip || in.Ledger == nil || in.Pointer == nil {
		return false
	}
	if in.Frame.State == invtotal.Bank {
		return false
	}
	if !in.Frame.NewRunAt.IsZero() && in.Now.Sub(in.Frame.NewRunAt) <= TooltipDelay {
		return false
	}
	return RoundedContains(l.Box, l.Radius, image.Pt(in.Pointer.X, in.Pointer.Y))
}
