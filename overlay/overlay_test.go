package overlay

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/etnz/invtotal"
	"github.com/google/go-cmp/cmp"
)

var epoch = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// fakeLedger returns the same entries in every mode.
type fakeLedger []invtotal.LedgerEntry

func (l fakeLedger) Ledger(invtotal.ValuationMode) []invtotal.LedgerEntry { return l }

func runFrame(mode invtotal.ValuationMode, value, profit int64) invtotal.Frame {
	return invtotal.Frame{
		At:       epoch.Add(5 * time.Second),
		State:    invtotal.Run,
		Previous: invtotal.Run,
		Mode:     mode,
		Visible:  true,
		NewRunAt: epoch,
		Totals:   invtotal.Totals{Value: value, Quantity: 1},
		Profit:   profit,
		RunTime:  5 * time.Second,
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name  string
		frame func(*invtotal.Frame)
		cfg   func(*invtotal.Config)
		want  bool
	}{
		{name: "defaults", want: true},
		{name: "empty shown", frame: func(f *invtotal.Frame) { f.Totals = invtotal.Totals{} }, want: true},
		{name: "empty hidden", frame: func(f *invtotal.Frame) { f.Totals = invtotal.Totals{} }, cfg: func(c *invtotal.Config) { c.ShowOnEmpty = false }, want: false},
		{name: "banking shown", frame: func(f *invtotal.Frame) { f.State = invtotal.Bank }, want: true},
		{name: "banking hidden", frame: func(f *invtotal.Frame) { f.State = invtotal.Bank }, cfg: func(c *invtotal.Config) { c.ShowWhileBanking = false }, want: false},
		{name: "unselected shown", frame: func(f *invtotal.Frame) { f.Visible = false }, want: true},
		{name: "unselected hidden", frame: func(f *invtotal.Frame) { f.Visible = false }, cfg: func(c *invtotal.Config) { c.ShowWhileInventoryUnselected = false }, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := runFrame(invtotal.Total, 100, 0)
			cfg := invtotal.DefaultConfig()
			if tt.frame != nil {
				tt.frame(&f)
			}
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}
			if got := Visible(f, cfg); got != tt.want {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
			if got := New(nil).Present(Input{Frame: f, Config: cfg}).Visible; got != tt.want {
				t.Errorf("Present().Visible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplayAmount(t *testing.T) {
	cfg := invtotal.DefaultConfig()
	tests := []struct {
		name       string
		frame      invtotal.Frame
		exact      bool
		wantAmount int64
		wantText   string
	}{
		{name: "total", frame: runFrame(invtotal.Total, 1_500_000, 300), wantAmount: 1_500_000, wantText: "1.5M"},
		{name: "total exact", frame: runFrame(invtotal.Total, 1_500_000, 300), exact: true, wantAmount: 1_500_000, wantText: "1,500,000"},
		{name: "profit", frame: runFrame(invtotal.ProfitLoss, 1_500_000, -2_000), wantAmount: -2_000, wantText: "-2K"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.ShowExactGP = tt.exact
			amount, text := DisplayAmount(tt.frame, cfg)
			if amount != tt.wantAmount || text != tt.wantText {
				t.Errorf("DisplayAmount() = %d, %q, want %d, %q", amount, text, tt.wantAmount, tt.wantText)
			}
		})
	}

	t.Run("interstitial", func(t *testing.T) {
		cfg.ShowExactGP = false
		f := runFrame(invtotal.ProfitLoss, 1_500_000, -2_000)
		f.Interstitial = true
		if amount, text := DisplayAmount(f, cfg); amount != 0 || text != "0" {
			t.Errorf("profit-loss DisplayAmount() = %d, %q, want 0, \"0\"", amount, text)
		}
		f.Mode = invtotal.Total
		if amount, text := DisplayAmount(f, cfg); amount != 0 || text != "1.5M" {
			t.Errorf("total DisplayAmount() = %d, %q, want 0, \"1.5M\"", amount, text)
		}
	})
}

func TestPaletteFor(t *testing.T) {
	colors := invtotal.DefaultConfig().Colors
	tests := []struct {
		name   string
		state  invtotal.LifecycleState
		mode   invtotal.ValuationMode
		amount int64
		want   invtotal.Palette
	}{
		{"total mode", invtotal.Run, invtotal.Total, -5, colors.Neutral},
		{"banking", invtotal.Bank, invtotal.ProfitLoss, 5, colors.Neutral},
		{"profit", invtotal.Run, invtotal.ProfitLoss, 5, colors.Profit},
		{"break even", invtotal.Run, invtotal.ProfitLoss, 0, colors.Profit},
		{"loss", invtotal.Run, invtotal.ProfitLoss, -5, colors.Loss},
	}
	for _, tt := range tests {
		if got := PaletteFor(tt.state, tt.mode, tt.amount, colors); got != tt.want {
			t.Errorf("%s: PaletteFor() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCoinTier(t *testing.T) {
	tests := []struct {
		amount       int64
		wantQuantity int32
		wantTier     int32
	}{
		{0, 1_000_000, 10000},
		{1, 1, 1},
		{4, 4, 4},
		{24, 24, 5},
		{25, 25, 25},
		{-300, 300, 250},
		{9_999, 9_999, 1000},
		{math.MaxInt64, math.MaxInt32, 10000},
		{math.MinInt64, math.MaxInt32, 10000},
	}
	for _, tt := range tests {
		if got := CoinQuantity(tt.amount); got != tt.wantQuantity {
			t.Errorf("CoinQuantity(%d) = %d, want %d", tt.amount, got, tt.wantQuantity)
		}
		if got := CoinTier(tt.amount); got != tt.wantTier {
			t.Errorf("CoinTier(%d) = %d, want %d", tt.amount, got, tt.wantTier)
		}
	}
}

func TestPresentGeometry(t *testing.T) {
	cfg := invtotal.DefaultConfig()
	l := New(nil).Present(Input{Frame: runFrame(invtotal.Total, 2_300, 0), Config: cfg})

	want := Layout{
		Visible: true,
		Box:     image.Rect(100, 142, 159, 163),
		Fill:    image.Rect(101, 143, 159, 163),
		Radius:  10,
		Palette: cfg.Colors.Neutral,
		Stroke:  true,
		Amount:  2_300,
		Total:   Text{Value: "2.3K", At: image.Pt(110, 159), Color: cfg.Colors.Neutral.Text},
		Coin:    &Coin{Quantity: 2_300, Tier: 1000, Bounds: image.Rect(137, 145, 152, 160)},
	}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("Present() mismatch (-want +got):\n%s", diff)
	}
}

func TestPresentRunTimeAndOffsets(t *testing.T) {
	cfg := invtotal.DefaultConfig()
	cfg.ShowRunTime = true
	cfg.ShowCoinStack = false
	cfg.RoundCorners = false
	cfg.OffsetX, cfg.OffsetXNegative = 20, true
	cfg.OffsetY, cfg.OffsetYNegative = 10, true
	cfg.Colors.Neutral.Background = invtotal.Color{}

	f := runFrame(invtotal.Total, 2_300, 0)
	f.RunTime = 65 * time.Second
	l := New(nil).Present(Input{Frame: f, Config: cfg})

	// " (01:05)" reserves 5*(8-2)+11 pixels: 20+41+20 wide.
	if want := image.Rect(80, 90, 80+81+1, 111); l.Box != want {
		t.Errorf("Box = %v, want %v", l.Box, want)
	}
	if l.RunTime == nil || l.RunTime.Value != " (01:05)" || l.RunTime.At != image.Pt(80+81-10-40, 107) {
		t.Errorf("RunTime = %+v", l.RunTime)
	}
	if l.Radius != 0 || l.Stroke || l.Coin != nil {
		t.Errorf("Radius, Stroke, Coin = %d, %v, %v", l.Radius, l.Stroke, l.Coin)
	}

	f.RunTime = invtotal.NoRunTime
	if l := New(nil).Present(Input{Frame: f, Config: cfg}); l.RunTime != nil {
		t.Errorf("RunTime before any run = %+v", l.RunTime)
	}
}

func TestTooltipGates(t *testing.T) {
	ledger := fakeLedger{
		{Kind: invtotal.Detail, Item: 314, Name: "Feather", Quantity: 500, Amount: 3},
		{Kind: invtotal.SummaryTotal, Name: "Total", Quantity: 1, Amount: 1_500},
	}
	inside := &invtotal.Point{X: 130, Y: 150}

	tests := []struct {
		name  string
		input func(*Input)
		want  bool
	}{
		{name: "shown", want: true},
		{name: "no pointer", input: func(in *Input) { in.Pointer = nil }},
		{name: "pointer outside", input: func(in *Input) { in.Pointer = &invtotal.Point{X: 10, Y: 10} }},
		{name: "pointer in rounded corner", input: func(in *Input) { in.Pointer = &invtotal.Point{X: 100, Y: 142} }},
		{name: "disabled", input: func(in *Input) { in.Config.ShowTooltip = false }},
		{name: "banking", input: func(in *Input) { in.Frame.State = invtotal.Bank }},
		{name: "too soon", input: func(in *Input) { in.Now = epoch.Add(TooltipDelay) }},
		{name: "never ran", input: func(in *Input) { in.Frame.NewRunAt = time.Time{}; in.Now = epoch }, want: true},
		{name: "empty ledger", input: func(in *Input) { in.Ledger = fakeLedger(nil) }},
		{name: "no ledger", input: func(in *Input) { in.Ledger = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{
				Frame:   runFrame(invtotal.Total, 2_300, 1_500),
				Config:  invtotal.DefaultConfig(),
				Pointer: inside,
				Now:     epoch.Add(2 * time.Second),
				Ledger:  ledger,
			}
			if tt.input != nil {
				tt.input(&in)
			}
			if got := New(nil).Present(in).Tooltip != nil; got != tt.want {
				t.Errorf("tooltip shown = %v, want %v", got, tt.want)
			}
		})
	}
}
