package invtotal

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TickInput is everything the host supplies for one poll tick. All the reads
// are instantaneous: the host resolves them before calling Tick.
type TickInput struct {
	Now       time.Time
	Signals   Signals
	Inventory Container
	Equipment Container
	Config    Config
}

// Frame is the outcome of a tick, consumed by the presentation layer.
type Frame struct {
	Session    string
	At         time.Time
	State      LifecycleState
	Previous   LifecycleState
	Transition Transition
	Mode       ValuationMode
	// Visible is false when neither the items nor a storage widget is shown.
	Visible      bool
	Interstitial bool
	// NewRunAt is the time of the last new run, zero if none.
	NewRunAt time.Time

	Inventory Totals
	Equipment Totals
	// Totals is the displayed total: the carried value, plus the worn value
	// while running in ProfitLoss mode, and the carried quantity.
	Totals Totals
	// Profit is the value of the changes since the run baseline.
	Profit int64
	// RunTime is NoRunTime until the first run starts.
	RunTime time.Duration
}

// Amount is the headline value: the total in Total mode, the profit otherwise.
func (f Frame) Amount() int64 {
	if f.Mode == ProfitLoss {
		return f.Profit
	}
	return f.Totals.Value
}

// Session owns the whole mutable state of the engine: lifecycle, baseline,
// ledger deltas and the memoized ignore list. It is advanced by successive
// calls to Tick from a single goroutine.
type Session struct {
	id      string
	catalog Catalog
	logger  *zap.Logger

	machine StateMachine
	tracker *Tracker
	ignore  ignoreCache
	last    Frame
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger lifecycle edges are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithID overrides the random session identifier.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSession creates a session pricing items with the catalog.
func NewSession(catalog Catalog, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		catalog: catalog,
		logger:  zap.NewNop(),
		tracker: NewTracker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Tracker returns the ledger tracker.
func (s *Session) Tracker() *Tracker { return s.tracker }

// Last returns the frame produced by the latest tick.
func (s *Session) Last() Frame { return s.last }

// Tick processes one poll tick. Transition detection runs first, so that a
// new run resets the ledger before the tick's deltas are computed.
func (s *Session) Tick(in TickInput) Frame {
	cfg := in.Config
	ignore := s.ignore.get(cfg.IgnoredItems)

	step := s.machine.Advance(in.Signals, in.Now)
	if step.Transition == NewRun {
		s.tracker.Reset(in.Inventory, in.Equipment, in.Now)
		s.logger.Debug("new run",
			zap.Stringer("state", step.State),
			zap.Stringer("previous", step.Previous),
			zap.Int("items", len(s.tracker.Baseline().Carried)),
		)
	}

	inventory := Valuate(in.Inventory, ignore, s.catalog)
	equipment := Valuate(in.Equipment, ignore, s.catalog)
	totals := Totals{Value: inventory.Value, Quantity: inventory.Quantity}
	if step.State == Run && cfg.Mode == ProfitLoss {
		totals.Value = addSat(totals.Value, equipment.Value)
	}

	s.tracker.Update(in.Inventory, in.Equipment, cfg.Mode == ProfitLoss, ignore, s.catalog)
	if step.Transition == EnterBank {
		s.tracker.Freeze()
		s.logger.Debug("enter storage",
			zap.Stringer("state", step.State),
			zap.Stringer("previous", step.Previous),
			zap.Int("changes", len(s.tracker.deltas)),
		)
	}
	if step.Stabilized {
		s.logger.Debug("run stabilized", zap.Duration("after", in.Now.Sub(s.machine.NewRunAt())))
	}

	s.last = Frame{
		Session:      s.id,
		At:           in.Now,
		State:        step.State,
		Previous:     step.Previous,
		Transition:   step.Transition,
		Mode:         cfg.Mode,
		Visible:      step.Visible,
		Interstitial: step.Interstitial,
		NewRunAt:     s.machine.NewRunAt(),
		Inventory:    inventory,
		Equipment:    equipment,
		Totals:       totals,
		Profit:       s.tracker.Profit(s.catalog),
		RunTime:      s.machine.RunTime(in.Now),
	}
	return s.last
}

// PlainLedger returns the plain ledger view at current prices.
func (s *Session) PlainLedger() []LedgerEntry { return s.tracker.Plain(s.catalog) }

// GainLossLedger returns the gain/loss ledger view at current prices.
func (s *Session) GainLossLedger() []LedgerEntry { return s.tracker.GainLoss(s.catalog) }

// Ledger returns the view matching the mode.
func (s *Session) Ledger(mode ValuationMode) []LedgerEntry {
	if mode == ProfitLoss {
		return s.GainLossLedger()
	}
	return s.PlainLedger()
}
