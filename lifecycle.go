package invtotal

import "time"

// StabilizationDelay is how long after a new run the displayed totals are
// held back, while the host catches up with the container contents.
const StabilizationDelay = 1200 * time.Millisecond

// NoRunTime is the elapsed run time reported when no run was ever started.
const NoRunTime time.Duration = -1

// Widget is the visibility signal of one host container widget.
type Widget struct {
	Present bool `json:"present"`
	Hidden  bool `json:"hidden,omitempty"`
	// X is the canvas location; the host parks unselected tabs off-canvas.
	X int `json:"x,omitempty"`
}

// onCanvas reports whether the primary items widget is usable.
func (w Widget) onCanvas() bool { return w.Present && !w.Hidden && w.X >= 0 }

// shown reports whether a storage widget is open.
func (w Widget) shown() bool { return w.Present && !w.Hidden }

// Signals are the raw visibility signals of one tick.
type Signals struct {
	// Primary is the carried items widget.
	Primary Widget `json:"primary"`
	// Fallbacks are the storage item widgets, in priority order.
	Fallbacks []Widget `json:"fallbacks,omitempty"`
}

// Transition is an edge detected by the StateMachine.
type Transition int

const (
	// NoTransition means the state did not change.
	NoTransition Transition = iota
	// NewRun is the BANK to RUN edge.
	NewRun
	// EnterBank is the RUN to BANK edge.
	EnterBank
)

func (t Transition) String() string {
	switch t {
	case NewRun:
		return "new-run"
	case EnterBank:
		return "enter-bank"
	default:
		return "none"
	}
}

// Step is the outcome of one StateMachine.Advance.
type Step struct {
	State    LifecycleState
	Previous LifecycleState
	Transition
	// Visible is false when no container widget at all was visible.
	Visible bool
	// Interstitial is set from a new run until StabilizationDelay elapsed.
	Interstitial bool
	// Stabilized is true on the single tick that cleared Interstitial.
	Stabilized bool
}

// StateMachine classifies ticks into RUN or BANK.
//
// The zero value is ready to use and starts in RUN.
type StateMachine struct {
	state        LifecycleState
	previous     LifecycleState
	interstitial bool
	newRunAt     time.Time
	runStart     time.Time
}

// State returns the current state.
func (m *StateMachine) State() LifecycleState { return m.state }

// Previous returns the state of the previous tick.
func (m *StateMachine) Previous() LifecycleState { return m.previous }

// Interstitial reports whether the post new run window is open.
func (m *StateMachine) Interstitial() bool { return m.interstitial }

// NewRunAt returns the time of the last BANK to RUN edge, zero if none.
func (m *StateMachine) NewRunAt() time.Time { return m.newRunAt }

// RunTime returns the time elapsed since the last BANK to RUN edge, or
// NoRunTime if there never was one.
func (m *StateMachine) RunTime(now time.Time) time.Duration {
	if m.runStart.IsZero() {
		return NoRunTime
	}
	return now.Sub(m.runStart)
}

// classify maps the signals to a state. The primary widget wins; otherwise
// the first shown fallback means storage. When nothing is visible the current
// state is kept.
func (m *StateMachine) classify(sig Signals) (LifecycleState, bool) {
	if sig.Primary.onCanvas() {
		return Run, true
	}
	for _, w := range sig.Fallbacks {
		if w.shown() {
			return Bank, true
		}
	}
	return m.state, false
}

// Advance processes one tick.
func (m *StateMachine) Advance(sig Signals, now time.Time) Step {
	next, visible := m.classify(sig)
	m.previous, m.state = m.state, next

	step := Step{State: m.state, Previous: m.previous, Visible: visible}
	switch {
	case m.previous == Bank && m.state == Run:
		step.Transition = NewRun
		m.interstitial = true
		m.newRunAt = now
		m.runStart = now
	case m.previous == Run && m.state == Bank:
		step.Transition = EnterBank
	}

	// cleared once, timed from the latest new run.
	if m.interstitial && now.Sub(m.newRunAt) >= StabilizationDelay {
		m.interstitial = false
		step.Stabilized = true
	}
	step.Interstitial = m.interstitial
	return step
}
