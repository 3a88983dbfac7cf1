package invtotal

import (
	"testing"
	"time"
)

func TestStateMachineClassify(t *testing.T) {
	tests := []struct {
		name        string
		start       LifecycleState
		sig         Signals
		wantState   LifecycleState
		wantVisible bool
	}{
		{name: "primary shown", start: Bank, sig: running, wantState: Run, wantVisible: true},
		{name: "fallback shown", start: Run, sig: banking, wantState: Bank, wantVisible: true},
		{name: "primary wins over fallbacks", start: Bank, sig: Signals{Primary: Widget{Present: true}, Fallbacks: []Widget{{Present: true}}}, wantState: Run, wantVisible: true},
		{name: "primary off canvas", start: Run, sig: Signals{Primary: Widget{Present: true, X: -1}, Fallbacks: []Widget{{Present: true}}}, wantState: Bank, wantVisible: true},
		{name: "hidden fallbacks are skipped", start: Run, sig: Signals{Fallbacks: []Widget{{Present: true, Hidden: true}, {Present: true}}}, wantState: Bank, wantVisible: true},
		{name: "nothing keeps run", start: Run, sig: nothing, wantState: Run},
		{name: "nothing keeps bank", start: Bank, sig: Signals{Fallbacks: []Widget{{Hidden: true}}}, wantState: Bank},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := StateMachine{state: tt.start}
			got, visible := m.classify(tt.sig)
			if got != tt.wantState || visible != tt.wantVisible {
				t.Errorf("classify() = %v, %v, want %v, %v", got, visible, tt.wantState, tt.wantVisible)
			}
		})
	}
}

func TestStateMachineTransitions(t *testing.T) {
	var m StateMachine
	sequence := []Signals{running, nothing, banking, banking, nothing, running, running, banking, running}
	want := []Transition{NoTransition, NoTransition, EnterBank, NoTransition, NoTransition, NewRun, NoTransition, EnterBank, NewRun}

	for i, sig := range sequence {
		step := m.Advance(sig, at(time.Duration(i)*time.Second))
		if step.Transition != want[i] {
			t.Errorf("tick %d: transition = %v, want %v", i, step.Transition, want[i])
		}
		// only BANK↔RUN edges exist.
		switch step.Transition {
		case NewRun:
			if step.Previous != Bank || step.State != Run {
				t.Errorf("tick %d: new run from %v to %v", i, step.Previous, step.State)
			}
		case EnterBank:
			if step.Previous != Run || step.State != Bank {
				t.Errorf("tick %d: enter bank from %v to %v", i, step.Previous, step.State)
			}
		default:
			if step.Previous != step.State {
				t.Errorf("tick %d: silent change from %v to %v", i, step.Previous, step.State)
			}
		}
	}
}

func TestStateMachineStabilization(t *testing.T) {
	var m StateMachine
	m.Advance(banking, at(0))
	if step := m.Advance(running, at(100*time.Millisecond)); !step.Interstitial || step.Transition != NewRun {
		t.Fatalf("first new run: %+v", step)
	}
	m.Advance(banking, at(300*time.Millisecond))
	if step := m.Advance(running, at(500*time.Millisecond)); !step.Interstitial || step.Transition != NewRun {
		t.Fatalf("second new run: %+v", step)
	}

	// 1200ms after the first new run, but only 800ms after the second.
	if step := m.Advance(running, at(1300*time.Millisecond)); !step.Interstitial || step.Stabilized {
		t.Errorf("interstitial cleared too early: %+v", step)
	}
	step := m.Advance(running, at(1700*time.Millisecond))
	if step.Interstitial || !step.Stabilized {
		t.Errorf("interstitial not cleared 1200ms after the second new run: %+v", step)
	}
	if step := m.Advance(running, at(5*time.Second)); step.Stabilized {
		t.Error("interstitial cleared twice")
	}
}

func TestStateMachineRunTime(t *testing.T) {
	var m StateMachine
	m.Advance(running, at(0))
	if got := m.RunTime(at(time.Minute)); got != NoRunTime {
		t.Errorf("RunTime() before any run = %v, want NoRunTime", got)
	}
	m.Advance(banking, at(time.Second))
	m.Advance(running, at(2*time.Second))
	if got := m.RunTime(at(62 * time.Second)); got != time.Minute {
		t.Errorf("RunTime() = %v, want 1m", got)
	}
	if !m.NewRunAt().Equal(at(2 * time.Second)) {
		t.Errorf("NewRunAt() = %v", m.NewRunAt())
	}
}
