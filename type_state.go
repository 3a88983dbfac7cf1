package invtotal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownState is returned when parsing an invalid lifecycle state.
	ErrUnknownState = errors.New("unknown lifecycle state")
	// ErrUnknownMode is returned when parsing an invalid valuation mode.
	ErrUnknownMode = errors.New("unknown valuation mode")
)

// LifecycleState tells whether carried items are in play or parked in storage.
type LifecycleState int

const (
	// Run is the state while items are actively carried.
	Run LifecycleState = iota
	// Bank is the state while a storage container is open.
	Bank
)

func (s LifecycleState) String() string {
	switch s {
	case Run:
		return "run"
	case Bank:
		return "bank"
	default:
		return "unknown"
	}
}

// ParseLifecycleState parses a string into a LifecycleState.
func ParseLifecycleState(s string) (LifecycleState, error) {
	switch strings.ToLower(s) {
	case "run":
		return Run, nil
	case "bank":
		return Bank, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
}

// ValuationMode is the user selected display mode. It is orthogonal to the
// LifecycleState.
type ValuationMode int

const (
	// Total displays the plain value of the carried items.
	Total ValuationMode = iota
	// ProfitLoss displays the value gained or lost since the run started.
	ProfitLoss
)

func (m ValuationMode) String() string {
	switch m {
	case Total:
		return "total"
	case ProfitLoss:
		return "profit-loss"
	default:
		return "unknown"
	}
}

// ParseValuationMode parses a string into a ValuationMode.
func ParseValuationMode(s string) (ValuationMode, error) {
	switch strings.ToLower(s) {
	case "total":
		return Total, nil
	case "profit-loss", "profit_loss", "profitloss":
		return ProfitLoss, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler, used by yaml and json.
func (m ValuationMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ValuationMode) UnmarshalText(text []byte) error {
	v, err := ParseValuationMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s LifecycleState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *LifecycleState) UnmarshalText(text []byte) error {
	v, err := ParseLifecycleState(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
