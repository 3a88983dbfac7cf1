package invtotal

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"time"
)

// EntryKind tags a LedgerEntry. Sorting and coloring key off the kind, never
// off the description text.
type EntryKind int

const (
	// Detail is the net change of a single item.
	Detail EntryKind = iota
	// SummaryTotal is the "Total" row, the sum of all details.
	SummaryTotal
	// SummaryGain is the "Total Gain" row, the sum of positive details.
	SummaryGain
	// SummaryLoss is the "Total Loss" row, the sum of negative details.
	SummaryLoss
)

func (k EntryKind) String() string {
	switch k {
	case Detail:
		return "detail"
	case SummaryTotal:
		return "Total"
	case SummaryGain:
		return "Total Gain"
	case SummaryLoss:
		return "Total Loss"
	default:
		return "unknown"
	}
}

// LedgerEntry is one row of a ledger view.
type LedgerEntry struct {
	Kind EntryKind
	// Item is only meaningful for Detail entries.
	Item ItemID
	Name string
	// Quantity is the signed net change since the baseline, 1 for summaries.
	Quantity int64
	// Amount is the unit price.
	Amount int64
}

// Value returns Quantity times Amount.
func (e LedgerEntry) Value() int64 { return mulSat(e.Quantity, e.Amount) }

// IsSummary reports whether the entry is a synthetic total row.
func (e LedgerEntry) IsSummary() bool { return e.Kind != Detail }

// Description returns the label of the row. Details moving more than one
// unit are prefixed with the grouped absolute quantity ("1,500 Feather"),
// except for the currency.
func (e LedgerEntry) Description() string {
	if e.IsSummary() {
		return e.Kind.String()
	}
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("Item %d", e.Item)
	}
	q := e.Quantity
	if q < 0 {
		q = -q
	}
	if q != 1 && q != 0 && e.Item != Coins {
		return GroupQuantity(q) + " " + name
	}
	return name
}

func summary(kind EntryKind, value int64) LedgerEntry {
	return LedgerEntry{Kind: kind, Name: kind.String(), Quantity: 1, Amount: value}
}

// RunBaseline is the item quantity snapshot taken when the current run started.
type RunBaseline struct {
	// Started is zero when no run was ever started.
	Started time.Time
	Carried map[ItemID]int64
	Worn    map[ItemID]int64
}

// quantities returns the baseline multiset, worn items included on demand.
func (b RunBaseline) quantities(includeWorn bool) map[ItemID]int64 {
	qtys := maps.Clone(b.Carried)
	if qtys == nil {
		qtys = make(map[ItemID]int64)
	}
	if includeWorn {
		for id, q := range b.Worn {
			qtys[id] += q
		}
	}
	return qtys
}

// Tracker maintains the net quantity change per item since the run baseline.
//
// Deltas are always computed against the baseline, never against the
// previous tick, so they read "since run start". While frozen (in storage)
// updates are ignored and the ledger shows the run as it was when storage
// was opened.
type Tracker struct {
	baseline RunBaseline
	deltas   map[ItemID]int64
	frozen   bool
}

// NewTracker creates a tracker with an empty baseline: until the first run
// starts, everything carried counts as gained.
func NewTracker() *Tracker {
	return &Tracker{
		baseline: RunBaseline{Carried: map[ItemID]int64{}, Worn: map[ItemID]int64{}},
		deltas:   make(map[ItemID]int64),
	}
}

// Baseline returns the live baseline.
func (t *Tracker) Baseline() RunBaseline { return t.baseline }

// Frozen reports whether the ledger is finalized for storage display.
func (t *Tracker) Frozen() bool { return t.frozen }

// Reset starts a new run: the delta map is cleared and the baseline replaced
// by the given snapshots.
func (t *Tracker) Reset(carried, worn Container, at time.Time) {
	t.baseline = RunBaseline{
		Started: at,
		Carried: carried.Quantities(),
		Worn:    worn.Quantities(),
	}
	clear(t.deltas)
	t.frozen = false
}

// Update recomputes the deltas from the current snapshots. Worn items take
// part in the diff only when includeWorn is set. Ignored items never appear.
func (t *Tracker) Update(carried, worn Container, includeWorn bool, ignore IgnoreSet, catalog Catalog) {
	if t.frozen {
		return
	}
	current := carried.Quantities()
	if includeWorn {
		for id, q := range worn.Quantities() {
			current[id] += q
		}
	}
	base := t.baseline.quantities(includeWorn)

	clear(t.deltas)
	for id, q := range current {
		t.set(id, q-base[id], ignore, catalog)
	}
	for id, q := range base {
		if _, seen := current[id]; !seen {
			// gone from the snapshot: the whole baseline quantity is lost.
			t.set(id, -q, ignore, catalog)
		}
	}
}

func (t *Tracker) set(id ItemID, delta int64, ignore IgnoreSet, catalog Catalog) {
	if delta == 0 || isIgnored(ignore, catalog, id) {
		return
	}
	t.deltas[id] = delta
}

// Freeze finalizes the ledger when entering storage.
func (t *Tracker) Freeze() { t.frozen = true }

// Deltas returns a copy of the net quantity change per item.
func (t *Tracker) Deltas() map[ItemID]int64 { return maps.Clone(t.deltas) }

// details returns one entry per nonzero delta, in item order.
func (t *Tracker) details(catalog Catalog) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(t.deltas))
	for _, id := range slices.Sorted(maps.Keys(t.deltas)) {
		entries = append(entries, LedgerEntry{
			Kind:     Detail,
			Item:     id,
			Name:     itemName(catalog, id),
			Quantity: t.deltas[id],
			Amount:   unitPrice(catalog, id),
		})
	}
	return entries
}

// Profit returns the value of all deltas at current prices.
func (t *Tracker) Profit(catalog Catalog) int64 {
	var total int64
	for _, e := range t.details(catalog) {
		total = addSat(total, e.Value())
	}
	return total
}

// Plain returns the plain ledger: details sorted by decreasing magnitude of
// value, followed by a "Total" row. It returns nil when nothing changed.
func (t *Tracker) Plain(catalog Catalog) []LedgerEntry {
	entries := t.details(catalog)
	if len(entries) == 0 {
		return nil
	}
	slices.SortStableFunc(entries, func(a, b LedgerEntry) int {
		return cmp.Or(
			cmp.Compare(magnitude(b), magnitude(a)),
			cmp.Compare(a.Name, b.Name),
		)
	})
	var total int64
	for _, e := range entries {
		total = addSat(total, e.Value())
	}
	return append(entries, summary(SummaryTotal, total))
}

// GainLoss returns the gain/loss ledger: gains by decreasing value, then
// losses from the most severe, then "Total Gain", "Total Loss" and "Total".
// It returns nil when nothing changed.
func (t *Tracker) GainLoss(catalog Catalog) []LedgerEntry {
	var gains, losses []LedgerEntry
	for _, e := range t.details(catalog) {
		if e.Quantity > 0 {
			gains = append(gains, e)
		} else {
			losses = append(losses, e)
		}
	}
	if len(gains)+len(losses) == 0 {
		return nil
	}
	slices.SortStableFunc(gains, func(a, b LedgerEntry) int {
		return cmp.Or(cmp.Compare(b.Value(), a.Value()), cmp.Compare(a.Name, b.Name))
	})
	slices.SortStableFunc(losses, func(a, b LedgerEntry) int {
		return cmp.Or(cmp.Compare(a.Value(), b.Value()), cmp.Compare(a.Name, b.Name))
	})

	var totalGain, totalLoss int64
	for _, e := range gains {
		totalGain = addSat(totalGain, e.Value())
	}
	for _, e := range losses {
		totalLoss = addSat(totalLoss, e.Value())
	}

	entries := make([]LedgerEntry, 0, len(gains)+len(losses)+3)
	entries = append(entries, gains...)
	entries = append(entries, losses...)
	return append(entries,
		summary(SummaryGain, totalGain),
		summary(SummaryLoss, totalLoss),
		summary(SummaryTotal, addSat(totalGain, totalLoss)),
	)
}

// magnitude is |quantity| times the unit amount.
func magnitude(e LedgerEntry) int64 {
	q := e.Quantity
	if q < 0 {
		q = -q
	}
	return mulSat(q, e.Amount)
}
