package invtotal

import "math"

// Totals are the aggregated value and quantity of a container.
type Totals struct {
	Value    int64 `json:"value"`
	Quantity int64 `json:"quantity"`
}

// Add returns the sum of two totals.
func (t Totals) Add(u Totals) Totals {
	return Totals{Value: addSat(t.Value, u.Value), Quantity: addSat(t.Quantity, u.Quantity)}
}

// IsEmpty reports whether there is no item at all.
func (t Totals) IsEmpty() bool { return t.Quantity == 0 }

// Valuate sums quantity times unit price over the container.
//
// Items whose name is in the ignore set contribute neither value nor
// quantity. Duplicated entries for the same item are summed.
func Valuate(c Container, ignore IgnoreSet, catalog Catalog) Totals {
	var t Totals
	for id, qty := range c.Items() {
		if isIgnored(ignore, catalog, id) {
			continue
		}
		t.Value = addSat(t.Value, mulSat(qty, unitPrice(catalog, id)))
		t.Quantity = addSat(t.Quantity, qty)
	}
	return t
}

// isIgnored reports whether the item is excluded by the ignore set.
func isIgnored(ignore IgnoreSet, catalog Catalog, id ItemID) bool {
	if ignore.Len() == 0 {
		return false
	}
	return ignore.Contains(itemName(catalog, id))
}

// --- saturating 64 bit arithmetic ---

func addSat(a, b int64) int64 {
	c := a + b
	switch {
	case a > 0 && b > 0 && c < 0:
		return math.MaxInt64
	case a < 0 && b < 0 && c >= 0:
		return math.MinInt64
	}
	return c
}

func mulSat(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		if (a < 0) != (b < 0) {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return c
}
