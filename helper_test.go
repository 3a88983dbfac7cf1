package invtotal

import "time"

// items known to testCatalog.
const (
	Feather     ItemID = 314
	NatureRune  ItemID = 561
	RuneHelm    ItemID = 1163
	AbyssalWhip ItemID = 4151
	CannonBase  ItemID = 6
	Unpriced    ItemID = 9999
)

// testCatalog returns a small price table.
func testCatalog() *PriceTable {
	t := NewPriceTable()
	t.Set(Feather, "Feather", 3)
	t.Set(NatureRune, "Nature rune", 180)
	t.Set(RuneHelm, "Rune full helm", 20_000)
	t.Set(AbyssalWhip, "Abyssal whip", 1_500_000)
	t.Set(CannonBase, "Cannon base", 190_000)
	return t
}

// epoch is the time of the first tick in tests.
var epoch = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// at returns epoch shifted by d.
func at(d time.Duration) time.Time { return epoch.Add(d) }

// C builds a container from id, quantity pairs.
func C(pairs ...int64) Container {
	c := make(Container, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		c = append(c, Entry{ID: ItemID(pairs[i]), Quantity: pairs[i+1]})
	}
	return c
}

var (
	running = Signals{Primary: Widget{Present: true}}
	banking = Signals{Primary: Widget{Present: true, Hidden: true}, Fallbacks: []Widget{{Present: true}}}
	nothing = Signals{}
)
