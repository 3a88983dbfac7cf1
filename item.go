package invtotal

import "iter"

// ItemID identifies an item type in the host game.
type ItemID int

// Coins is the currency item. Its unit price is always 1 and ledger
// descriptions never carry a quantity prefix for it.
const Coins ItemID = 995

// Entry is one slot of a container snapshot.
type Entry struct {
	ID       ItemID `json:"id"`
	Quantity int64  `json:"qty"`
}

// Container is an ordered snapshot of the items of one container, as
// produced by the host each tick. It is read-only for this package.
type Container []Entry

// Quantities returns the quantity held per item. Duplicated entries for the
// same item are summed and empty slots are skipped.
func (c Container) Quantities() map[ItemID]int64 {
	qtys := make(map[ItemID]int64, len(c))
	for _, e := range c {
		if e.Quantity == 0 {
			continue
		}
		qtys[e.ID] += e.Quantity
	}
	return qtys
}

// Items iterates over the distinct items of the container with their summed quantity.
func (c Container) Items() iter.Seq2[ItemID, int64] {
	return func(yield func(ItemID, int64) bool) {
		for id, qty := range c.Quantities() {
			if !yield(id, qty) {
				return
			}
		}
	}
}

// Catalog is the external pricing collaborator. It resolves item names and
// live unit prices. Unknown items must return an empty name and a zero price.
type Catalog interface {
	Name(id ItemID) string
	Price(id ItemID) int64
}

// unitPrice returns the unit price of an item, the currency being worth 1.
func unitPrice(c Catalog, id ItemID) int64 {
	if id == Coins {
		return 1
	}
	if c == nil {
		return 0
	}
	return c.Price(id)
}

// itemName returns the display name of an item.
func itemName(c Catalog, id ItemID) string {
	if c != nil {
		if name := c.Name(id); name != "" {
			return name
		}
	}
	if id == Coins {
		return "Coins"
	}
	return ""
}
