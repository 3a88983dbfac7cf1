package overlay

import (
	"math"

	"github.com/etnz/invtotal"
)

// emptyStack is the quantity shown for a zero amount, so that an empty or
// fresh state still shows a plausible pile of coins.
const emptyStack = 1_000_000

// coinTiers are the quantities at which the coin stack image changes.
var coinTiers = []int32{1, 2, 3, 4, 5, 25, 100, 250, 1000, 10000}

// CoinQuantity returns the coin quantity to draw for an amount: clamped to
// the int32 range, made positive, and replaced by a large stack when zero.
func CoinQuantity(amount int64) int32 {
	n := invtotal.Clamp32(amount)
	if n == 0 {
		return emptyStack
	}
	if n == math.MinInt32 {
		return math.MaxInt32
	}
	if n < 0 {
		n = -n
	}
	return n
}

// CoinTier returns the stack image tier for an amount: the largest tier
// threshold not above CoinQuantity(amount).
func CoinTier(amount int64) int32 {
	n := CoinQuantity(amount)
	tier := coinTiers[0]
	for _, t := range coinTiers {
		if n < t {
			break
		}
		tier = t
	}
	return tier
}
