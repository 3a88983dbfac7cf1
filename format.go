package invtotal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// gpFormatter formats whole coins with english thousands separators.
var gpFormatter = money.NewFormatter(0, ".", ",", "", "1")

var (
	billion  = decimal.NewFromInt(1_000_000_000)
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// Exact returns the thousands-grouped representation of v, sign preserved.
func Exact(v int64) string {
	if v == math.MinInt64 {
		// the formatter negates the amount, which overflows here.
		return humanize.Comma(v)
	}
	return gpFormatter.Format(v)
}

// Abbreviate returns v scaled down to billions, millions or thousands with
// a "B", "M" or "K" suffix. The scaled value is truncated, not rounded, to a
// single fractional digit: 1,999,999 is "1.9M". Values below a thousand in
// absolute value fall back to Exact.
func Abbreviate(v int64) string {
	unit, suffix := abbreviation(v)
	if suffix == "" {
		return Exact(v)
	}
	return truncated(v, unit) + suffix
}

// Compact is Abbreviate without the trailing ".0": 1,000 is "1K" and 1,050
// is "1K" as well.
func Compact(v int64) string {
	unit, suffix := abbreviation(v)
	if suffix == "" {
		return Exact(v)
	}
	return strings.TrimSuffix(truncated(v, unit), ".0") + suffix
}

// TotalText is the text displayed in the overlay box for v.
func TotalText(v int64, exact bool) string {
	if exact {
		return Exact(v)
	}
	return Compact(v)
}

func abbreviation(v int64) (decimal.Decimal, string) {
	switch {
	case v >= 1_000_000_000 || v <= -1_000_000_000:
		return billion, "B"
	case v >= 1_000_000 || v <= -1_000_000:
		return million, "M"
	case v >= 1_000 || v <= -1_000:
		return thousand, "K"
	default:
		return decimal.Zero, ""
	}
}

// truncated divides v by unit and cuts the result after the first fractional digit.
func truncated(v int64, unit decimal.Decimal) string {
	// dividing by a power of ten is exact within the default division precision.
	return decimal.NewFromInt(v).Div(unit).Truncate(1).StringFixed(1)
}

// GroupQuantity returns the thousands-grouped quantity, as used in ledger
// descriptions ("1,500 Feathers").
func GroupQuantity(q int64) string {
	return humanize.Comma(q)
}

// FormatRunTime formats an elapsed run time as MM:SS, or HH:MM:SS from one
// hour on. Negative durations are reported as zero.
func FormatRunTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSecs := int64(d / time.Second)
	hrs := totalSecs / 3600
	mins := (totalSecs / 60) % 60
	secs := totalSecs % 60
	if hrs > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// Clamp32 narrows v to the int32 range, saturating instead of wrapping.
func Clamp32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}

// SignedExact returns Exact with an explicit "+" for gains; zero is "-".
func SignedExact(v int64) string {
	switch {
	case v == 0:
		return "-"
	case v > 0:
		return "+" + Exact(v)
	default:
		return Exact(v)
	}
}
