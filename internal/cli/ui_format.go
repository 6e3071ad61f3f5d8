// Number formatting utilities for CLI output.

package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/agbru/ratcalc/internal/rational"
	"github.com/agbru/ratcalc/internal/wide"
)

// FormatExecutionDuration renders d in whole microseconds below a
// millisecond, whole milliseconds below a second, and with the standard
// Duration notation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}

// FormatNumber renders x in decimal with comma digit grouping.
func FormatNumber(x wide.Int) string {
	return humanize.BigComma(x.BigInt())
}

// FormatFraction renders r as "num/den" with grouped digits.
func FormatFraction(r rational.Rat) string {
	return FormatNumber(r.Num()) + "/" + FormatNumber(r.Den())
}

// FormatDecimal renders r rounded half away from zero to places decimal
// digits. The division is carried out in decimal, so the digits are exact
// up to the rounding position.
func FormatDecimal(r rational.Rat, places int) string {
	num := decimal.NewFromBigInt(r.Num().BigInt(), 0)
	den := decimal.NewFromBigInt(r.Den().BigInt(), 0)
	return num.DivRound(den, int32(places)).StringFixed(int32(places))
}

// FormatBytes renders a byte count with an SI unit.
func FormatBytes(b uint64) string {
	return humanize.Bytes(b)
}
