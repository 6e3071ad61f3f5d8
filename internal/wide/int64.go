//go:build 386 || arm || mips || mipsle

package wide

import (
	"math"
	"math/big"
)

// Bits is the width of Int on this target.
const Bits = 64

// maxDigits is the number of decimal digits in the magnitude of MinInt.
const maxDigits = 19

// Int is a signed wide integer. The zero value is 0.
type Int struct {
	v int64
}

var (
	// MaxInt is the largest representable Int.
	MaxInt = Int{math.MaxInt64}
	// MinInt is the smallest representable Int.
	MinInt = Int{math.MinInt64}
)

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int { return Int{v} }

// FromBigInt converts b to an Int. ok is false when b does not fit.
func FromBigInt(b *big.Int) (x Int, ok bool) {
	if !b.IsInt64() {
		return Int{}, false
	}
	return Int{b.Int64()}, true
}

// BigInt returns x as a newly allocated big.Int.
func (x Int) BigInt() *big.Int { return big.NewInt(x.v) }

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.v == 0 }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x Int) Sign() int {
	switch {
	case x.v < 0:
		return -1
	case x.v > 0:
		return 1
	}
	return 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}
	return 0
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.v == y.v }

// IsInt64 reports whether x fits in an int64.
func (x Int) IsInt64() bool { return true }

// Int64 returns x as an int64.
func (x Int) Int64() int64 { return x.v }

// Float64 returns the nearest float64 to x.
func (x Int) Float64() float64 { return float64(x.v) }

func wrapAdd(x, y Int) Int { return Int{x.v + y.v} }

func wrapSub(x, y Int) Int { return Int{x.v - y.v} }

func wrapMul(x, y Int) Int { return Int{x.v * y.v} }

func wrapNeg(x Int) Int { return Int{-x.v} }

// quoRem returns the truncated quotient and remainder of x / y.
// y must be non-zero and (x, y) must not be (MinInt, -1).
func quoRem(x, y Int) (q, r Int) {
	return Int{x.v / y.v}, Int{x.v % y.v}
}
