//go:build !(386 || arm || mips || mipsle)

package wide

import (
	"math/big"

	num "github.com/shabbyrobe/go-num"
)

// Bits is the width of Int on this target.
const Bits = 128

// maxDigits is the number of decimal digits in the magnitude of MinInt.
const maxDigits = 39

// Int is a signed wide integer. The zero value is 0.
type Int struct {
	v num.I128
}

var (
	// MaxInt is the largest representable Int.
	MaxInt = Int{num.MaxI128}
	// MinInt is the smallest representable Int.
	MinInt = Int{num.MinI128}
)

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int { return Int{num.I128From64(v)} }

// FromBigInt converts b to an Int. ok is false when b does not fit.
func FromBigInt(b *big.Int) (x Int, ok bool) {
	v, accurate := num.I128FromBigInt(b)
	return Int{v}, accurate
}

// BigInt returns x as a newly allocated big.Int.
func (x Int) BigInt() *big.Int { return x.v.AsBigInt() }

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.v.IsZero() }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x Int) Sign() int { return x.v.Sign() }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int { return x.v.Cmp(y.v) }

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.v.Equal(y.v) }

// IsInt64 reports whether x fits in an int64.
func (x Int) IsInt64() bool { return x.v.IsInt64() }

// Int64 returns the low 64 bits of x as an int64. Check IsInt64 first when
// the value may not fit.
func (x Int) Int64() int64 { return x.v.AsInt64() }

// Float64 returns the nearest float64 to x.
func (x Int) Float64() float64 { return x.v.AsFloat64() }

// The following primitives wrap around on overflow. They are the only place
// where the representation is touched; checked.go builds the overflow
// detection on top of them.

func wrapAdd(x, y Int) Int { return Int{x.v.Add(y.v)} }

func wrapSub(x, y Int) Int { return Int{x.v.Sub(y.v)} }

func wrapMul(x, y Int) Int { return Int{x.v.Mul(y.v)} }

func wrapNeg(x Int) Int { return Int{x.v.Neg()} }

// quoRem returns the truncated quotient and remainder of x / y.
// y must be non-zero and (x, y) must not be (MinInt, -1).
func quoRem(x, y Int) (q, r Int) {
	qv, rv := x.v.QuoRem(y.v)
	return Int{qv}, Int{rv}
}
