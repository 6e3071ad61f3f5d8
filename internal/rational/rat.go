package rational

import (
	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/wide"
)

// Rat is the fraction num/den. A zero den field stands for 1, which makes
// the zero value equal to 0/1; no operation ever produces a zero divisor.
type Rat struct {
	num wide.Int
	den wide.Int
}

var (
	oneInt = wide.FromInt64(1)

	// One is the rational 1/1.
	One = Rat{num: oneInt, den: oneInt}
)

// New returns num/den in reduced form. A zero den is a fatal division by
// zero.
func New(num, den int64) Rat {
	return FromWide(wide.FromInt64(num), wide.FromInt64(den))
}

// FromWide returns num/den in reduced form. A zero den is a fatal division
// by zero.
func FromWide(num, den wide.Int) Rat {
	if den.IsZero() {
		apperrors.Fatal("rat", apperrors.ErrDivisionByZero, "%s/0", num)
	}
	r := Rat{num: num, den: den}
	r.Normalize()
	return r
}

// FromInt returns v/1.
func FromInt(v wide.Int) Rat {
	return Rat{num: v, den: oneInt}
}

// Zero returns count canonical 0/1 values.
func Zero(count int) []Rat {
	rs := make([]Rat, count)
	for i := range rs {
		rs[i].den = oneInt
	}
	return rs
}

// Num returns the numerator of r.
func (r Rat) Num() wide.Int { return r.num }

// Den returns the divisor of r. It is positive for every value built by
// this package.
func (r Rat) Den() wide.Int {
	if r.den.IsZero() {
		return oneInt
	}
	return r.den
}

// Sign returns -1, 0 or +1 according to the sign of r.
func (r Rat) Sign() int { return r.num.Sign() * r.Den().Sign() }

// IsZero reports whether r == 0.
func (r Rat) IsZero() bool { return r.num.IsZero() }

// IsReduced reports whether r is in normalized form: positive divisor and
// gcd(|num|, den) == 1.
func (r Rat) IsReduced() bool {
	d := r.Den()
	return d.Sign() > 0 && wide.GCD(r.num, d).Equal(oneInt)
}

// Normalize reduces r in place: it divides both components by
// gcd(|num|, |den|), moves the sign onto the numerator and turns any zero
// into 0/1. Normalize is idempotent.
func (r *Rat) Normalize() *Rat {
	d := r.Den()
	if r.num.IsZero() {
		r.den = oneInt
		return r
	}
	// MinInt/MinInt would need gcd |MinInt|, which does not fit.
	if r.num.Equal(d) {
		r.num, r.den = oneInt, oneInt
		return r
	}
	g := wide.GCD(r.num, d)
	n := wide.Quo(r.num, g)
	d = wide.Quo(d, g)
	if d.Sign() < 0 {
		n, d = wide.Neg(n), wide.Neg(d)
	}
	r.num, r.den = n, d
	return r
}

// Neg sets r to -r.
func (r *Rat) Neg() *Rat {
	r.num = wide.Neg(r.num)
	r.den = r.Den()
	return r
}

// Float64 returns num/den as a float64. The conversion is lossy and meant
// for display and diagnostics only; use Cmp for exact ordering.
func (r Rat) Float64() float64 {
	return r.num.Float64() / r.Den().Float64()
}

// String renders r as "num/den".
func (r Rat) String() string {
	return r.num.String() + "/" + r.Den().String()
}

// LCMOfDivisors returns the least common multiple of the divisors of rs,
// the smallest common denominator they can all be written over. rs must not
// be empty.
func LCMOfDivisors(rs []Rat) wide.Int {
	if len(rs) == 0 {
		apperrors.Fatal("lcm", apperrors.ErrPrecondition, "empty input")
	}
	l := rs[0].Den()
	for _, r := range rs[1:] {
		l = wide.LCM(l, r.Den())
	}
	return l
}
