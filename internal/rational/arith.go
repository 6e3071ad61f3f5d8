package rational

import (
	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/wide"
)

// combine sets r to r + inc (sub false) or r - inc (sub true) without
// reducing. Distinct divisors are brought to their least common multiple
// rather than to their product, which keeps intermediates as small as the
// operands allow.
func (r *Rat) combine(inc Rat, sub bool) {
	op := wide.Add
	if sub {
		op = wide.Sub
	}
	rd, id := r.Den(), inc.Den()
	if rd.Equal(id) {
		r.num = op(r.num, inc.num)
		r.den = rd
		return
	}
	g := wide.GCD(rd, id)
	rFac := wide.Quo(id, g)
	iFac := wide.Quo(rd, g)
	r.num = op(wide.Mul(r.num, rFac), wide.Mul(inc.num, iFac))
	r.den = wide.Mul(rd, rFac)
}

// Add sets r to r + inc in reduced form and returns r.
func (r *Rat) Add(inc Rat) *Rat {
	r.combine(inc, false)
	return r.Normalize()
}

// AddFast sets r to r + inc like Add but leaves the result unreduced.
func (r *Rat) AddFast(inc Rat) *Rat {
	r.combine(inc, false)
	return r
}

// Sub sets r to r - inc in reduced form and returns r.
func (r *Rat) Sub(inc Rat) *Rat {
	r.combine(inc, true)
	return r.Normalize()
}

// MulFast sets r to r * f without reducing.
func (r *Rat) MulFast(f Rat) *Rat {
	r.num = wide.Mul(r.num, f.num)
	r.den = wide.Mul(r.Den(), f.Den())
	return r
}

// Mul sets r to r * f in reduced form and returns r.
func (r *Rat) Mul(f Rat) *Rat {
	return r.MulFast(f).Normalize()
}

// Quo sets r to r / f in reduced form and returns r. Dividing by a zero
// rational is a fatal division by zero.
func (r *Rat) Quo(f Rat) *Rat {
	if f.IsZero() {
		apperrors.Fatal("quo", apperrors.ErrDivisionByZero, "%s / %s", r, f)
	}
	r.num = wide.Mul(r.num, f.Den())
	r.den = wide.Mul(r.Den(), f.num)
	return r.Normalize()
}

// MulInt sets r to r * s in reduced form and returns r. s is first divided
// by its gcd with the divisor, so a product that fits once reduced never
// overflows on the way.
func (r *Rat) MulInt(s wide.Int) *Rat {
	d := r.Den()
	g := wide.GCD(s, d)
	r.num = wide.Mul(r.num, wide.Quo(s, g))
	r.den = wide.Quo(d, g)
	return r.Normalize()
}

// Pow sets r to r raised to the non-negative integer power n. A negative n
// is a precondition violation; 0^0 is 1.
func (r *Rat) Pow(n int64) *Rat {
	e := wide.FromInt64(n)
	r.num = wide.Pow(r.num, e)
	r.den = wide.Pow(r.Den(), e)
	return r.Normalize()
}

// Sum returns a + b without modifying either operand.
func Sum(a, b Rat) Rat {
	a.Add(b)
	return a
}

// Product returns a * b without modifying either operand.
func Product(a, b Rat) Rat {
	a.Mul(b)
	return a
}
