package wide

import apperrors "github.com/agbru/ratcalc/internal/errors"

var (
	zero = Int{}
	one  = FromInt64(1)
	two  = FromInt64(2)
	ten  = FromInt64(10)

	minusOne = FromInt64(-1)
)

// Add returns a + b, failing fatally with apperrors.ErrOverflow when the sum
// does not fit in an Int.
func Add(a, b Int) Int {
	r := wrapAdd(a, b)
	// Overflow is only possible when both operands share a sign, and shows
	// up as a result of the opposite sign.
	an, bn, rn := a.Sign() < 0, b.Sign() < 0, r.Sign() < 0
	if an == bn && rn != an {
		apperrors.Fatal("add", apperrors.ErrOverflow, "%s + %s", a, b)
	}
	return r
}

// Sub returns a - b, failing fatally with apperrors.ErrOverflow when the
// difference does not fit in an Int.
func Sub(a, b Int) Int {
	r := wrapSub(a, b)
	// a - b can only overflow when the operands differ in sign.
	an, bn, rn := a.Sign() < 0, b.Sign() < 0, r.Sign() < 0
	if an != bn && rn != an {
		apperrors.Fatal("sub", apperrors.ErrOverflow, "%s - %s", a, b)
	}
	return r
}

// Mul returns a * b, failing fatally with apperrors.ErrOverflow when the
// product does not fit in an Int.
func Mul(a, b Int) Int {
	if a.IsZero() || b.IsZero() {
		return zero
	}
	// MinInt * -1 wraps back to MinInt and would pass the quotient check.
	if (a.Equal(minusOne) && b.Equal(MinInt)) || (b.Equal(minusOne) && a.Equal(MinInt)) {
		apperrors.Fatal("mul", apperrors.ErrOverflow, "%s * %s", a, b)
	}
	r := wrapMul(a, b)
	if q, _ := quoRem(r, b); !q.Equal(a) {
		apperrors.Fatal("mul", apperrors.ErrOverflow, "%s * %s", a, b)
	}
	return r
}

// Neg returns -x. Negating MinInt fails fatally with apperrors.ErrOverflow.
func Neg(x Int) Int {
	if x.Equal(MinInt) {
		apperrors.Fatal("neg", apperrors.ErrOverflow, "-(%s)", x)
	}
	return wrapNeg(x)
}

// Abs returns |x|. Abs(MinInt) fails fatally with apperrors.ErrOverflow.
func Abs(x Int) Int {
	if x.Sign() < 0 {
		return Neg(x)
	}
	return x
}

// Quo returns the quotient a / b truncated toward zero. A zero divisor fails
// with apperrors.ErrDivisionByZero and MinInt / -1 with apperrors.ErrOverflow.
func Quo(a, b Int) Int {
	q, _ := QuoRem(a, b)
	return q
}

// QuoRem returns the truncated quotient and remainder of a / b, with the
// same failure modes as Quo. The remainder has the sign of a.
func QuoRem(a, b Int) (q, r Int) {
	if b.IsZero() {
		apperrors.Fatal("quo", apperrors.ErrDivisionByZero, "%s / 0", a)
	}
	if b.Equal(minusOne) {
		return Neg(a), zero
	}
	return quoRem(a, b)
}

// rem returns a mod b (sign of a) for a non-zero b without any overflow
// failure, since the remainder always fits.
func rem(a, b Int) Int {
	if b.Equal(minusOne) || b.Equal(one) {
		return zero
	}
	_, r := quoRem(a, b)
	return r
}
