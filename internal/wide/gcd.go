package wide

import apperrors "github.com/agbru/ratcalc/internal/errors"

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. The result is never negative, whatever the operand signs, and
// GCD(0, 0) is 0. A result of |MinInt| does not fit and fails fatally.
func GCD(a, b Int) Int {
	for !b.IsZero() {
		a, b = b, rem(a, b)
	}
	if a.Sign() < 0 {
		if a.Equal(MinInt) {
			apperrors.Fatal("gcd", apperrors.ErrOverflow, "|%s|", a)
		}
		a = wrapNeg(a)
	}
	return a
}

// LCM returns the least common multiple of a and b, computed as
// a * (b / GCD(a, b)) so that the full product a*b is never formed.
// The result has the sign of a*b.
func LCM(a, b Int) Int {
	g := GCD(a, b)
	if g.IsZero() {
		return zero
	}
	return Mul(a, Quo(b, g))
}

// LCMOf folds LCM over values in order and returns the running multiple.
// An empty input violates the function's precondition and fails fatally.
func LCMOf(values []Int) Int {
	if len(values) == 0 {
		apperrors.Fatal("lcm", apperrors.ErrPrecondition, "empty input")
	}
	l := values[0]
	for _, v := range values[1:] {
		l = LCM(l, v)
	}
	return l
}
