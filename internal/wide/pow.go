package wide

import apperrors "github.com/agbru/ratcalc/internal/errors"

// Pow returns x raised to the power y by binary exponentiation
// (square-and-multiply). y must be non-negative; a negative exponent is a
// precondition violation. Every intermediate product goes through Mul, so
// the computation fails fatally as soon as one of them overflows. Pow(0, 0)
// is 1.
func Pow(x, y Int) Int {
	if y.Sign() < 0 {
		apperrors.Fatal("pow", apperrors.ErrPrecondition, "negative exponent %s", y)
	}
	result := one
	for !y.IsZero() {
		var bit Int
		y, bit = quoRem(y, two)
		if !bit.IsZero() {
			result = Mul(result, x)
		}
		if y.IsZero() {
			break
		}
		x = Mul(x, x)
	}
	return result
}
