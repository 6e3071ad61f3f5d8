package wide

import (
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/agbru/ratcalc/internal/errors"
)

// try runs fn and reports the arithmetic failure it raised, if any.
func try(fn func() Int) (r Int, err error) {
	defer apperrors.RecoverArithmetic(&err)
	return fn(), nil
}

// expectFatal asserts that fn raises an ArithmeticError wrapping cause.
func expectFatal(t *testing.T, cause error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		ae, ok := r.(apperrors.ArithmeticError)
		if !ok {
			t.Fatalf("expected ArithmeticError panic, got %T (%v)", r, r)
		}
		if !errors.Is(ae, cause) {
			t.Fatalf("expected cause %v, got %v", cause, ae)
		}
	}()
	fn()
}

// fits reports whether b is representable as an Int.
func fits(b *big.Int) bool {
	_, ok := FromBigInt(b)
	return ok
}

// checkAgainstBig verifies that a wide result agrees with its math/big
// oracle: equal when the oracle fits, an overflow failure otherwise.
func checkAgainstBig(got Int, err error, want *big.Int) bool {
	if !fits(want) {
		return errors.Is(err, apperrors.ErrOverflow)
	}
	return err == nil && got.BigInt().Cmp(want) == 0
}
