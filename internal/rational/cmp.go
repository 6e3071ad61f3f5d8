package rational

import "github.com/agbru/ratcalc/internal/wide"

// Cmp compares a and b exactly and returns -1 if a < b, 0 if a == b and +1
// if a > b. Both values only need a positive divisor, so unreduced results
// of the Fast variants compare correctly. Instead of the plain cross product
// each numerator is scaled by the other divisor over their gcd.
func Cmp(a, b Rat) int {
	ad, bd := a.Den(), b.Den()
	g := wide.GCD(ad, bd)
	an := wide.Mul(a.num, wide.Quo(bd, g))
	bn := wide.Mul(b.num, wide.Quo(ad, g))
	return an.Cmp(bn)
}

// Cmp compares r and other; see the package-level Cmp.
func (r Rat) Cmp(other Rat) int { return Cmp(r, other) }

// Equal reports whether r and other denote the same number.
func (r Rat) Equal(other Rat) bool { return Cmp(r, other) == 0 }
