// Package binomial serves binomial coefficients C(n, k) from a compressed
// Pascal triangle built once on first use.
package binomial

import (
	"sync"

	apperrors "github.com/agbru/ratcalc/internal/errors"
)

// MaxN is the largest n served. C(66, 33) is the last central coefficient
// that fits in an int64.
const MaxN = 66

var (
	pascal   []int64
	initOnce sync.Once
)

// offset maps (n, k), 4 <= n and 2 <= k <= n/2, to its slot in the
// compressed table. Rows 0..3 and columns 0, 1 are computed directly, and
// the symmetric right half of each row is never stored.
func offset(n, k int) int {
	np := n - 3
	return np*np/4 + k - 2
}

func build() {
	pascal = make([]int64, offset(MaxN+1, 2))
	for n := 4; n <= MaxN; n++ {
		for k := 2; k <= n/2; k++ {
			pascal[offset(n, k)] = lookup(n-1, k-1) + lookup(n-1, k)
		}
	}
}

// lookup reads C(n, k) from the table, which must already hold row n.
func lookup(n, k int) int64 {
	if k > n-k {
		k = n - k
	}
	switch k {
	case 0:
		return 1
	case 1:
		return int64(n)
	}
	return pascal[offset(n, k)]
}

// Coefficient returns C(n, k), the number of ways to choose k items out of
// n. It requires 0 <= k <= n <= MaxN; anything else is a fatal
// precondition violation. Safe for concurrent use.
func Coefficient(n, k int) int64 {
	if n < 0 || n > MaxN || k < 0 || k > n {
		apperrors.Fatal("binomial", apperrors.ErrPrecondition, "C(%d, %d) outside 0 <= k <= n <= %d", n, k, MaxN)
	}
	initOnce.Do(build)
	return lookup(n, k)
}
