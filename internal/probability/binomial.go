package probability

import (
	"fmt"

	"github.com/agbru/ratcalc/internal/binomial"
	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/rational"
	"github.com/agbru/ratcalc/internal/wide"
)

// Binomial is the distribution of the number of successes in Trials
// independent trials that each succeed with probability P.
type Binomial struct {
	Trials int
	P      rational.Rat
}

// NewBinomial validates its arguments and returns the distribution.
// trials must lie in [0, binomial.MaxN] and p in [0, 1].
func NewBinomial(trials int, p rational.Rat) (Binomial, error) {
	if trials < 0 || trials > binomial.MaxN {
		return Binomial{}, apperrors.ValidationError{
			Field:   "trials",
			Message: fmt.Sprintf("must be between 0 and %d", binomial.MaxN),
		}
	}
	if p.Sign() < 0 || rational.Cmp(p, rational.One) > 0 {
		return Binomial{}, apperrors.ValidationError{
			Field:   "p",
			Message: "probability " + p.String() + " is outside [0, 1]",
		}
	}
	p.Normalize()
	return Binomial{Trials: trials, P: p}, nil
}

// failure returns 1 - P.
func (b Binomial) failure() rational.Rat {
	q := rational.One
	q.Sub(b.P)
	return q
}

// PMF returns P(X = k) exactly. k outside [0, Trials] has probability 0.
func (b Binomial) PMF(k int) rational.Rat {
	if k < 0 || k > b.Trials {
		return rational.Rat{}
	}
	term := rational.FromInt(wide.FromInt64(binomial.Coefficient(b.Trials, k)))
	success := b.P
	success.Pow(int64(k))
	failure := b.failure()
	failure.Pow(int64(b.Trials - k))
	return *term.Mul(success).Mul(failure)
}

// Mean returns the expected number of successes, n*p.
func (b Binomial) Mean() rational.Rat {
	m := b.P
	return *m.MulInt(wide.FromInt64(int64(b.Trials)))
}

// Variance returns n*p*(1-p).
func (b Binomial) Variance() rational.Rat {
	v := b.Mean()
	return *v.Mul(b.failure())
}

// Total sums a distribution. Terms are accumulated without intermediate
// reduction and normalized once at the end; for a complete distribution the
// result is exactly 1.
func Total(dist []rational.Rat) rational.Rat {
	var acc rational.Rat
	for _, p := range dist {
		acc.AddFast(p)
	}
	return *acc.Normalize()
}

// AtLeast returns P(X >= k) for a distribution indexed by k.
func AtLeast(dist []rational.Rat, k int) rational.Rat {
	if k < 0 {
		k = 0
	}
	var acc rational.Rat
	for i := k; i < len(dist); i++ {
		acc.Add(dist[i])
	}
	return acc
}

// AtMost returns P(X <= k) for a distribution indexed by k.
func AtMost(dist []rational.Rat, k int) rational.Rat {
	var acc rational.Rat
	for i := 0; i <= k && i < len(dist); i++ {
		acc.Add(dist[i])
	}
	return acc
}

// CommonDenominator returns the least common multiple of the term
// divisors, the denominator over which the whole table can be written.
func CommonDenominator(dist []rational.Rat) wide.Int {
	return rational.LCMOfDivisors(dist)
}

// Mode returns the index of the most likely outcome, the lowest one on ties.
func Mode(dist []rational.Rat) int {
	best := 0
	for k := 1; k < len(dist); k++ {
		if rational.Cmp(dist[k], dist[best]) > 0 {
			best = k
		}
	}
	return best
}
