// Package probability computes exact binomial probabilities on top of the
// rational engine.
//
// Every term is an exact fraction: P(X = k) = C(n, k) p^k (1-p)^(n-k) with
// p = a/d. Terms are evaluated concurrently (one independent rational value
// per goroutine), and an arithmetic overflow in any term cancels the rest
// and is returned as an error carrying apperrors.ErrOverflow.
//
// The denominators grow as d^n, so the reachable number of trials depends on
// d and on the width of wide.Int: with a fair die (d = 6) a 128-bit engine
// covers up to 49 trials.
package probability
