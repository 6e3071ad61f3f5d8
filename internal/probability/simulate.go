package probability

import (
	"context"

	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/pcg"
)

// Simulate runs rounds experiments of Trials draws from src and returns how
// many rounds ended with exactly k successes, for each k. It is a lossy
// cross-check of the exact distribution, not a substitute for it.
func (b Binomial) Simulate(ctx context.Context, src *pcg.Source, rounds int) ([]uint64, error) {
	_, span := tracer.Start(ctx, "probability.Simulate")
	defer span.End()

	num, den := b.P.Num(), b.P.Den()
	if !den.IsInt64() {
		return nil, apperrors.ValidationError{Field: "p", Message: "denominator too large to simulate"}
	}
	threshold, bound := uint64(num.Int64()), uint64(den.Int64())

	counts := make([]uint64, b.Trials+1)
	for r := 0; r < rounds; r++ {
		if r%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		successes := 0
		for t := 0; t < b.Trials; t++ {
			if src.Uniform(bound) < threshold {
				successes++
			}
		}
		counts[successes]++
	}
	return counts, nil
}

// Frequencies turns simulation counts into relative frequencies.
func Frequencies(counts []uint64) []float64 {
	var rounds uint64
	for _, c := range counts {
		rounds += c
	}
	freq := make([]float64, len(counts))
	if rounds == 0 {
		return freq
	}
	for i, c := range counts {
		freq[i] = float64(c) / float64(rounds)
	}
	return freq
}
