package probability

import (
	"context"
	"runtime"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/rational"
)

var tracer = otel.Tracer("github.com/agbru/ratcalc/internal/probability")

// ProgressFunc receives the completed fraction of a computation, in [0, 1].
// It may be called from several goroutines.
type ProgressFunc func(progress float64)

// Distribution evaluates P(X = k) for every k in [0, Trials]. Terms are
// computed concurrently, at most GOMAXPROCS at a time. The first failure,
// whether an arithmetic error or a cancelled context, stops the remaining
// terms and is returned.
func (b Binomial) Distribution(ctx context.Context, progress ProgressFunc) ([]rational.Rat, error) {
	ctx, span := tracer.Start(ctx, "probability.Distribution")
	defer span.End()
	span.SetAttributes(
		attribute.Int("binomial.trials", b.Trials),
		attribute.String("binomial.p", b.P.String()),
	)

	out := rational.Zero(b.Trials + 1)
	total := float64(len(out))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := range out {
		g.Go(func() (err error) {
			defer apperrors.RecoverArithmetic(&err)
			if cerr := gctx.Err(); cerr != nil {
				return cerr
			}
			out[k] = b.PMF(k)
			if progress != nil {
				progress(float64(done.Add(1)) / total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, apperrors.CalculationError{Cause: err}
	}
	return out, nil
}
