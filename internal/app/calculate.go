package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/ratcalc/internal/cli"
	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/logging"
	"github.com/agbru/ratcalc/internal/metrics"
	"github.com/agbru/ratcalc/internal/pcg"
	"github.com/agbru/ratcalc/internal/probability"
	"github.com/agbru/ratcalc/internal/rational"
	"github.com/agbru/ratcalc/internal/sysmon"
)

// ErrSumMismatch reports that the exact probabilities of a distribution do
// not add up to one, which means the engine produced a wrong term.
var ErrSumMismatch = errors.New("probabilities do not sum to one")

var tracer = otel.Tracer("github.com/agbru/ratcalc/internal/app")

// runCalculate orchestrates one computation: exact distribution, summary,
// optional simulation, output and metrics export.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	ctx, span := tracer.Start(ctx, "ratcalc.run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("ratcalc.trials", a.Config.Trials),
		attribute.Int64("ratcalc.p_num", a.Config.PNum),
		attribute.Int64("ratcalc.p_den", a.Config.PDen),
	)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()
	start := time.Now()

	b, report, err := a.computeReport(ctx, out)
	elapsed := time.Since(start)
	if err == nil && a.Config.Simulate > 0 {
		err = a.simulate(ctx, b, &report)
	}

	code := exitCodeFor(err)
	a.Metrics.ObserveRun(outcomeFor(code), elapsed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.reportFailure(err, code)
		a.exportMetrics()
		return code
	}

	report.Duration = elapsed
	a.Metrics.ObserveDistribution(report.Trials, report.CommonDenominator.BigInt().BitLen())
	a.Logger.Debug("distribution computed",
		logging.Int("trials", report.Trials),
		logging.Stringer("p", report.P),
		logging.Stringer("common_denominator", report.CommonDenominator),
		logging.Float64("seconds", elapsed.Seconds()),
	)

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Precision:  a.Config.Precision,
	}
	if err := cli.DisplayResultWithConfig(out, report, outputCfg); err != nil {
		a.Logger.Error("saving result failed", err, logging.String("path", a.Config.OutputFile))
		return apperrors.ExitErrorGeneric
	}
	host, hostOK := sysmon.Sample(ctx)
	if hostOK {
		a.Metrics.ObserveHost(host.CPUPercent, host.MemPercent)
	}
	if a.Config.Verbose {
		allocated, gcCycles := mem.Snapshot().AllocatedSince(before)
		cli.DisplayMemoryStats(allocated, gcCycles, out)
		if hostOK {
			cli.DisplayHostStats(host, out)
		}
	}

	if !a.exportMetrics() {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// computeReport evaluates the exact distribution and its aggregates.
func (a *Application) computeReport(ctx context.Context, out io.Writer) (probability.Binomial, cli.Report, error) {
	b, err := probability.NewBinomial(a.Config.Trials, rational.New(a.Config.PNum, a.Config.PDen))
	if err != nil {
		return b, cli.Report{}, err
	}

	var progress probability.ProgressFunc
	if !a.Config.Quiet {
		display := cli.NewProgressDisplay(out)
		display.Start()
		defer display.Stop()
		progress = display.Update
	}

	dist, err := b.Distribution(ctx, progress)
	if err != nil {
		return b, cli.Report{}, apperrors.WrapError(err, "B(%d, %s)", b.Trials, b.P)
	}
	report, err := summarize(b, dist, a.Config.AtLeast)
	return b, report, err
}

// summarize derives the reported aggregates from a distribution and checks
// that it sums to exactly one.
func summarize(b probability.Binomial, dist []rational.Rat, atLeast int) (r cli.Report, err error) {
	defer apperrors.RecoverArithmetic(&err)

	if total := probability.Total(dist); !total.Equal(rational.One) {
		return r, fmt.Errorf("%w: got %s", ErrSumMismatch, total)
	}
	return cli.Report{
		Trials:            b.Trials,
		P:                 b.P,
		Distribution:      dist,
		AtLeastK:          atLeast,
		AtLeast:           probability.AtLeast(dist, atLeast),
		Mean:              b.Mean(),
		Variance:          b.Variance(),
		Mode:              probability.Mode(dist),
		CommonDenominator: probability.CommonDenominator(dist),
	}, nil
}

// simulate runs the Monte-Carlo cross-check and stores its frequencies in
// report. A distribution that cannot be simulated is logged and skipped;
// only cancellation aborts the run.
func (a *Application) simulate(ctx context.Context, b probability.Binomial, report *cli.Report) error {
	var src *pcg.Source
	if a.Config.Seed != 0 {
		src = pcg.New(a.Config.Seed)
	} else {
		var err error
		if src, err = pcg.Seed(); err != nil {
			a.Logger.Error("simulation skipped", apperrors.WrapError(err, "seeding generator"))
			return nil
		}
	}

	counts, err := b.Simulate(ctx, src, a.Config.Simulate)
	if err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.WrapError(err, "simulating %d rounds", a.Config.Simulate)
		}
		a.Logger.Error("simulation skipped", err)
		return nil
	}
	report.Simulated = probability.Frequencies(counts)
	report.SimulationRounds = a.Config.Simulate
	a.Metrics.ObserveSimulation(report.MaxSimulationError())
	return nil
}

// reportFailure logs err and prints a one-line diagnostic.
func (a *Application) reportFailure(err error, code int) {
	a.Logger.Error("calculation failed", err, logging.Int("exit_code", code))
	switch code {
	case apperrors.ExitErrorTimeout:
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", apperrors.TimeoutError{Operation: "distribution", Limit: a.Config.Timeout})
	case apperrors.ExitErrorCanceled:
		fmt.Fprintln(a.ErrWriter, "Calculation canceled.")
	default:
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	}
}

// exportMetrics writes the metrics textfile when one is configured and
// reports whether it succeeded.
func (a *Application) exportMetrics() bool {
	if a.Config.MetricsFile == "" {
		return true
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Error("writing metrics failed", err, logging.String("path", a.Config.MetricsFile))
		return false
	}
	return true
}

// exitCodeFor maps a run error to its process exit code.
func exitCodeFor(err error) int {
	var (
		configErr     apperrors.ConfigError
		validationErr apperrors.ValidationError
	)
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return apperrors.ExitErrorCanceled
	case apperrors.IsArithmeticError(err):
		return apperrors.ExitErrorArithmetic
	case errors.Is(err, ErrSumMismatch):
		return apperrors.ExitErrorMismatch
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return apperrors.ExitErrorConfig
	default:
		return apperrors.ExitErrorGeneric
	}
}

// outcomeFor maps an exit code to the metrics outcome label.
func outcomeFor(code int) string {
	switch code {
	case apperrors.ExitSuccess:
		return metrics.OutcomeSuccess
	case apperrors.ExitErrorArithmetic:
		return metrics.OutcomeArithmetic
	case apperrors.ExitErrorMismatch:
		return metrics.OutcomeMismatch
	case apperrors.ExitErrorTimeout:
		return metrics.OutcomeTimeout
	case apperrors.ExitErrorCanceled:
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeError
	}
}
