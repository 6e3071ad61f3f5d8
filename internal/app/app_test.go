package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/logging"
	"github.com/agbru/ratcalc/internal/ui"
)

func newTestApp(t *testing.T, args ...string) *Application {
	t.Helper()
	application, err := New(append([]string{"ratcalc"}, args...), io.Discard,
		WithLogger(logging.NewLogger(io.Discard, "test")))
	require.NoError(t, err)
	return application
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		application := newTestApp(t)
		assert.Equal(t, 10, application.Config.Trials)
		assert.NotNil(t, application.Metrics)
	})

	t.Run("default logger", func(t *testing.T) {
		application, err := New([]string{"ratcalc", "-v"}, io.Discard)
		require.NoError(t, err)
		assert.NotNil(t, application.Logger)
	})

	t.Run("help", func(t *testing.T) {
		_, err := New([]string{"ratcalc", "--help"}, io.Discard)
		assert.True(t, IsHelpError(err))
	})

	t.Run("invalid configuration", func(t *testing.T) {
		_, err := New([]string{"ratcalc", "--p-num", "7", "--p-den", "6"}, io.Discard)
		require.Error(t, err)
		assert.False(t, IsHelpError(err))
		assert.Equal(t, apperrors.ExitErrorConfig, exitCodeFor(err))
	})
}

func TestRunQuiet(t *testing.T) {
	application := newTestApp(t, "-n", "3", "--p-den", "6", "-q")
	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "91/216\n", out.String())
}

func TestRunFullReport(t *testing.T) {
	application := newTestApp(t, "-n", "4", "--p-den", "2", "-k", "2", "--no-color", "-v")
	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	require.Equal(t, apperrors.ExitSuccess, code)

	output := out.String()
	for _, want := range []string{"B(4, 1/2)", "P(X >= 2)", "11/16", "Common denominator", "Computed in"} {
		assert.Contains(t, output, want)
	}
}

func TestRunOverflow(t *testing.T) {
	var errOut bytes.Buffer
	application, err := New([]string{"ratcalc", "-n", "66", "--p-den", "6", "-q"}, &errOut,
		WithLogger(logging.NewLogger(io.Discard, "test")))
	require.NoError(t, err)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	assert.Equal(t, apperrors.ExitErrorArithmetic, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: B(66, 1/6): ")
	assert.Contains(t, errOut.String(), "arithmetic overflow")
}

func TestRunContextErrors(t *testing.T) {
	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		application := newTestApp(t, "-n", "20", "-q")
		assert.Equal(t, apperrors.ExitErrorCanceled, application.Run(ctx, io.Discard))
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()
		application := newTestApp(t, "-n", "20", "-q")
		assert.Equal(t, apperrors.ExitErrorTimeout, application.Run(ctx, io.Discard))
	})
}

func TestRunSimulation(t *testing.T) {
	application := newTestApp(t, "-n", "5", "--p-den", "3", "--simulate", "20000", "--seed", "42", "--no-color")
	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out.String(), "Monte-Carlo cross-check: 20,000 rounds")
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "dist.tsv")
	metricsPath := filepath.Join(dir, "ratcalc.prom")

	application := newTestApp(t, "-n", "2", "--p-den", "2", "-q", "-o", outputPath, "--metrics-file", metricsPath)
	code := application.Run(context.Background(), io.Discard)
	require.Equal(t, apperrors.ExitSuccess, code)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1\t1/2")

	metricsData, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metricsData), `ratcalc_runs_total{outcome="success"} 1`)
	assert.Contains(t, string(metricsData), "ratcalc_trials 2")
}

func TestRunCompletion(t *testing.T) {
	t.Run("bash", func(t *testing.T) {
		application := newTestApp(t, "--completion", "bash")
		var out bytes.Buffer
		assert.Equal(t, apperrors.ExitSuccess, application.Run(context.Background(), &out))
		assert.Contains(t, out.String(), "complete -F")
	})

	t.Run("unsupported", func(t *testing.T) {
		application := newTestApp(t, "--completion", "tcsh")
		assert.Equal(t, apperrors.ExitErrorConfig, application.Run(context.Background(), io.Discard))
	})
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{"deadline", apperrors.CalculationError{Cause: context.DeadlineExceeded}, apperrors.ExitErrorTimeout},
		{"canceled", fmt.Errorf("wrapped: %w", context.Canceled), apperrors.ExitErrorCanceled},
		{"arithmetic", apperrors.CalculationError{Cause: apperrors.ArithmeticError{Op: "mul", Err: apperrors.ErrOverflow}}, apperrors.ExitErrorArithmetic},
		{"mismatch", fmt.Errorf("%w: got 2/3", ErrSumMismatch), apperrors.ExitErrorMismatch},
		{"wrapped arithmetic", apperrors.WrapError(apperrors.CalculationError{Cause: apperrors.ArithmeticError{Op: "pow", Err: apperrors.ErrOverflow}}, "B(%d, %s)", 66, "1/6"), apperrors.ExitErrorArithmetic},
		{"wrapped simulation cancel", apperrors.WrapError(context.Canceled, "simulating %d rounds", 1000), apperrors.ExitErrorCanceled},
		{"config", apperrors.NewConfigError("bad"), apperrors.ExitErrorConfig},
		{"validation", apperrors.ValidationError{Field: "p", Message: "out of range"}, apperrors.ExitErrorConfig},
		{"other", fmt.Errorf("disk full"), apperrors.ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}

func TestVersion(t *testing.T) {
	assert.True(t, HasVersionFlag([]string{"-n", "3", "--version"}))
	assert.True(t, HasVersionFlag([]string{"-V"}))
	assert.False(t, HasVersionFlag([]string{"-v"}))

	var out bytes.Buffer
	PrintVersion(&out)
	assert.True(t, strings.HasPrefix(out.String(), "ratcalc "+Version))
	assert.Contains(t, out.String(), "exact arithmetic")
}

func TestRunAppliesTheme(t *testing.T) {
	original := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(original)
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	application := newTestApp(t, "-n", "2", "-q", "--theme", "light")
	require.Equal(t, apperrors.ExitSuccess, application.Run(context.Background(), io.Discard))
	assert.Equal(t, "light", ui.GetCurrentTheme().Name)

	application = newTestApp(t, "-n", "2", "-q", "--theme", "orange", "--no-color")
	require.Equal(t, apperrors.ExitSuccess, application.Run(context.Background(), io.Discard))
	assert.Equal(t, "none", ui.GetCurrentTheme().Name)
}
