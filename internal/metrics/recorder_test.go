package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveRun(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveRun(OutcomeSuccess, 10*time.Millisecond)
	r.ObserveRun(OutcomeSuccess, 20*time.Millisecond)
	r.ObserveRun(OutcomeArithmetic, time.Millisecond)

	if got := testutil.ToFloat64(r.runs.WithLabelValues(OutcomeSuccess)); got != 2 {
		t.Errorf("success runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.runs.WithLabelValues(OutcomeArithmetic)); got != 1 {
		t.Errorf("arithmetic runs = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.duration); got != 1 {
		t.Errorf("duration collectors = %d, want 1", got)
	}
}

func TestRecorder_Gauges(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveDistribution(12, 31)
	r.ObserveSimulation(0.004)
	r.ObserveHost(37.5, 61.25)

	if got := testutil.ToFloat64(r.trials); got != 12 {
		t.Errorf("trials = %v, want 12", got)
	}
	if got := testutil.ToFloat64(r.denominatorBits); got != 31 {
		t.Errorf("denominator bits = %v, want 31", got)
	}
	if got := testutil.ToFloat64(r.simulationError); got != 0.004 {
		t.Errorf("simulation error = %v, want 0.004", got)
	}
	if got := testutil.ToFloat64(r.hostCPU); got != 37.5 {
		t.Errorf("host cpu = %v, want 37.5", got)
	}
	if got := testutil.ToFloat64(r.hostMemory); got != 61.25 {
		t.Errorf("host memory = %v, want 61.25", got)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveRun(OutcomeSuccess, time.Millisecond)
	r.ObserveDistribution(4, 5)

	path := filepath.Join(t.TempDir(), "ratcalc.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)

	for _, want := range []string{
		`ratcalc_runs_total{outcome="success"} 1`,
		"ratcalc_run_duration_seconds_bucket",
		"ratcalc_trials 4",
		"ratcalc_common_denominator_bits 5",
		"ratcalc_heap_alloc_bytes",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("textfile should contain %q", want)
		}
	}
}

func TestRecorder_WriteTextfileError(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	path := filepath.Join(t.TempDir(), "missing", "ratcalc.prom")
	if err := r.WriteTextfile(path); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
