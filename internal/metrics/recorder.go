package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "ratcalc"

// Run outcomes used as the "outcome" label of ratcalc_runs_total.
const (
	OutcomeSuccess    = "success"
	OutcomeArithmetic = "arithmetic"
	OutcomeMismatch   = "mismatch"
	OutcomeTimeout    = "timeout"
	OutcomeCanceled   = "canceled"
	OutcomeError      = "error"
)

// Recorder owns the registry and the collectors of a ratcalc process.
type Recorder struct {
	registry *prometheus.Registry

	runs            *prometheus.CounterVec
	duration        prometheus.Histogram
	trials          prometheus.Gauge
	denominatorBits prometheus.Gauge
	simulationError prometheus.Gauge
	hostCPU         prometheus.Gauge
	hostMemory      prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry, including the Go
// runtime collector and a live heap gauge.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Distribution computations by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time spent computing the exact distribution.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		trials: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "trials",
			Help:      "Number of trials of the last distribution.",
		}),
		denominatorBits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "common_denominator_bits",
			Help:      "Bit length of the common denominator of the last distribution.",
		}),
		simulationError: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simulation_max_abs_error",
			Help:      "Largest gap between simulated frequency and exact probability.",
		}),
		hostCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "host_cpu_percent",
			Help:      "Host CPU usage sampled at the end of the last run.",
		}),
		hostMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "host_memory_percent",
			Help:      "Host memory usage sampled at the end of the last run.",
		}),
	}

	mc := NewMemoryCollector()
	heap := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "heap_alloc_bytes",
		Help:      "Bytes of heap in use.",
	}, func() float64 { return float64(mc.Snapshot().HeapAlloc) })

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		r.runs, r.duration, r.trials, r.denominatorBits, r.simulationError,
		r.hostCPU, r.hostMemory, heap,
	)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveRun counts one run with the given outcome and records its duration.
func (r *Recorder) ObserveRun(outcome string, elapsed time.Duration) {
	r.runs.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// ObserveDistribution records the shape of a computed distribution.
func (r *Recorder) ObserveDistribution(trials, denominatorBits int) {
	r.trials.Set(float64(trials))
	r.denominatorBits.Set(float64(denominatorBits))
}

// ObserveSimulation records the largest deviation seen by a cross-check.
func (r *Recorder) ObserveSimulation(maxAbsError float64) {
	r.simulationError.Set(maxAbsError)
}

// ObserveHost records a host load sample, both as percentages.
func (r *Recorder) ObserveHost(cpuPercent, memPercent float64) {
	r.hostCPU.Set(cpuPercent)
	r.hostMemory.Set(memPercent)
}

// WriteTextfile writes every registered metric to path, atomically, in the
// Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
