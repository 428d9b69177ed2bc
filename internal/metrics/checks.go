package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Check subsystem metrics
var (
	// ChecksTotal counts evaluated checks by check kind and result
	ChecksTotal *prometheus.CounterVec

	// FailuresTotal counts failed checks across all runs in this process
	FailuresTotal prometheus.Counter

	// RunFailures holds the failure count of the last finalized run
	RunFailures prometheus.Gauge

	// RunExitCode holds the exit code of the last finalized run
	RunExitCode prometheus.Gauge

	// FinalizeTimestamp records when the last run was finalized
	FinalizeTimestamp prometheus.Gauge

	// ErrorsTotal counts errors outside the checks, such as metrics server failures
	ErrorsTotal prometheus.Counter
)

func initCheckMetrics() {
	ChecksTotal = NewCounterVec(
		"unitcheck_checks_total",
		"Total number of checks evaluated, by check kind and result.",
		[]string{"check", "result"},
	)

	FailuresTotal = NewCounter(
		"unitcheck_failures_total",
		"Total number of failed checks.",
	)

	RunFailures = NewGauge(
		"unitcheck_run_failures",
		"Failure count of the last finalized run.",
	)

	RunExitCode = NewGauge(
		"unitcheck_run_exit_code",
		"Exit code returned by the last finalized run.",
	)

	FinalizeTimestamp = NewGauge(
		"unitcheck_finalize_timestamp",
		"Unix timestamp of the last finalized run.",
	)

	ErrorsTotal = NewCounter(
		"unitcheck_errors_total",
		"Total number of errors outside the checks themselves.",
	)
}

func registerCheckMetrics() {
	prometheus.MustRegister(
		ChecksTotal,
		FailuresTotal,
		RunFailures,
		RunExitCode,
		FinalizeTimestamp,
		ErrorsTotal,
	)
}

// Recorder feeds check outcomes into the Prometheus metrics
type Recorder struct{}

// NewRecorder initializes the metrics if needed and returns a Recorder
func NewRecorder() *Recorder {
	Init()
	return &Recorder{}
}

// RecordCheck counts one evaluated check
func (r *Recorder) RecordCheck(check string, passed bool) {
	result := "pass"
	if !passed {
		result = "fail"
		FailuresTotal.Inc()
	}
	ChecksTotal.WithLabelValues(check, result).Inc()
}

// RecordFinalize stores the outcome of a finished run
func (r *Recorder) RecordFinalize(failures int, exitCode int) {
	RunFailures.Set(float64(failures))
	RunExitCode.Set(float64(exitCode))
	FinalizeTimestamp.Set(float64(time.Now().Unix()))
}
