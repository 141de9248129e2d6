// Package metrics holds the Prometheus collectors for retention runs and the
// admin HTTP surface. Collectors are registered on an explicit registry; the
// package keeps no global state.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

const namespace = "photo"

// Run outcomes.
const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial"
	OutcomeFailed  = "failed"
)

// Recorder records retention run results.
type Recorder struct {
	runs          *prometheus.CounterVec
	excessFound   *prometheus.CounterVec
	excessRemoved *prometheus.CounterVec
	errors        *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	lastSuccess   *prometheus.GaugeVec
}

// NewRecorder creates the retention collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_runs_total",
			Help:      "Retention runs by policy, mode and outcome.",
		}, []string{"policy", "mode", "outcome"}),

		excessFound: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_excess_found_total",
			Help:      "Photos identified as excess.",
		}, []string{"policy"}),

		excessRemoved: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_excess_removed_total",
			Help:      "Excess photos deleted.",
		}, []string{"policy"}),

		errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retention_errors_total",
			Help:      "Retention failures by kind (enumerate, scan, delete).",
		}, []string{"policy", "kind"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "retention_run_duration_seconds",
			Help:      "Wall-clock duration of retention runs.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14), // 50ms to ~7min
		}, []string{"policy"}),

		lastSuccess: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "retention_last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}, []string{"policy", "mode"}),
	}
}

// RecordRun records a finished run.
func (r *Recorder) RecordRun(report *domain.Report) {
	policy := report.Policy.String()
	mode := domain.RunModeFromDryRun(report.DryRun).String()

	r.runs.WithLabelValues(policy, mode, Outcome(report)).Inc()
	r.excessFound.WithLabelValues(policy).Add(float64(report.ExcessFound))
	r.excessRemoved.WithLabelValues(policy).Add(float64(report.ExcessRemoved))
	r.duration.WithLabelValues(policy).Observe(report.DurationSeconds)

	if report.Success {
		ts := report.FinishedAt
		if ts.IsZero() {
			ts = time.Now()
		}
		r.lastSuccess.WithLabelValues(policy, mode).Set(float64(ts.Unix()))
	}
}

// RecordError counts a single failure of the given kind.
func (r *Recorder) RecordError(policy domain.RetentionPolicy, kind string) {
	r.errors.WithLabelValues(policy.String(), kind).Inc()
}

// Outcome classifies a report for the runs counter.
func Outcome(report *domain.Report) string {
	switch {
	case !report.Success:
		return OutcomeFailed
	case report.Errors > 0:
		return OutcomePartial
	default:
		return OutcomeSuccess
	}
}
