// Package metrics records pipeline run metrics on a private Prometheus registry
// and writes them as a node-exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Recorder holds the metrics of one run. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	pollObservations *prometheus.CounterVec
	pollDuration     *prometheus.HistogramVec
	actions          *prometheus.CounterVec
	deletions        *prometheus.CounterVec
}

// NewRecorder creates a recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		// Poll loop metrics
		pollObservations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "livepipe",
				Name:      "poll_observations_total",
				Help:      "Total number of observed resource states by poll loop and state",
			},
			[]string{"loop", "state"},
		),
		pollDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "livepipe",
				Name:      "poll_duration_seconds",
				Help:      "Duration of poll loops in seconds",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1s to ~8.5min
			},
			[]string{"loop"},
		),

		// AWS control-plane metrics
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "livepipe",
				Name:      "actions_total",
				Help:      "Total number of control-plane actions by operation and result",
			},
			[]string{"operation", "result"},
		),
		deletions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "livepipe",
				Name:      "cleanup_deletions_total",
				Help:      "Total number of cleanup deletions by resource kind and result",
			},
			[]string{"kind", "result"},
		),
	}

	r.registry.MustRegister(
		r.pollObservations,
		r.pollDuration,
		r.actions,
		r.deletions,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObservePoll records one observed state of a poll loop.
// Its signature matches poll.WithObserveHook.
func (r *Recorder) ObservePoll(loop, state string) {
	if r == nil {
		return
	}
	r.pollObservations.WithLabelValues(loop, state).Inc()
}

// ObservePollDuration records how long a poll loop ran.
func (r *Recorder) ObservePollDuration(loop string, d time.Duration) {
	if r == nil {
		return
	}
	r.pollDuration.WithLabelValues(loop).Observe(d.Seconds())
}

// ObserveAction records a control-plane action and returns err unchanged.
func (r *Recorder) ObserveAction(operation string, err error) error {
	if r != nil {
		r.actions.WithLabelValues(operation, result(err)).Inc()
	}
	return err
}

// ObserveDeletion records a cleanup deletion of one resource.
func (r *Recorder) ObserveDeletion(kind string, err error) {
	if r == nil {
		return
	}
	r.deletions.WithLabelValues(kind, result(err)).Inc()
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
