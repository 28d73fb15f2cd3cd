// SPDX-License-Identifier: MIT

// Package metrics exposes pipeline stage timings and failures to Prometheus.
// A *Metrics is a pipeline.Observer.
package metrics

import (
	"errors"
	"time"

	"github.com/katalvlaran/precisiongraph/matrix"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors registered on one registry.
type Metrics struct {
	StageLatency *prometheus.HistogramVec
	Failures     *prometheus.CounterVec
	Requests     *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		StageLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "precgraph_stage_duration_seconds",
			Help:    "Duration of one pipeline stage by stage name",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"stage"}),

		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "precgraph_stage_failures_total",
			Help: "Pipeline stage failures by stage and error kind",
		}, []string{"stage", "kind"}),

		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "precgraph_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
	}
}

// ObserveStage records the duration of a successful stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m != nil {
		m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// ObserveFailure counts a stage failure.
func (m *Metrics) ObserveFailure(stage string, err error) {
	if m != nil {
		m.Failures.WithLabelValues(stage, Kind(err)).Inc()
	}
}

// IncrementRequest counts one HTTP response.
func (m *Metrics) IncrementRequest(route, code string) {
	if m != nil {
		m.Requests.WithLabelValues(route, code).Inc()
	}
}

// Kind maps an error to a low-cardinality label value.
func Kind(err error) string {
	switch {
	case errors.Is(err, matrix.ErrSingular):
		return "singular"
	case errors.Is(err, matrix.ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, matrix.ErrDimension):
		return "dimension"
	case errors.Is(err, matrix.ErrDegenerate):
		return "degenerate"
	case errors.Is(err, matrix.ErrNaNInf):
		return "non_finite"
	default:
		return "other"
	}
}
