// Package metrics counts reporter events and test outcomes with Prometheus
// collectors and exports them in the node_exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/denizgursoy/specreporter/pkg/reporter"
)

const (
	MetricsNamespace = "specreporter"
)

// Observer implements reporter.Observer on a private registry so several
// reporters in one process do not share counters.
type Observer struct {
	registry *prometheus.Registry

	eventsTotal *prometheus.CounterVec
	testsTotal  *prometheus.CounterVec
	sessions    prometheus.Gauge
}

var _ reporter.Observer = (*Observer)(nil)

func NewObserver() *Observer {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Observer{
		registry: reg,
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "events_total",
			Help:      "Count of handled lifecycle events",
		}, []string{
			"event",
		}),
		testsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "tests_total",
			Help:      "Count of reported tests by runner session and state",
		}, []string{
			"cid",
			"state",
		}),
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "sessions_running",
			Help:      "Number of runner sessions started and not yet ended",
		}),
	}
}

func (o *Observer) ObserveEvent(name reporter.EventName) {
	o.eventsTotal.WithLabelValues(string(name)).Inc()

	switch name {
	case reporter.EventRunnerStart:
		o.sessions.Inc()
	case reporter.EventRunnerEnd:
		o.sessions.Dec()
	}
}

func (o *Observer) ObserveTestState(cid string, state reporter.State) {
	o.testsTotal.WithLabelValues(cid, string(state)).Inc()
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

// WriteTextfile writes every collected metric to filename atomically.
func (o *Observer) WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, o.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", filename, err)
	}
	return nil
}
