package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the widget collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	results         *prometheus.CounterVec
	notifications   prometheus.Counter
	decodeFailures  prometheus.Counter
	bridgeDurations prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		results: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pastebutton_results_total",
				Help: "Total number of widget invocations by resulting response kind",
			},
			[]string{"kind"},
		),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pastebutton_notifications_total",
			Help: "Total number of error notifications shown to users",
		}),
		decodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pastebutton_decode_failures_total",
			Help: "Total number of pasted payloads that failed to decode",
		}),
		bridgeDurations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pastebutton_bridge_duration_seconds",
			Help:    "Duration of bridge invocations",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.results, m.notifications, m.decodeFailures, m.bridgeDurations)
	}
	return m
}

// ObserveResult counts one invocation that ended with the given response kind.
func (m *Metrics) ObserveResult(kind string) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(kind).Inc()
}

// ObserveNotification counts one notification.
func (m *Metrics) ObserveNotification() {
	if m == nil {
		return
	}
	m.notifications.Inc()
}

// ObserveDecodeFailure counts one undecodable payload.
func (m *Metrics) ObserveDecodeFailure() {
	if m == nil {
		return
	}
	m.decodeFailures.Inc()
}

// ObserveBridge records how long a bridge call took.
func (m *Metrics) ObserveBridge(d time.Duration) {
	if m == nil {
		return
	}
	m.bridgeDurations.Observe(d.Seconds())
}
