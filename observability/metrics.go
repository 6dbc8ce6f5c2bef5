package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the relay counters on a private registry so that several relays
// (one per test, typically) never collide on registration.
// All methods are safe on a nil *Metrics.
type Metrics struct {
	registry        *prometheus.Registry
	connections     prometheus.Gauge
	participants    prometheus.Gauge
	names           *prometheus.CounterVec
	broadcasts      prometheus.Counter
	directed        *prometheus.CounterVec
	deliveryFailure prometheus.Counter
	evicted         prometheus.Counter
	outboundFill    prometheus.Gauge
}

func NewMetrics(namespace string) *Metrics {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	connections := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "connections_open"})
	participants := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "participants_active"})
	names := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "name_proposals_total"}, []string{"result"})
	broadcasts := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "broadcast_lines_total"})
	directed := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "directed_messages_total"}, []string{"result"})
	deliveryFailure := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "delivery_failures_total"})
	evicted := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "slow_consumers_evicted_total"})
	outboundFill := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "outbound_buffer_fill_max_percent"})
	r.MustRegister(connections, participants, names, broadcasts, directed, deliveryFailure, evicted, outboundFill)

	return &Metrics{
		registry:        r,
		connections:     connections,
		participants:    participants,
		names:           names,
		broadcasts:      broadcasts,
		directed:        directed,
		deliveryFailure: deliveryFailure,
		evicted:         evicted,
		outboundFill:    outboundFill,
	}
}

func (m *Metrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.connections.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.connections.Dec()
}

func (m *Metrics) NameAccepted() {
	if m == nil {
		return
	}
	m.names.WithLabelValues("accepted").Inc()
	m.participants.Inc()
}

func (m *Metrics) NameRejected() {
	if m == nil {
		return
	}
	m.names.WithLabelValues("rejected").Inc()
}

func (m *Metrics) ParticipantLeft() {
	if m == nil {
		return
	}
	m.participants.Dec()
}

func (m *Metrics) Broadcast(failed int) {
	if m == nil {
		return
	}
	m.broadcasts.Inc()
	m.deliveryFailure.Add(float64(failed))
}

func (m *Metrics) Directed(delivered bool) {
	if m == nil {
		return
	}
	result := "dropped"
	if delivered {
		result = "delivered"
	}
	m.directed.WithLabelValues(result).Inc()
}

func (m *Metrics) DeliveryFailed() {
	if m == nil {
		return
	}
	m.deliveryFailure.Inc()
}

func (m *Metrics) SlowConsumerEvicted() {
	if m == nil {
		return
	}
	m.evicted.Inc()
}

// OutboundFill records the fullest outbound queue seen in the last sample.
func (m *Metrics) OutboundFill(percent int) {
	if m == nil {
		return
	}
	m.outboundFill.Set(float64(percent))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for in-process inspection.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
