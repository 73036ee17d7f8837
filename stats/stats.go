// Package stats provides a Prometheus-backed observability hook for
// the message handling pipeline. It plugs into the server's trace hook
// and never inspects message contents.
package stats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wirerpc/wirerpc/server"
)

// Metrics counts messages and payload bytes flowing through a
// pipeline, labeled by direction.
type Metrics struct {
	messages *prometheus.CounterVec
	bytes    *prometheus.CounterVec
}

// NewMetrics builds the pipeline counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wirerpc",
			Name:      "messages_total",
			Help:      "Messages observed by the pipeline.",
		}, []string{"direction"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wirerpc",
			Name:      "message_bytes_total",
			Help:      "Message payload bytes observed by the pipeline.",
		}, []string{"direction"}),
	}
	reg.MustRegister(m.messages, m.bytes)
	return m
}

// Trace implements the pipeline's plain hook shape; assign it to
// server.Server.Trace.
func (m *Metrics) Trace(dir server.Direction, message []byte) {
	m.messages.WithLabelValues(string(dir)).Inc()
	m.bytes.WithLabelValues(string(dir)).Add(float64(len(message)))
}
