// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// SocketConnectionsActive tracks currently attached websocket connections.
	SocketConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "socket_connections_active",
			Help: "Number of active websocket connections",
		},
	)

	// MessagesTotal tracks persisted private messages.
	MessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total private messages persisted",
		},
	)

	// RoomJoinsTotal tracks room join attempts by outcome.
	RoomJoinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_room_joins_total",
			Help: "Room join attempts",
		},
		[]string{"outcome"},
	)

	// OfflineNotificationsTotal tracks notification tasks enqueued for offline receivers.
	OfflineNotificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_offline_notifications_total",
			Help: "Offline notification tasks enqueued",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
}
