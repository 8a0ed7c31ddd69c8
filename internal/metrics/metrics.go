package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attractions_gateway_webhook_requests_total",
			Help: "Total number of webhook fulfillment requests",
		},
		[]string{"intent", "outcome"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attractions_gateway_upstream_requests_total",
			Help: "Total number of requests to the attractions backend",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "attractions_gateway_upstream_latency_seconds",
			Help: "Attractions backend request latency in seconds",
		},
	)

	ChannelMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attractions_gateway_channel_messages_total",
			Help: "Total number of messages handled per channel",
		},
		[]string{"channel"},
	)
)
