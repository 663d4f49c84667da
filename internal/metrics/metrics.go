package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

var (
	chatMetricsOnce sync.Once

	inviteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invite_requests_total",
			Help: "Total number of contact invite attempts",
		},
		[]string{"status"},
	)

	inviteAcceptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invite_accepts_total",
			Help: "Total number of invite accept attempts",
		},
		[]string{"status"},
	)

	inviteRejectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invite_rejects_total",
			Help: "Total number of invite reject attempts",
		},
		[]string{"status"},
	)

	messagesSentTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_sent_total",
			Help: "Total number of message post attempts",
		},
		[]string{"status"},
	)
)

func RegisterChatMetrics() {
	chatMetricsOnce.Do(func() {
		prometheus.MustRegister(inviteRequestsTotal, inviteAcceptsTotal, inviteRejectsTotal, messagesSentTotal)
	})
}

func IncInviteRequest(status string) {
	RegisterChatMetrics()
	inviteRequestsTotal.WithLabelValues(status).Inc()
}

func IncInviteAccept(status string) {
	RegisterChatMetrics()
	inviteAcceptsTotal.WithLabelValues(status).Inc()
}

func IncInviteReject(status string) {
	RegisterChatMetrics()
	inviteRejectsTotal.WithLabelValues(status).Inc()
}

func IncMessageSent(status string) {
	RegisterChatMetrics()
	messagesSentTotal.WithLabelValues(status).Inc()
}
