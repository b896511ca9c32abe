package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grantcompass",
		Name:      "grant_transitions_total",
		Help:      "Lifecycle transitions applied, labelled by operation.",
	}, []string{"operation"})

	notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grantcompass",
		Name:      "notifications_created_total",
		Help:      "Notification records created, labelled by type.",
	}, []string{"type"})
)

// TransitionApplied records a successfully persisted lifecycle transition.
func TransitionApplied(operation string) {
	transitionsTotal.WithLabelValues(operation).Inc()
}

// NotificationCreated records one persisted notification record.
func NotificationCreated(notificationType string) {
	notificationsTotal.WithLabelValues(notificationType).Inc()
}
