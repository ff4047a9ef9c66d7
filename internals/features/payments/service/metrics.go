package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentMarksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clubpay",
			Subsystem: "payments",
			Name:      "marks_total",
			Help:      "Payment status marks by upsert outcome",
		},
		[]string{"outcome"},
	)

	statusFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clubpay",
			Subsystem: "payments",
			Name:      "status_fallbacks_total",
			Help:      "Status lookups answered with the synthetic pending entry",
		},
		[]string{"reason"},
	)
)

func RecordMark(o Outcome) {
	paymentMarksTotal.WithLabelValues(string(o)).Inc()
}

func RecordStatusFallback(reason string) {
	statusFallbacksTotal.WithLabelValues(reason).Inc()
}
