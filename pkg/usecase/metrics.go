package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "riskquant"

type metrics struct {
	assessments  *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	totalCost    prometheus.Histogram
	signups      *prometheus.CounterVec
}

// newMetrics creates the use case collectors. A nil registerer leaves them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		// status: success, failure
		assessments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "assessment",
			Name:      "runs_total",
			Help:      "Total risk assessments by outcome",
		}, []string{"status"}),

		// result: hit, miss
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "assessment",
			Name:      "cache_lookups_total",
			Help:      "Assessment cache lookups by result",
		}, []string{"result"}),

		totalCost: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "assessment",
			Name:      "total_cost",
			Help:      "Distribution of assessed total incident cost",
			Buckets:   prometheus.ExponentialBuckets(10_000, 4, 10),
		}),

		// status: granted, rejected
		signups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "signup",
			Name:      "events_total",
			Help:      "Signup webhook events by outcome",
		}, []string{"status"}),
	}
}
