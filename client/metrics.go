package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rhasspy_client",
			Name:      "requests_total",
			Help:      "HTTP requests issued per endpoint, labelled by outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rhasspy_client",
			Name:      "request_duration_seconds",
			Help:      "Wall-clock latency of HTTP exchanges per endpoint.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Utterance counters are labelled by site ID: sites are few (one per
	// speaker) and the label lines up with how callers think about queues.
	utterancesEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rhasspy_client",
			Name:      "utterances_enqueued_total",
			Help:      "Utterances accepted into the shard executor.",
		},
		[]string{"site"},
	)

	utterancesFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rhasspy_client",
			Name:      "utterances_failed_total",
			Help:      "Failed utterance attempts in the shard executor.",
		},
		[]string{"site"},
	)
)
