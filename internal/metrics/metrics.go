package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetable"

var (
	// Publications counts per-group publication cycles by outcome
	Publications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "publications_total",
		Help:      "Daily schedule publications by outcome.",
	}, []string{"result"})

	UnpinFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unpin_failures_total",
		Help:      "Previous schedule posts that could not be unpinned or deleted.",
	})

	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "publication_cycle_seconds",
		Help:      "Duration of a full publication cycle over all groups.",
		Buckets:   prometheus.DefBuckets,
	})

	Commands = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Slash sub-commands handled.",
	}, []string{"command"})
)
