package soak

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for soak runs.

var (
	// operations counts tree operations performed by soak trials, by op.
	operations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_soak_operations_total",
		Help: "The total number of tree operations performed by soak trials",
	}, []string{"op"})

	// violations counts rule or contract violations found by soak trials, by kind.
	violations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_soak_violations_total",
		Help: "The total number of violations found by soak trials",
	}, []string{"kind"})

	// trials counts finished trials, by outcome (passed or failed).
	trials = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_soak_trials_total",
		Help: "The total number of soak trials finished",
	}, []string{"outcome"})

	// trialDuration measures how long a single trial takes.
	trialDuration = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "rbtree_soak_trial_duration_seconds",
		Help: "The time taken by one soak trial",
		Buckets: []float64{
			0.001, // 1ms
			0.01,  // 10ms
			0.1,   // 100ms
			1,     // 1s
			10,    // 10s
			60,    // 1m
		},
	})

	// treeHeight observes the height of each trial's tree after all inserts.
	treeHeight = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "rbtree_soak_tree_height",
		Help:    "The height of the tree after the insert phase of a trial",
		Buckets: prometheus.LinearBuckets(4, 4, 10), //nolint:mnd
	})
)
