// Package metrics defines and registers all custom Prometheus metrics for
// the deskclient state core. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// Prometheus registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "deskclient"

// ActionsTotal counts every reducer application dispatched to the store.
// Labels:
//   - slice: the state partition the action targets (session, query, ...)
//   - action: the operation phase (e.g. "login/fulfilled", "reset")
var ActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Total number of actions dispatched to the store.",
	},
	[]string{"slice", "action"},
)

// ActionFailuresTotal counts operations that settled rejected.
// Label:
//   - slice: the state partition whose operation failed
var ActionFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "action_failures_total",
		Help:      "Total number of operations that settled rejected.",
	},
	[]string{"slice"},
)

// PersistDuration measures one write-back of the serialized state snapshot.
var PersistDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "persist_duration_seconds",
		Help:      "Duration of a single state snapshot write to the engine.",
		Buckets:   prometheus.DefBuckets,
	},
)

// RehydrationsTotal counts startup state loads.
// Label:
//   - result: "restored", "empty", or "error"
var RehydrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rehydrations_total",
		Help:      "Total number of startup rehydration attempts, by result.",
	},
	[]string{"result"},
)
