// Package metrics defines and registers all custom Prometheus metrics for the
// stock insights API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at import
// time; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stockinsights"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "invalid_input", "duplicate", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token verification outcomes.
// Label:
//   - result: "ok", "expired", "bad_signature", or "malformed"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verifications, by outcome.",
	},
	[]string{"result"},
)

// ── Chart metrics ─────────────────────────────────────────────────────────────

// ChartQueriesTotal counts chart data queries.
// Labels:
//   - query: "price_series" or "volume_breakdown"
//   - result: "ok", "invalid_input", "empty", or "error"
var ChartQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chart_queries_total",
		Help:      "Total number of chart data queries, by query and result.",
	},
	[]string{"query", "result"},
)

// ChartQueryDuration measures how long one chart query takes from service
// entry to shaped response.
// Label:
//   - query: "price_series" or "volume_breakdown"
var ChartQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chart_query_duration_seconds",
		Help:      "Duration of chart queries including result shaping.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"query"},
)
