// Package metrics defines and registers all custom Prometheus metrics for the
// maintenance system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics register with the default Prometheus registry at package init,
// so importing this package anywhere in the binary is enough to expose them
// via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "maintenance"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsCreatedTotal counts sessions minted on successful login.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created.",
	},
)

// SessionsRevokedTotal counts sessions revoked through logout.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked by logout.",
	},
)

// SessionsExpiredTotal counts sessions evicted by the background sweep.
var SessionsExpiredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_expired_total",
		Help:      "Total number of expired sessions evicted by the sweeper.",
	},
)

// ── Log-sync metrics ──────────────────────────────────────────────────────────

// LogsProcessedTotal counts maintenance-log entries that completed processing.
// Label:
//   - result: "ok" or "error"
var LogsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logs_processed_total",
		Help:      "Total number of synced maintenance-log entries processed, by result.",
	},
	[]string{"result"},
)

// LogsDedupTotal counts deduplication decisions on incoming log entries.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new entry, processed)
var LogsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logs_dedup_total",
		Help:      "Total number of deduplication checks on log entries, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// LogsQueueDepth tracks the current number of log entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var LogsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "logs_queue_depth",
		Help:      "Current number of log entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Analysis metrics ──────────────────────────────────────────────────────────

// AnalysisRequestsTotal counts AI analysis requests.
// Labels:
//   - kind: "description" or "photo"
//   - result: "ok" or "error"
var AnalysisRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_requests_total",
		Help:      "Total number of AI analysis requests, by kind and result.",
	},
	[]string{"kind", "result"},
)

// AnalysisDuration measures end-to-end latency of an analysis request,
// including cache lookups and the upstream provider call.
// Label:
//   - kind: "description" or "photo"
var AnalysisDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Duration of analysis requests from receipt to response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"kind"},
)
