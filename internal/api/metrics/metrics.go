// Package metrics defines all custom Prometheus metrics for the LinkUp API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register themselves with the default registry via promauto at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "linkup"

// ── Connection metrics ────────────────────────────────────────────────────────

// ConnectionRequestsTotal counts connection request attempts.
// Label:
//   - outcome: "created", "self", "duplicate", "already_connected", "error"
var ConnectionRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connection_requests_total",
		Help:      "Total number of connection request attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ConnectionResolutionsTotal counts terminal transitions of pending requests.
// Label:
//   - result: "accepted" or "rejected"
var ConnectionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connection_resolutions_total",
		Help:      "Total number of connection requests resolved, by result.",
	},
	[]string{"result"},
)

// ConnectionsRemovedTotal counts severed connections.
var ConnectionsRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connections_removed_total",
		Help:      "Total number of connections removed.",
	},
)

// ── Feed metrics ──────────────────────────────────────────────────────────────

// PostsCreatedTotal counts newly created feed posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of feed posts created.",
	},
)

// PostLikesTotal counts like toggles.
// Label:
//   - action: "like" or "unlike"
var PostLikesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_likes_total",
		Help:      "Total number of like toggles, by resulting action.",
	},
	[]string{"action"},
)

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts published listings.
// Label:
//   - type: "full-time", "part-time", "contract", "internship", "remote"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job listings created, by employment type.",
	},
	[]string{"type"},
)

// JobApplicationsTotal counts submitted applications.
var JobApplicationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_applications_total",
		Help:      "Total number of job applications submitted.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsQueuedTotal counts events handed to the dispatcher.
// Label:
//   - kind: the notification kind (e.g. "connection_request")
var NotificationsQueuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_queued_total",
		Help:      "Total number of notification events enqueued, by kind.",
	},
	[]string{"kind"},
)

// NotificationsDroppedTotal counts events discarded because the target
// worker's buffer was full.
// Label:
//   - kind: the notification kind
var NotificationsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notification events dropped on a full worker buffer, by kind.",
	},
	[]string{"kind"},
)

// NotificationsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, suppressed) or "miss" (new, persisted)
var NotificationsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dedup_total",
		Help:      "Total number of notification dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// NotificationsQueueDepth tracks pending events per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
