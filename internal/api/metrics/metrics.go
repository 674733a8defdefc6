// Package metrics defines and registers all custom Prometheus metrics for the
// resume API. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package init, and the router exposes it on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resume"

// SignupsTotal counts account creation attempts that reached the store.
// Label:
//   - result: "created" (new account) or "duplicate" (username already taken)
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" (token issued) or "failure" (unknown user or bad password)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ResumesCreatedTotal counts successfully persisted resume records.
var ResumesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resumes_created_total",
		Help:      "Total number of resume records created.",
	},
)

// TokenRejectionsTotal counts bearer tokens refused by the auth middleware
// (missing header, malformed scheme, bad signature, or expired).
var TokenRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected for an invalid or expired bearer token.",
	},
)
