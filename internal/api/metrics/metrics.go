// Package metrics defines all custom Prometheus metrics for the blog API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// UsersSignedUpTotal counts successful registrations.
// Label:
//   - role: the role name assigned to the new account ("user", "admin", "moderator")
var UsersSignedUpTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_signed_up_total",
		Help:      "Total number of successfully registered users, by role.",
	},
	[]string{"role"},
)

// SignInsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// AuthDeniedTotal counts requests rejected by the auth middleware chain.
// Label:
//   - reason: "missing_token", "invalid_token", or "insufficient_role"
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests denied by authentication or authorization.",
	},
	[]string{"reason"},
)

// PostsCreatedTotal counts created blog posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of blog posts created.",
	},
)

// PostsDeletedTotal counts posts removed by the delete-all operation.
var PostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of blog posts deleted.",
	},
)

// RateLimitedTotal counts requests rejected by the Redis rate limiter.
// Label:
//   - route: the rate-limited route name (e.g. "sign_in")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"route"},
)
