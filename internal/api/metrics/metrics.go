// Package metrics defines and registers all custom Prometheus metrics for the
// DarkSignal web application. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "darksignal"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthSuccessTotal counts successful logins.
var AuthSuccessTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_success_total",
		Help:      "Total number of successful authentications.",
	},
)

// AuthFailuresTotal counts rejected login attempts.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of authentication failures.",
	},
)

// AuthLogoutTotal counts logouts.
var AuthLogoutTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logout_total",
		Help:      "Total number of logouts.",
	},
)

// ── Breach-check metrics ──────────────────────────────────────────────────────

// PasswordChecksTotal counts completed breach checks.
// Label:
//   - result: "pwned" (password found in the breach corpus) or "clear"
var PasswordChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_checks_total",
		Help:      "Total number of completed password breach checks, by result.",
	},
	[]string{"result"},
)

// LookupErrorsTotal counts breach checks that failed against the range API.
var LookupErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookup_errors_total",
		Help:      "Total number of breach lookups that failed.",
	},
)
