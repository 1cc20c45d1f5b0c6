// Package metrics defines and registers all custom Prometheus metrics for the
// BidOrBuy services. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry on package init via
// promauto and are exposed by each service on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bidorbuy"

// Outcome label values shared by the login metrics.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidRequest     = "invalid_request"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeUnavailable        = "unavailable"
	OutcomeUnexpected         = "unexpected"
	OutcomeError              = "error"
)

// ── Identity metrics ──────────────────────────────────────────────────────────

// IdentityLoginsTotal counts login attempts handled by the Identity API.
// Label:
//   - outcome: success, invalid_request, invalid_credentials or error
var IdentityLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_logins_total",
		Help:      "Total number of login attempts handled by the Identity API, by outcome.",
	},
	[]string{"outcome"},
)

// ── Web frontend metrics ──────────────────────────────────────────────────────

// WebLoginsTotal counts login form submissions on the web frontend.
// Label:
//   - outcome: success, invalid_request, invalid_credentials, unavailable, unexpected or error
var WebLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "web_logins_total",
		Help:      "Total number of login form submissions, by outcome.",
	},
	[]string{"outcome"},
)

// WebLogoutsTotal counts explicit logouts.
var WebLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "web_logouts_total",
		Help:      "Total number of explicit logouts.",
	},
)

// IdentityCallDuration measures the frontend's round trip to the Identity API.
// Label:
//   - outcome: same values as WebLoginsTotal
var IdentityCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "identity_call_duration_seconds",
		Help:      "Duration of login calls from the web frontend to the Identity API.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"outcome"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts served HTTP requests.
// Labels:
//   - service: "identity" or "web"
//   - method, route: the HTTP method and the registered route pattern
//   - code: the response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served.",
	},
	[]string{"service", "method", "route", "code"},
)

// HTTPRequestDuration measures request handling latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service", "method", "route"},
)
