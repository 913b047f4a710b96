// Package metrics defines and registers all custom Prometheus metrics for
// the storyweave API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storyweave"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts completed registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "ok", "invalid", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenFailuresTotal counts rejected session tokens. The external response
// is always a uniform 401; this label is the only place the failure kind is
// recorded.
// Label:
//   - reason: "missing", "expired", "invalid", "malformed", "account_gone"
var TokenFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_token_failures_total",
		Help:      "Total number of rejected session tokens, by internal reason.",
	},
	[]string{"reason"},
)

// ── Translation metrics ───────────────────────────────────────────────────────

// TranslationsTotal counts calls to the external translation API.
// Label:
//   - result: "ok" or "error"
var TranslationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translations_total",
		Help:      "Total number of translation requests forwarded upstream, by result.",
	},
	[]string{"result"},
)
