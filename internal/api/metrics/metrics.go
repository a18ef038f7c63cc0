// Package metrics defines and registers all custom Prometheus metrics for
// the issue-reporting API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "issuetrack"

// RegistrationsTotal counts successful employee registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of employee accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Labels:
//   - method: "employee" (email/password) or "admin" (passcode)
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by method and result.",
	},
	[]string{"method", "result"},
)

// ReportsCreatedTotal counts submitted reports.
// Label:
//   - department: the department the report was routed to
var ReportsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of issue reports submitted, by department.",
	},
	[]string{"department"},
)

// RepliesTotal counts manager replies.
// Label:
//   - status: the status the reply moved the report to
var RepliesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "replies_total",
		Help:      "Total number of manager replies, by resulting status.",
	},
	[]string{"status"},
)

// SuggestionsTotal counts department suggestions served.
// Label:
//   - department: the suggested department
var SuggestionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggestions_total",
		Help:      "Total number of department suggestions served, by department.",
	},
	[]string{"department"},
)
