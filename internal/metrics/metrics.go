package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts API requests by method, route pattern and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artflow_http_requests_total",
		Help: "Total HTTP requests served, by method, pattern and status code.",
	}, []string{"method", "pattern", "status"})

	// HTTPDuration observes request latency per route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "artflow_http_request_duration_seconds",
		Help:    "HTTP request latency, by route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"pattern"})

	// CalendarExpansions counts expansion passes per view.
	CalendarExpansions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artflow_calendar_expansions_total",
		Help: "Calendar expansion passes, by view.",
	}, []string{"view"})

	// CalendarEventsSkipped counts malformed events skipped during expansion.
	CalendarEventsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artflow_calendar_events_skipped_total",
		Help: "Events skipped during expansion because of a missing start date.",
	})

	// PlannerRollovers counts daily tasks moved by the nightly rollover.
	PlannerRollovers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artflow_planner_rollover_tasks_total",
		Help: "Incomplete planner tasks carried forward by the rollover job.",
	})

	// AdvisorRequests counts AI advisor calls by kind and outcome.
	AdvisorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artflow_advisor_requests_total",
		Help: "AI advisor requests, by kind and outcome.",
	}, []string{"kind", "outcome"})
)
