// Package metrics defines and registers all custom Prometheus metrics for the
// resume assistant. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import and
// exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resume"

// ── Generation metrics ───────────────────────────────────────────────────────

// GenerationsTotal counts generation requests by outcome.
// Labels:
//   - model: "default" for the configured model, "custom" for any other
//   - outcome: "success", "backend_error" or "store_error"
var GenerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "Total number of generation requests, by model and outcome.",
	},
	[]string{"model", "outcome"},
)

// BackendCallDuration measures a single model call.
// Label:
//   - step: "resume", "cover_letter", "missing_skills" or "linkedin_summary"
var BackendCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_call_duration_seconds",
		Help:      "Duration of one text-generation backend call.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	},
	[]string{"step"},
)

// JobMatchScore records the similarity score of every stored generation.
var JobMatchScore = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_match_score",
		Help:      "Distribution of resume/job similarity scores (0-100).",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	},
)

// ── Account metrics ──────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "success", "duplicate_username", "duplicate_email", "password_too_long" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Job search metrics ───────────────────────────────────────────────────────

// JobCacheLookupsTotal counts job-search cache lookups.
// Label:
//   - result: "hit" or "miss"
var JobCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_cache_lookups_total",
		Help:      "Total number of job-search cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// JobSearchErrorsTotal counts failed upstream job searches.
var JobSearchErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_search_errors_total",
		Help:      "Total number of job searches that failed upstream.",
	},
)
