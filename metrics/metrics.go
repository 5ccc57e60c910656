// Package metrics holds the Prometheus collectors updated by lvroute.
// They are registered on the default registry at init via promauto; expose them
// with promhttp.Handler() if the host process serves /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Finding kinds used as the "kind" label.
const (
	KindToleranceExceeded = "tolerance_exceeded"
	KindNoPath            = "no_path"
	KindFailed            = "failed"
)

// Engine outcomes used as the "outcome" label.
const (
	OutcomeOK     = "ok"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

var (
	// ValidationQueries counts origin/destination pairs checked by validate.Runner.
	ValidationQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lvroute_validation_queries_total",
			Help: "Total number of origin/destination queries cross-validated",
		},
	)

	// ValidationFindings counts discrepancy findings, labeled by kind.
	ValidationFindings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvroute_validation_findings_total",
			Help: "Total number of cross-validation findings",
		},
		[]string{"kind"},
	)

	// EngineQueries counts per-engine query outcomes.
	EngineQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvroute_engine_queries_total",
			Help: "Total number of search engine queries by outcome",
		},
		[]string{"engine", "outcome"},
	)
)
