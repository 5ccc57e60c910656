package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/metrics"
	"github.com/katalvlaran/lvroute/reconstruct"
	"github.com/katalvlaran/lvroute/search"
)

// Sentinel errors for Runner construction.
var (
	// ErrNoEngines indicates NewRunner received no engines.
	ErrNoEngines = errors.New("validate: at least one engine is required")

	// ErrBadEngine indicates an engine with an empty name, nil graph, nil finder or a duplicate name.
	ErrBadEngine = errors.New("validate: malformed engine")
)

// Engine is one independently configured search setup. Engines of one Runner
// are expected to run over cost-equivalent graphs (for example a raw graph and
// its deduplicated copy).
type Engine struct {
	Name   string
	Graph  *core.Graph
	Finder search.Finder
}

// Query is one origin/destination pair, as node keys.
type Query struct {
	Origin      string
	Destination string
}

// Finding is a query whose Report is not Consistent.
type Finding struct {
	Index  int
	Query  Query
	Report Report
}

// Summary aggregates a Run.
type Summary struct {
	// Queries is the number of queries evaluated.
	Queries int

	// Findings lists inconsistent queries in query order.
	Findings []Finding

	// ToleranceExceeded, NoPath and Failed count queries by finding kind;
	// one query may count under several kinds.
	ToleranceExceeded int
	NoPath            int
	Failed            int
}

// Errors returns the number of queries with at least one finding.
func (s *Summary) Errors() int { return len(s.Findings) }

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTolerance sets the agreement threshold. Panics on a negative or non-finite value.
func WithTolerance(tol float64) RunnerOption {
	if err := CheckTolerance(tol); err != nil {
		panic(err.Error())
	}

	return func(r *Runner) { r.tolerance = tol }
}

// WithWorkers bounds the number of queries evaluated concurrently.
// n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		r.workers = n
	}
}

// WithLogger routes findings and progress to l. Default discards.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Runner cross-validates engines over a batch of queries.
// Engine graphs must not be mutated while Run is in progress.
type Runner struct {
	engines   []Engine
	tolerance float64
	workers   int
	logger    *slog.Logger
}

// NewRunner validates the engine set and applies options.
func NewRunner(engines []Engine, opts ...RunnerOption) (*Runner, error) {
	if len(engines) == 0 {
		return nil, ErrNoEngines
	}
	seen := make(map[string]bool, len(engines))
	for i, e := range engines {
		if e.Name == "" || e.Graph == nil || e.Finder == nil || seen[e.Name] {
			return nil, fmt.Errorf("%w: index %d name=%q", ErrBadEngine, i, e.Name)
		}
		seen[e.Name] = true
	}

	r := &Runner{
		engines:   append([]Engine(nil), engines...),
		tolerance: DefaultTolerance,
		workers:   runtime.GOMAXPROCS(0),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	var opt RunnerOption
	for _, opt = range opts {
		opt(r)
	}

	return r, nil
}

// Check evaluates one query on every engine and validates the results.
//
// Implementation:
//   - Stage 1: ask each engine's Finder for a node sequence on its own graph.
//   - Stage 2: reconstruct each sequence against the same graph for the exact cost.
//   - Stage 3: Validate the collected results.
//
// Reconstruction failures are kept as that engine's error, never dropped.
func (r *Runner) Check(q Query) Report {
	results := make([]Result, len(r.engines))
	for i, e := range r.engines {
		results[i] = r.run(e, q)
	}
	// Cannot fail: engines are non-empty and tolerance was checked by the option.
	rep, _ := Validate(results, r.tolerance)

	return rep
}

func (r *Runner) run(e Engine, q Query) Result {
	res := Result{Engine: e.Name}
	seq, err := e.Finder.Find(e.Graph, q.Origin, q.Destination)
	if err != nil {
		res.Err = err
		if errors.Is(err, search.ErrNoPathFound) {
			metrics.EngineQueries.WithLabelValues(e.Name, metrics.OutcomeNoPath).Inc()
		} else {
			metrics.EngineQueries.WithLabelValues(e.Name, metrics.OutcomeError).Inc()
		}

		return res
	}

	p, err := reconstruct.Reconstruct(seq, e.Graph)
	if err != nil {
		res.Err = err
		metrics.EngineQueries.WithLabelValues(e.Name, metrics.OutcomeError).Inc()

		return res
	}
	res.TotalCost = p.TotalCost
	metrics.EngineQueries.WithLabelValues(e.Name, metrics.OutcomeOK).Inc()

	return res
}

// Run checks every query, at most workers at a time, and returns all findings.
//
// Findings never abort the run. Cancelling ctx stops scheduling new queries;
// Run then returns ctx's error and no Summary.
func (r *Runner) Run(ctx context.Context, queries []Query) (*Summary, error) {
	reports := make([]Report, len(queries))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for i, q := range queries {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			reports[i] = r.Check(q)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sum := &Summary{Queries: len(queries)}
	for i, rep := range reports {
		metrics.ValidationQueries.Inc()
		if rep.Consistent() {
			continue
		}
		sum.Findings = append(sum.Findings, Finding{Index: i, Query: queries[i], Report: rep})
		r.count(sum, rep)
		r.logger.Warn("route mismatch",
			"index", i,
			"origin", queries[i].Origin,
			"destination", queries[i].Destination,
			"spread", rep.Spread,
			"min", rep.Min,
			"max", rep.Max,
			"no_path", rep.NoPath,
			"failed", len(rep.Failed),
		)
	}
	r.logger.Info("validation finished",
		"queries", sum.Queries,
		"errors", sum.Errors(),
		"tolerance_exceeded", sum.ToleranceExceeded,
		"no_path", sum.NoPath,
		"failed", sum.Failed,
	)

	return sum, nil
}

func (r *Runner) count(sum *Summary, rep Report) {
	if !rep.Agree {
		sum.ToleranceExceeded++
		metrics.ValidationFindings.WithLabelValues(metrics.KindToleranceExceeded).Inc()
	}
	if len(rep.NoPath) > 0 {
		sum.NoPath++
		metrics.ValidationFindings.WithLabelValues(metrics.KindNoPath).Inc()
	}
	if len(rep.Failed) > 0 {
		sum.Failed++
		metrics.ValidationFindings.WithLabelValues(metrics.KindFailed).Inc()
	}
}
