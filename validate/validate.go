// Package validate cross-checks independent shortest-path results for the same
// origin/destination query and reports numeric disagreement.
//
// Validate is the pure check over one query's results:
//
//	spread = max(TotalCost) - min(TotalCost)   over results without error
//	agree  = spread <= tolerance
//
// Results carrying an error are never folded into the spread: an error wrapping
// search.ErrNoPathFound is listed in Report.NoPath, any other error (for example
// reconstruct.ErrDisconnectedPath) in Report.Failed.
//
// Runner drives many queries through several engines in parallel and collects
// every finding; it never stops at the first mismatch.
package validate

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvroute/search"
)

// Sentinel errors and finding kinds.
var (
	// ErrNoResults indicates Validate was called with an empty result set.
	ErrNoResults = errors.New("validate: no results")

	// ErrBadTolerance indicates a negative, NaN or infinite tolerance.
	ErrBadTolerance = errors.New("validate: tolerance must be non-negative and finite")

	// ErrToleranceExceeded is the finding for a spread beyond tolerance.
	ErrToleranceExceeded = errors.New("validate: cost spread exceeds tolerance")

	// ErrNoPathFound is the finding for an engine that reported no route.
	ErrNoPathFound = search.ErrNoPathFound

	// ErrNonFiniteCost marks a result that claims success with a NaN or infinite cost.
	ErrNonFiniteCost = errors.New("validate: result cost is not finite")
)

// DefaultTolerance matches the historical cross-check threshold.
const DefaultTolerance = 1e-6

// Result is one engine's answer to one query.
type Result struct {
	Engine    string
	TotalCost float64
	Err       error
}

// Report is the outcome of Validate.
type Report struct {
	// Agree is true iff Spread <= tolerance.
	Agree bool

	// Spread is Max - Min over successful results; 0 when fewer than two.
	Spread float64

	// Min and Max are the extreme successful costs; both 0 when none succeeded.
	Min, Max float64

	// Compared is the number of successful results that entered the spread.
	Compared int

	// Tolerance echoes the threshold used.
	Tolerance float64

	// NoPath lists engines that reported no route, in input order.
	NoPath []string

	// Failed maps engines to errors other than no-route.
	Failed map[string]error
}

// Consistent reports whether the query is free of findings: costs agree, no
// engine failed, and either every engine or none found a route.
func (r Report) Consistent() bool {
	if !r.Agree || len(r.Failed) > 0 {
		return false
	}

	return len(r.NoPath) == 0 || r.Compared == 0
}

// Findings lists the report's findings as errors, tolerance first, then
// no-route engines, then failures. Use errors.Is to classify them.
func (r Report) Findings() []error {
	var out []error
	if !r.Agree {
		out = append(out, fmt.Errorf("%w: spread=%g tolerance=%g min=%g max=%g",
			ErrToleranceExceeded, r.Spread, r.Tolerance, r.Min, r.Max))
	}
	for _, name := range r.NoPath {
		out = append(out, fmt.Errorf("%w: engine %s", ErrNoPathFound, name))
	}
	for _, name := range sortedKeys(r.Failed) {
		out = append(out, fmt.Errorf("engine %s: %w", name, r.Failed[name]))
	}

	return out
}

// Validate compares the results of one query.
//
// Errors:
//   - ErrNoResults for an empty slice.
//   - ErrBadTolerance for a negative, NaN or infinite tolerance.
//
// A disagreement is not an error: it is reported through Report.Agree.
//
// Complexity: O(n).
func Validate(results []Result, tolerance float64) (Report, error) {
	if len(results) == 0 {
		return Report{}, ErrNoResults
	}
	if err := CheckTolerance(tolerance); err != nil {
		return Report{}, err
	}

	rep := Report{Tolerance: tolerance}
	costs := make([]float64, 0, len(results))
	for _, res := range results {
		switch {
		case errors.Is(res.Err, search.ErrNoPathFound):
			rep.NoPath = append(rep.NoPath, res.Engine)
		case res.Err != nil:
			rep.fail(res.Engine, res.Err)
		case math.IsNaN(res.TotalCost) || math.IsInf(res.TotalCost, 0):
			rep.fail(res.Engine, fmt.Errorf("%w: %v", ErrNonFiniteCost, res.TotalCost))
		default:
			costs = append(costs, res.TotalCost)
		}
	}

	rep.Compared = len(costs)
	if len(costs) > 0 {
		rep.Min = floats.Min(costs)
		rep.Max = floats.Max(costs)
		rep.Spread = rep.Max - rep.Min
	}
	rep.Agree = rep.Spread <= tolerance

	return rep, nil
}

// CheckTolerance returns ErrBadTolerance unless tol is finite and non-negative.
func CheckTolerance(tol float64) error {
	if !(tol >= 0) || math.IsInf(tol, 1) {
		return fmt.Errorf("%w: %v", ErrBadTolerance, tol)
	}

	return nil
}

func (r *Report) fail(engine string, err error) {
	if r.Failed == nil {
		r.Failed = make(map[string]error)
	}
	r.Failed[engine] = err
}

func sortedKeys(m map[string]error) []string {
	return slices.Sorted(maps.Keys(m))
}
