package search

import (
	"errors"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by Finder implementations in this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Find.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrEmptyEndpoint indicates an empty origin or destination key.
	ErrEmptyEndpoint = errors.New("search: origin or destination is empty")

	// ErrNodeNotFound indicates that origin or destination is not in the graph.
	ErrNodeNotFound = errors.New("search: node not found in graph")

	// ErrNoPathFound indicates that destination cannot be reached from origin.
	ErrNoPathFound = errors.New("search: no path found")

	// ErrBadMaxCost indicates WithMaxCost received a non-positive or NaN value.
	ErrBadMaxCost = errors.New("search: MaxCost must be positive")

	// ErrNilHeuristic indicates WithHeuristic received nil.
	ErrNilHeuristic = errors.New("search: heuristic is nil")
)

// Finder finds a route as an ordered node-key sequence, origin first.
type Finder interface {
	Find(g *core.Graph, origin, destination string) ([]string, error)
}

// FinderFunc adapts a function to Finder.
type FinderFunc func(g *core.Graph, origin, destination string) ([]string, error)

// Find calls f.
func (f FinderFunc) Find(g *core.Graph, origin, destination string) ([]string, error) {
	return f(g, origin, destination)
}

// Heuristic estimates the remaining cost between two coordinates.
// It must never overestimate.
type Heuristic func(from, to orb.Point) float64

// Options configures Engine and Gonum.
//
// Heuristic – nil means plain Dijkstra.
// MaxCost   – routes costing more are reported as ErrNoPathFound. Default +Inf.
type Options struct {
	Heuristic Heuristic
	MaxCost   float64
}

// Option represents a functional option for Engine and Gonum.
type Option func(*Options)

// WithHeuristic turns the search into A* guided by h.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic(ErrNilHeuristic.Error())
	}

	return func(o *Options) { o.Heuristic = h }
}

// WithMaxCost bounds the explored cost.
func WithMaxCost(c float64) Option {
	if !(c > 0) {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options) { o.MaxCost = c }
}

// DefaultOptions returns plain Dijkstra without a cost cap.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	return o
}

// checkEndpoints validates the common Find preconditions in a fixed order.
func checkEndpoints(g *core.Graph, origin, destination string) error {
	if g == nil {
		return ErrNilGraph
	}
	if origin == "" || destination == "" {
		return ErrEmptyEndpoint
	}
	if !g.HasNode(origin) {
		return wrapNode(ErrNodeNotFound, "origin", origin)
	}
	if !g.HasNode(destination) {
		return wrapNode(ErrNodeNotFound, "destination", destination)
	}

	return nil
}
