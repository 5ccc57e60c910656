package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start key is not a node of the graph.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a node outside the BFS tree.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(key string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	FilterEdge func(e *core.Edge) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering and a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		FilterEdge: func(*core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(key string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether key was visited.
func (r *BFSResult) Reached(key string) bool {
	_, ok := r.Depth[key]

	return ok
}

// PathTo returns the fewest-hop node sequence from the start to dest,
// suitable for reconstruct.Reconstruct.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}

	path := make([]string, d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
