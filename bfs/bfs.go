package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// queueItem pairs a node key with its BFS depth.
type queueItem struct {
	key   string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	head  int
	res   *BFSResult
}

// BFS runs breadth-first search on g from start along directed edges.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ctx errors, or any OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks key seen at depth d and records its parent.
func (w *walker) enqueue(key string, d int, parent string) {
	w.res.Depth[key] = d
	if parent != "" {
		w.res.Parent[key] = parent
	}
	w.queue = append(w.queue, queueItem{key: key, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.key)
		if err := w.opts.OnVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, e := range w.graph.Neighbors(item.key) {
			if !w.opts.FilterEdge(e) {
				continue
			}
			if _, seen := w.res.Depth[e.To]; !seen {
				w.enqueue(e.To, next, item.key)
			}
		}
	}

	return nil
}
