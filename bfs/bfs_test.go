package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/reconstruct"
	"github.com/katalvlaran/lvroute/search"
	"github.com/katalvlaran/lvroute/segment"
)

func seg(id string, a, b orb.Point, cost float64, dir segment.Direction) segment.Segment {
	return segment.Segment{ID: id, Geometry: orb.LineString{a, b}, Cost: cost, Direction: dir}
}

// line builds 0 <-> 1 -> 2 <-> 3 along the x axis, plus an isolated 8 <-> 9.
func line(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build([]segment.Segment{
		seg("a", orb.Point{0, 0}, orb.Point{1, 0}, 1, segment.Both),
		seg("b", orb.Point{1, 0}, orb.Point{2, 0}, 1, segment.Forward),
		seg("c", orb.Point{2, 0}, orb.Point{3, 0}, 1, segment.Both),
		seg("d", orb.Point{8, 0}, orb.Point{9, 0}, 1, segment.Both),
	}, core.WithPrecision(0))
	require.NoError(t, err)

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "0,0")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := line(t)
	_, err = bfs.BFS(g, "5,5")
	require.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, "0,0", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_FollowsDirection(t *testing.T) {
	g := line(t)

	res, err := bfs.BFS(g, "0,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0", "2,0", "3,0"}, res.Order)
	assert.Equal(t, 3, res.Depth["3,0"])
	assert.False(t, res.Reached("8,0"))

	back, err := bfs.BFS(g, "3,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"3,0", "2,0"}, back.Order, "one-way b blocks 2 -> 1")

	path, err := res.PathTo("3,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0", "2,0", "3,0"}, path)

	_, err = res.PathTo("9,0")
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := line(t)

	res, err := bfs.BFS(g, "0,0", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0"}, res.Order)

	res, err = bfs.BFS(g, "0,0", bfs.WithFilterEdge(func(e *core.Edge) bool { return e.ID != "b" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0"}, res.Order)
}

func TestBFS_HookAndCancel(t *testing.T) {
	g := line(t)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "0,0", bfs.WithOnVisit(func(key string, _ int) error {
		if key == "2,0" {
			return stop
		}

		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "0,0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFS_AgreesWithSearchOnReachability checks that Dijkstra finds a route
// exactly when BFS reaches the destination, on a random sparse one-way grid.
func TestBFS_AgreesWithSearchOnReachability(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var segs []segment.Segment
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			p := orb.Point{float64(i), float64(j)}
			if rng.Intn(3) > 0 && i+1 < 6 {
				segs = append(segs, seg(fmt.Sprint(len(segs)), p, orb.Point{float64(i + 1), float64(j)}, 1+rng.Float64(), segment.Forward))
			}
			if rng.Intn(3) > 0 && j+1 < 6 {
				segs = append(segs, seg(fmt.Sprint(len(segs)), orb.Point{float64(i), float64(j + 1)}, p, 1+rng.Float64(), segment.Forward))
			}
		}
	}
	g, err := core.Build(segs, core.WithPrecision(0))
	require.NoError(t, err)

	engine := search.New()
	for _, from := range g.Nodes() {
		res, err := bfs.BFS(g, from)
		require.NoError(t, err)
		for _, to := range g.Nodes() {
			_, err := engine.Find(g, from, to)
			if res.Reached(to) {
				require.NoError(t, err, "%s -> %s", from, to)

				hops, err := res.PathTo(to)
				require.NoError(t, err)
				_, err = reconstruct.Reconstruct(hops, g)
				require.NoError(t, err, "BFS path is a valid edge sequence")
			} else {
				require.ErrorIs(t, err, search.ErrNoPathFound, "%s -> %s", from, to)
			}
		}
	}
}
