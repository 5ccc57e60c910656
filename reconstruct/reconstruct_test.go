package reconstruct_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/reconstruct"
	"github.com/katalvlaran/lvroute/segment"
)

var (
	pA = orb.Point{0, 0}
	pB = orb.Point{1, 0}
	pC = orb.Point{2, 0}
)

func build(t *testing.T, segs ...segment.Segment) *core.Graph {
	t.Helper()
	g, err := core.Build(segs)
	require.NoError(t, err)

	return g
}

func seg(id string, cost float64, dir segment.Direction, pts ...orb.Point) segment.Segment {
	return segment.Segment{ID: id, Geometry: orb.LineString(pts), Cost: cost, Direction: dir}
}

func TestReconstruct_ReverseOrderAndCost(t *testing.T) {
	g := build(t,
		seg("x", 2, segment.Forward, pA, pB),
		seg("y", 4, segment.Forward, pB, pC),
	)
	p, err := reconstruct.Reconstruct([]string{g.Key(pA), g.Key(pB), g.Key(pC)}, g)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, p.EdgeIDs)
	assert.Equal(t, []string{"x", "y"}, p.Forward())
	assert.Equal(t, 6.0, p.TotalCost)
	require.Len(t, p.Edges, 2)
	assert.Equal(t, "y", p.Edges[0].ID)
}

func TestReconstruct_BidirectionalBackwardWalk(t *testing.T) {
	g := build(t,
		seg("x", 2, segment.Both, pA, pB),
		seg("y", 4, segment.Both, pB, pC),
	)
	p, err := reconstruct.Reconstruct([]string{g.Key(pC), g.Key(pB), g.Key(pA)}, g)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, p.EdgeIDs)
	assert.Equal(t, 6.0, p.TotalCost)
	assert.True(t, p.Edges[0].Reversed)
}

func TestReconstruct_ParallelEdgesPickCheapest(t *testing.T) {
	g := build(t,
		seg("slow", 5, segment.Both, pA, pB),
		seg("fast", 3, segment.Both, pA, orb.Point{0.5, 0.5}, pB),
		seg("also-fast", 3, segment.Forward, pA, pB),
	)
	p, err := reconstruct.Reconstruct([]string{g.Key(pA), g.Key(pB)}, g)
	require.NoError(t, err)
	assert.Equal(t, []string{"fast"}, p.EdgeIDs, "cheapest, first on ties")
	assert.Equal(t, 3.0, p.TotalCost)
}

func TestReconstruct_DirectionRespected(t *testing.T) {
	g := build(t, seg("oneway", 1, segment.Forward, pA, pB))
	_, err := reconstruct.Reconstruct([]string{g.Key(pB), g.Key(pA)}, g)
	require.ErrorIs(t, err, reconstruct.ErrDisconnectedPath)
}

func TestReconstruct_DisconnectedIffMissingEdge(t *testing.T) {
	g := build(t,
		seg("x", 1, segment.Forward, pA, pB),
		seg("y", 1, segment.Forward, pB, pC),
	)
	_, err := reconstruct.Reconstruct([]string{g.Key(pA), g.Key(pC)}, g)
	require.ErrorIs(t, err, reconstruct.ErrDisconnectedPath)

	_, err = reconstruct.Reconstruct([]string{g.Key(pA), g.Key(pB), "unknown"}, g)
	require.ErrorIs(t, err, reconstruct.ErrDisconnectedPath)

	_, err = reconstruct.Reconstruct([]string{g.Key(pA), g.Key(pB), g.Key(pC)}, g)
	require.NoError(t, err)
}

func TestReconstruct_ShortSequences(t *testing.T) {
	g := build(t, seg("x", 1, segment.Both, pA, pB))
	for _, nodes := range [][]string{nil, {g.Key(pA)}} {
		p, err := reconstruct.Reconstruct(nodes, g)
		require.NoError(t, err)
		assert.Empty(t, p.EdgeIDs)
		assert.Zero(t, p.TotalCost)
	}

	_, err := reconstruct.Reconstruct([]string{"a", "b"}, nil)
	require.ErrorIs(t, err, reconstruct.ErrNilGraph)
}

// TestReconstruct_ExactSumOverRandomChain walks a random chain and checks the
// returned cost equals the same left-to-right float sum.
func TestReconstruct_ExactSumOverRandomChain(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 200
	segs := make([]segment.Segment, n)
	nodes := make([]orb.Point, n+1)
	for i := 0; i <= n; i++ {
		nodes[i] = orb.Point{float64(i) * 0.001, 0}
	}
	var want float64
	wantIDs := make([]string, n)
	for i := 0; i < n; i++ {
		c := 0.1 + rng.Float64()
		segs[i] = seg(fmt.Sprintf("s%d", i), c, segment.Both, nodes[i], nodes[i+1])
		want += c
		wantIDs[n-1-i] = segs[i].ID
	}
	g := build(t, segs...)

	keys := make([]string, len(nodes))
	for i, p := range nodes {
		keys[i] = g.Key(p)
	}
	p, err := reconstruct.Reconstruct(keys, g)
	require.NoError(t, err)
	assert.Equal(t, want, p.TotalCost)
	assert.Equal(t, wantIDs, p.EdgeIDs)
}
