package builder_test

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dedup"
	"github.com/katalvlaran/lvroute/reconstruct"
	"github.com/katalvlaran/lvroute/search"
	"github.com/katalvlaran/lvroute/segment"
)

func TestGrid_Plain(t *testing.T) {
	segs, err := builder.Grid(2, 3, builder.WithOrigin(orb.Point{10, 50}), builder.WithSpacing(0.5))
	require.NoError(t, err)
	require.Len(t, segs, 7, "2*(3-1) east + (2-1)*3 north")

	ids := make([]string, len(segs))
	for i, s := range segs {
		ids[i] = s.ID
		assert.Equal(t, 1.0, s.Cost)
		assert.Equal(t, segment.Both, s.Direction)
		require.NoError(t, s.Validate())
	}
	assert.Equal(t, []string{"0,0/e", "0,0/n", "0,1/e", "0,1/n", "0,2/n", "1,0/e", "1,1/e"}, ids)
	assert.Equal(t, orb.LineString{{10, 50}, {10.25, 50}, {10.5, 50}}, segs[0].Geometry)

	g, err := core.Build(segs)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 14, g.EdgeCount())
}

func TestGrid_Errors(t *testing.T) {
	_, err := builder.Grid(1, 1)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Grid(0, 5)
	require.ErrorIs(t, err, builder.ErrTooSmall)

	_, err = builder.Grid(3, 3, builder.WithOneWay(0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Grid(3, 3, builder.WithCostRange(1, 2))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithCostRange(2, 1) })
	assert.Panics(t, func() { builder.WithCostRange(0, 1) })
	assert.Panics(t, func() { builder.WithOneWay(1.5) })
	assert.Panics(t, func() { builder.WithDuplicates(0.5, -0.1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func messy(seed int64) []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithCostRange(1, 5),
		builder.WithOneWay(0.25),
		builder.WithDuplicates(0.4, 0.5),
		builder.WithOverrides(0.2),
	}
}

func TestGrid_Deterministic(t *testing.T) {
	a, err := builder.Grid(5, 5, messy(3)...)
	require.NoError(t, err)
	b, err := builder.Grid(5, 5, messy(3)...)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.Grid(5, 5, builder.WithRand(rand.New(rand.NewSource(3))), builder.WithCostRange(1, 5),
		builder.WithOneWay(0.25), builder.WithDuplicates(0.4, 0.5), builder.WithOverrides(0.2))
	require.NoError(t, err)
	assert.Equal(t, a, c, "WithRand and WithSeed are interchangeable")
}

func TestGrid_Irregularities(t *testing.T) {
	segs, err := builder.Grid(8, 8, messy(21)...)
	require.NoError(t, err)

	var dups, reversed, oneWay, overrides int
	for _, s := range segs {
		require.NoError(t, s.Validate())
		if len(s.ID) > 2 && s.ID[len(s.ID)-2:] == "+1" {
			dups++
			if s.Geometry[0].Lon() > s.Geometry[2].Lon() || s.Geometry[0].Lat() > s.Geometry[2].Lat() {
				reversed++
			}
		}
		if s.Direction != segment.Both {
			oneWay++
		}
		if s.ForwardCost > 0 || s.BackwardCost > 0 {
			overrides++
		}
	}
	assert.Positive(t, dups)
	assert.Positive(t, reversed)
	assert.Less(t, reversed, dups)
	assert.Positive(t, oneWay)
	assert.Positive(t, overrides)
}

// TestGrid_DedupPreservesCosts checks, on messy generated networks, that the
// per-direction resolver never changes a shortest-path cost.
func TestGrid_DedupPreservesCosts(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		segs, err := builder.Grid(6, 6, messy(seed)...)
		require.NoError(t, err)

		raw, err := core.Build(segs)
		require.NoError(t, err)
		res, err := dedup.Resolve(segs)
		require.NoError(t, err)
		deduped, err := core.Build(res.Segments)
		require.NoError(t, err)
		require.Less(t, deduped.EdgeCount(), raw.EdgeCount())

		engine := search.New()
		for _, from := range raw.Nodes() {
			for _, to := range raw.Nodes() {
				a, errA := engine.Find(raw, from, to)
				b, errB := engine.Find(deduped, from, to)
				if errA != nil {
					require.ErrorIs(t, errA, search.ErrNoPathFound)
					require.ErrorIs(t, errB, search.ErrNoPathFound, "seed %d %s -> %s", seed, from, to)

					continue
				}
				require.NoError(t, errB, "seed %d %s -> %s", seed, from, to)

				pa, err := reconstruct.Reconstruct(a, raw)
				require.NoError(t, err)
				pb, err := reconstruct.Reconstruct(b, deduped)
				require.NoError(t, err)
				require.InDelta(t, pa.TotalCost, pb.TotalCost, 1e-9, "seed %d %s -> %s", seed, from, to)
			}
		}
	}
}
