package validate_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dedup"
	"github.com/katalvlaran/lvroute/reconstruct"
	"github.com/katalvlaran/lvroute/search"
	"github.com/katalvlaran/lvroute/segment"
	"github.com/katalvlaran/lvroute/validate"
)

type RunnerSuite struct {
	suite.Suite
	raw     *core.Graph
	deduped *core.Graph
	doubled *core.Graph
	queries []validate.Query
}

// SetupSuite builds a small street network with parallel segments and one-ways,
// plus its deduplicated twin, and draws random queries over it.
func (s *RunnerSuite) SetupSuite() {
	rng := rand.New(rand.NewSource(5))
	pt := func(i, j int) orb.Point { return orb.Point{float64(i) * 0.01, float64(j) * 0.01} }
	var segs []segment.Segment
	add := func(a, b orb.Point, dir segment.Direction) {
		segs = append(segs, segment.Segment{
			ID:        fmt.Sprintf("s%d", len(segs)),
			Geometry:  orb.LineString{a, b},
			Cost:      1 + rng.Float64()*4,
			Direction: dir,
		})
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if i+1 < 8 {
				add(pt(i, j), pt(i+1, j), segment.Both)
				if (i+j)%5 == 0 {
					add(pt(i, j), pt(i+1, j), segment.Both) // parallel
				}
			}
			if j+1 < 8 {
				dir := segment.Both
				if (i*j)%7 == 3 {
					dir = segment.Forward
				}
				add(pt(i, j), pt(i, j+1), dir)
			}
		}
	}

	var err error
	s.raw, err = core.Build(segs)
	s.Require().NoError(err)

	res, err := dedup.Resolve(segs)
	s.Require().NoError(err)
	s.deduped, err = core.Build(res.Segments)
	s.Require().NoError(err)

	scaled := make([]segment.Segment, len(segs))
	for i, sg := range segs {
		sg.Cost *= 2
		scaled[i] = sg
	}
	s.doubled, err = core.Build(scaled)
	s.Require().NoError(err)

	keys := s.raw.Nodes()
	for q := 0; q < 100; q++ {
		s.queries = append(s.queries, validate.Query{
			Origin:      keys[rng.Intn(len(keys))],
			Destination: keys[rng.Intn(len(keys))],
		})
	}
}

func (s *RunnerSuite) engines() []validate.Engine {
	return []validate.Engine{
		{Name: "dijkstra-raw", Graph: s.raw, Finder: search.New()},
		{Name: "dijkstra-dedup", Graph: s.deduped, Finder: search.New()},
		{Name: "gonum-dedup", Graph: s.deduped, Finder: search.NewGonum()},
	}
}

func (s *RunnerSuite) TestEquivalentGraphsAgree() {
	require := require.New(s.T())
	var buf bytes.Buffer
	r, err := validate.NewRunner(s.engines(),
		validate.WithWorkers(4),
		validate.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))),
	)
	require.NoError(err)

	sum, err := r.Run(context.Background(), s.queries)
	require.NoError(err)
	require.Equal(len(s.queries), sum.Queries)
	require.Zero(sum.Errors(), "findings: %+v", sum.Findings)
	require.Contains(buf.String(), "validation finished")
}

func (s *RunnerSuite) TestDivergentEngineIsReportedForEveryQuery() {
	require := require.New(s.T())

	// Same topology with every cost doubled: any query that moves costs strictly more.
	base := search.New()
	engines := append(s.engines(), validate.Engine{Name: "doubled", Graph: s.doubled, Finder: search.New()})

	r, err := validate.NewRunner(engines, validate.WithWorkers(3))
	require.NoError(err)
	sum, err := r.Run(context.Background(), s.queries)
	require.NoError(err)

	moving := 0
	for _, q := range s.queries {
		if seq, err := base.Find(s.raw, q.Origin, q.Destination); err == nil && len(seq) > 1 {
			moving++
		}
	}
	require.Positive(moving)
	require.Equal(moving, sum.ToleranceExceeded)
	require.Equal(moving, sum.Errors())
	for i := 1; i < len(sum.Findings); i++ {
		require.Less(sum.Findings[i-1].Index, sum.Findings[i].Index, "findings in query order")
	}
}

func (s *RunnerSuite) TestBrokenSequenceIsAFailureNotSwallowed() {
	require := require.New(s.T())
	bogus := search.FinderFunc(func(_ *core.Graph, o, d string) ([]string, error) {
		return []string{o, "nowhere", d}, nil
	})
	r, err := validate.NewRunner([]validate.Engine{
		{Name: "dijkstra", Graph: s.raw, Finder: search.New()},
		{Name: "bogus", Graph: s.raw, Finder: bogus},
	})
	require.NoError(err)

	q := validate.Query{Origin: s.queries[0].Origin, Destination: s.queries[0].Destination}
	rep := r.Check(q)
	require.Contains(rep.Failed, "bogus")
	require.ErrorIs(rep.Failed["bogus"], reconstruct.ErrDisconnectedPath)
	require.False(rep.Consistent())
}

func (s *RunnerSuite) TestCancelledContext() {
	r, err := validate.NewRunner(s.engines())
	s.Require().NoError(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, s.queries)
	s.Require().ErrorIs(err, context.Canceled)
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestNewRunner_Validation(t *testing.T) {
	_, err := validate.NewRunner(nil)
	require.ErrorIs(t, err, validate.ErrNoEngines)

	g, err := core.Build([]segment.Segment{{ID: "x", Geometry: orb.LineString{{0, 0}, {1, 1}}, Cost: 1}})
	require.NoError(t, err)

	bad := [][]validate.Engine{
		{{Name: "", Graph: g, Finder: search.New()}},
		{{Name: "a", Graph: nil, Finder: search.New()}},
		{{Name: "a", Graph: g, Finder: nil}},
		{{Name: "a", Graph: g, Finder: search.New()}, {Name: "a", Graph: g, Finder: search.New()}},
	}
	for i, engines := range bad {
		_, err = validate.NewRunner(engines)
		assert.ErrorIs(t, err, validate.ErrBadEngine, "case %d", i)
	}

	assert.Panics(t, func() { validate.WithTolerance(-1) })
}
