// Package core_test verifies that a built Graph can be read from many goroutines.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/segment"
)

// TestConcurrentReads runs readers in parallel over one frozen graph;
// run with -race to catch any hidden mutation.
func TestConcurrentReads(t *testing.T) {
	const n = 100 // chain length
	segs := make([]segment.Segment, 0, n)
	for i := 0; i < n; i++ {
		segs = append(segs, segment.Segment{
			ID:       fmt.Sprintf("s%d", i),
			Geometry: orb.LineString{{float64(i), 0}, {float64(i + 1), 0}},
			Cost:     1,
		})
	}
	g, err := core.Build(segs)
	require.NoError(t, err)

	var wg sync.WaitGroup
	const readers = 32
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for _, k := range g.Nodes() {
				for _, e := range g.Neighbors(k) {
					assert.True(t, g.HasNode(e.To))
				}
			}
			assert.Len(t, g.Edges(), 2*n)
		}()
	}
	wg.Wait()
}
