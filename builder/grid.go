// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// grid.go - Grid(rows, cols) street network generator.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooSmall).
//   • Intersection (r,c) sits at origin + (c*spacing, r*spacing) in lon/lat.
//   • Every street is a 3-point LineString (start, midpoint, end).
//   • Stochastic options need WithSeed/WithRand (else ErrNeedRandSource).
//   • A reversed duplicate swaps geometry order, Direction and overrides, so it
//     describes the same road as the street it copies.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvroute/segment"
)

const (
	methodGrid  = "Grid"
	minGridDim  = 1
	minGridSize = 2
)

// Grid returns the segments of a rows×cols street grid.
func Grid(rows, cols int, opts ...BuilderOption) ([]segment.Segment, error) {
	if rows < minGridDim || cols < minGridDim || rows*cols < minGridSize {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && cfg.stochastic() {
		return nil, fmt.Errorf("%s: %w", methodGrid, ErrNeedRandSource)
	}

	g := gridGen{cfg: cfg, out: make([]segment.Segment, 0, 2*rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				g.street(fmt.Sprintf("%d,%d/e", r, c), g.at(r, c), g.at(r, c+1))
			}
			if r+1 < rows {
				g.street(fmt.Sprintf("%d,%d/n", r, c), g.at(r, c), g.at(r+1, c))
			}
		}
	}

	return g.out, nil
}

type gridGen struct {
	cfg builderConfig
	out []segment.Segment
}

func (g *gridGen) at(r, c int) orb.Point {
	return orb.Point{
		g.cfg.origin.Lon() + float64(c)*g.cfg.spacing,
		g.cfg.origin.Lat() + float64(r)*g.cfg.spacing,
	}
}

func (g *gridGen) street(id string, a, b orb.Point) {
	s := g.segment(id, a, b)
	g.out = append(g.out, s)

	if !g.roll(g.cfg.duplicate) {
		return
	}
	dup := g.segment(id+"+1", a, b)
	dup.Direction = s.Direction
	if g.roll(g.cfg.reversed) {
		dup = reverse(dup)
	}
	g.out = append(g.out, dup)
}

func (g *gridGen) segment(id string, a, b orb.Point) segment.Segment {
	mid := orb.Point{(a.Lon() + b.Lon()) / 2, (a.Lat() + b.Lat()) / 2}
	s := segment.Segment{
		ID:       id,
		Geometry: orb.LineString{a, mid, b},
		Cost:     g.cost(),
	}
	if g.roll(g.cfg.oneWay) {
		s.Direction = segment.Forward
		if g.coin() {
			s.Direction = segment.Backward
		}
	}
	if g.roll(g.cfg.override) {
		extra := s.Cost * (1 + g.cfg.rng.Float64())
		if g.coin() {
			s.ForwardCost = extra
		} else {
			s.BackwardCost = extra
		}
	}

	return s
}

func (g *gridGen) cost() float64 {
	if g.cfg.maxCost == g.cfg.minCost {
		return g.cfg.minCost
	}

	return g.cfg.minCost + g.cfg.rng.Float64()*(g.cfg.maxCost-g.cfg.minCost)
}

// roll reports an event of probability p. Never touches the RNG when p == 0.
func (g *gridGen) roll(p float64) bool {
	return p > 0 && g.cfg.rng.Float64() < p
}

func (g *gridGen) coin() bool { return g.cfg.rng.Intn(2) == 0 }

// reverse describes s from its destination to its origin.
func reverse(s segment.Segment) segment.Segment {
	s.Geometry = s.Geometry.Clone()
	s.Geometry.Reverse()
	switch s.Direction {
	case segment.Forward:
		s.Direction = segment.Backward
	case segment.Backward:
		s.Direction = segment.Forward
	}
	s.ForwardCost, s.BackwardCost = s.BackwardCost, s.ForwardCost

	return s
}
