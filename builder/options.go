// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go - functional options for Grid.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// Deterministic defaults.
const (
	defaultSpacing = 0.001 // degrees between parallel streets, ~111 m
	defaultMinCost = 1.0
	defaultMaxCost = 1.0
)

// builderConfig aggregates all knobs used by Grid.
type builderConfig struct {
	rng     *rand.Rand
	origin  orb.Point
	spacing float64

	minCost, maxCost float64

	oneWay    float64 // probability that a street is one-way
	duplicate float64 // probability of an extra parallel copy
	reversed  float64 // probability that a copy is digitized end→start
	override  float64 // probability of a per-direction cost override
}

// BuilderOption customizes Grid.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: defaultSpacing,
		minCost: defaultMinCost,
		maxCost: defaultMaxCost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithOrigin places grid cell (0,0) at p.
func WithOrigin(p orb.Point) BuilderOption {
	return func(c *builderConfig) { c.origin = p }
}

// WithSpacing sets the distance between adjacent streets in degrees. Panics unless > 0.
func WithSpacing(deg float64) BuilderOption {
	if !(deg > 0) || math.IsInf(deg, 1) {
		panic(fmt.Sprintf("builder: WithSpacing(%v)", deg))
	}

	return func(c *builderConfig) { c.spacing = deg }
}

// WithCostRange draws block costs uniformly from [lo, hi].
// Panics unless 0 < lo <= hi < +Inf.
func WithCostRange(lo, hi float64) BuilderOption {
	if !(lo > 0) || !(hi >= lo) || math.IsInf(hi, 1) {
		panic(fmt.Sprintf("builder: WithCostRange(%v, %v)", lo, hi))
	}

	return func(c *builderConfig) { c.minCost, c.maxCost = lo, hi }
}

// WithOneWay makes each street one-way with probability p.
func WithOneWay(p float64) BuilderOption {
	checkProbability("WithOneWay", p)

	return func(c *builderConfig) { c.oneWay = p }
}

// WithDuplicates adds a parallel copy of a street with probability p; a copy
// is digitized in the opposite direction with probability reversed.
func WithDuplicates(p, reversed float64) BuilderOption {
	checkProbability("WithDuplicates", p)
	checkProbability("WithDuplicates", reversed)

	return func(c *builderConfig) { c.duplicate, c.reversed = p, reversed }
}

// WithOverrides sets a forward or backward cost override with probability p.
func WithOverrides(p float64) BuilderOption {
	checkProbability("WithOverrides", p)

	return func(c *builderConfig) { c.override = p }
}

func checkProbability(name string, p float64) {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("builder: %s probability %v outside [0,1]", name, p))
	}
}

func (c builderConfig) stochastic() bool {
	return c.oneWay > 0 || c.duplicate > 0 || c.override > 0 || c.maxCost > c.minCost
}
