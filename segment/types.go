// SPDX-License-Identifier: MIT

package segment

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Sentinel errors for segment validation.
var (
	// ErrMalformedGeometry indicates a Segment with fewer than two coordinates.
	ErrMalformedGeometry = errors.New("segment: geometry needs at least two coordinates")

	// ErrInvalidCost indicates a non-positive, NaN or infinite cost.
	ErrInvalidCost = errors.New("segment: cost must be positive and finite")

	// ErrUnknownDirection indicates a direction label that ParseDirection does not know.
	ErrUnknownDirection = errors.New("segment: unknown direction")

	// ErrBadPrecision indicates a key precision outside [0, MaxPrecision].
	ErrBadPrecision = errors.New("segment: precision out of range")
)

// Direction restricts which way a Segment may be traversed.
// The zero value is Both.
type Direction int

const (
	// Both produces a forward and a backward edge.
	Both Direction = iota

	// Forward produces only the origin→destination edge.
	Forward

	// Backward produces only the destination→origin edge.
	Backward
)

// String returns the label used by ParseDirection.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "f"
	case Backward:
		return "b"
	default:
		return "all"
	}
}

// AllowsForward reports whether an origin→destination edge exists for d.
func (d Direction) AllowsForward() bool { return d != Backward }

// AllowsBackward reports whether a destination→origin edge exists for d.
func (d Direction) AllowsBackward() bool { return d != Forward }

// ParseDirection maps a direction label onto a Direction.
// "" and "all" mean Both, "f" Forward, "b" Backward.
func ParseDirection(label string) (Direction, error) {
	switch label {
	case "", "all":
		return Both, nil
	case "f":
		return Forward, nil
	case "b":
		return Backward, nil
	}

	return Both, fmt.Errorf("%w: %q", ErrUnknownDirection, label)
}

// Segment is one raw road record.
//
// ForwardCost and BackwardCost override Cost for their direction when positive;
// zero means "not set".
type Segment struct {
	ID           string
	Geometry     orb.LineString
	Cost         float64
	Direction    Direction
	ForwardCost  float64
	BackwardCost float64
}

// Origin returns the first coordinate. The caller must have validated the geometry.
func (s *Segment) Origin() orb.Point { return s.Geometry[0] }

// Destination returns the last coordinate. The caller must have validated the geometry.
func (s *Segment) Destination() orb.Point { return s.Geometry[len(s.Geometry)-1] }

// EffectiveCost returns the cost used for travelling the segment in direction d.
// d must be Forward or Backward; Both yields the plain Cost.
func (s *Segment) EffectiveCost(d Direction) float64 {
	switch d {
	case Forward:
		if s.ForwardCost > 0 {
			return s.ForwardCost
		}
	case Backward:
		if s.BackwardCost > 0 {
			return s.BackwardCost
		}
	}

	return s.Cost
}

// Validate checks geometry length and cost validity.
// Overrides are only checked when set; a negative override counts as set and invalid.
func (s *Segment) Validate() error {
	if len(s.Geometry) < 2 {
		return fmt.Errorf("%w: id=%q points=%d", ErrMalformedGeometry, s.ID, len(s.Geometry))
	}
	if !validCost(s.Cost) {
		return fmt.Errorf("%w: id=%q cost=%v", ErrInvalidCost, s.ID, s.Cost)
	}
	if s.ForwardCost != 0 && !validCost(s.ForwardCost) {
		return fmt.Errorf("%w: id=%q forward cost=%v", ErrInvalidCost, s.ID, s.ForwardCost)
	}
	if s.BackwardCost != 0 && !validCost(s.BackwardCost) {
		return fmt.Errorf("%w: id=%q backward cost=%v", ErrInvalidCost, s.ID, s.BackwardCost)
	}

	return nil
}

// ValidCost reports whether c may be used as an edge cost.
func ValidCost(c float64) bool { return validCost(c) }

func validCost(c float64) bool {
	return c > 0 && !math.IsInf(c, 0) && !math.IsNaN(c)
}
