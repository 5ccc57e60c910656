package dedup

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/segment"
)

var (
	// ErrNilGraph indicates a nil *core.Graph passed to Graph.
	ErrNilGraph = errors.New("dedup: graph is nil")

	// ErrUnknownPolicy indicates a label ParsePolicy does not recognise.
	ErrUnknownPolicy = errors.New("dedup: unknown policy")
)

// Policy selects how a segment that lost in only one direction is treated.
type Policy int

const (
	// PerDirection keeps each segment for exactly the directions it won.
	PerDirection Policy = iota

	// WholeSegment drops a segment that lost in any direction.
	WholeSegment
)

// String returns the label accepted by ParsePolicy.
func (p Policy) String() string {
	if p == WholeSegment {
		return "whole-segment"
	}

	return "per-direction"
}

// ParsePolicy maps "per-direction" (or "") and "whole-segment" onto a Policy.
func ParsePolicy(label string) (Policy, error) {
	switch label {
	case "", "per-direction":
		return PerDirection, nil
	case "whole-segment":
		return WholeSegment, nil
	}

	return PerDirection, fmt.Errorf("%w: %q", ErrUnknownPolicy, label)
}

// Option configures Resolve.
type Option func(*options)

type options struct {
	policy    Policy
	inPlace   bool
	precision int
}

// WithPolicy selects the survivorship policy. Default PerDirection.
func WithPolicy(p Policy) Option {
	if p != PerDirection && p != WholeSegment {
		panic(fmt.Sprintf("dedup: unknown policy %d", int(p)))
	}

	return func(o *options) { o.policy = p }
}

// WithInPlace lets Resolve reuse the input slice and rewrite Direction on the
// input records. The caller must not read the input slice afterwards.
func WithInPlace() Option {
	return func(o *options) { o.inPlace = true }
}

// WithPrecision sets the node-key precision; it must match the one later given to core.Build.
func WithPrecision(p int) Option {
	if err := segment.CheckPrecision(p); err != nil {
		panic(fmt.Sprintf("%v: %d", err, p))
	}

	return func(o *options) { o.precision = p }
}

// Result is the outcome of Resolve.
type Result struct {
	// Segments are the survivors in input order.
	Segments []segment.Segment

	// ForwardDiscarded counts lost (origin, destination) competitions.
	ForwardDiscarded int

	// BackwardDiscarded counts lost (destination, origin) competitions.
	BackwardDiscarded int

	// Narrowed counts survivors whose Direction was reduced (PerDirection only).
	Narrowed int

	// Dropped counts segments removed entirely.
	Dropped int
}

// pairKey is an ordered (origin, destination) node-key pair.
type pairKey struct {
	from, to string
}

// direction bits recorded per segment.
const (
	bitForward uint8 = 1 << iota
	bitBackward
)

// holder is the incumbent of one ordered pair.
type holder struct {
	idx  int     // input index of the winning segment
	bit  uint8   // which of its directions occupies the pair
	cost float64 // its effective cost for that direction
}
