// Package ingest turns a GeoJSON FeatureCollection of road features into
// segment.Segment records.
//
// Property convention (all optional except the cost):
//
//	_cost           number, base traversal cost (required, > 0)
//	_id             string or number, segment identifier
//	_direction      "all" | "f" | "b"
//	_forward_cost   number, overrides _cost origin→destination
//	_backward_cost  number, overrides _cost destination→origin
//
// LineString features yield one Segment; MultiLineString features yield one
// Segment per part, with ids suffixed "#0", "#1", ... Features that cannot form
// a valid Segment are skipped and listed in Result.Skipped, unless WithStrict
// is given, in which case the first one aborts the read.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/lvroute/segment"
)

// Property names read from each feature.
const (
	PropCost         = "_cost"
	PropID           = "_id"
	PropDirection    = "_direction"
	PropForwardCost  = "_forward_cost"
	PropBackwardCost = "_backward_cost"
)

// Sentinel errors.
var (
	// ErrDecode indicates the input is not a GeoJSON FeatureCollection.
	ErrDecode = errors.New("ingest: cannot decode feature collection")

	// ErrUnsupportedGeometry indicates a feature whose geometry is not a (multi)line string.
	ErrUnsupportedGeometry = errors.New("ingest: unsupported geometry type")

	// ErrMissingCost indicates a feature without a positive numeric cost property.
	ErrMissingCost = errors.New("ingest: missing or unusable cost")

	// ErrBadProperty indicates a property with the wrong JSON type.
	ErrBadProperty = errors.New("ingest: malformed property")
)

// Skip records a feature that did not produce segments.
type Skip struct {
	// Feature is the index of the feature in the collection.
	Feature int
	Err     error
}

// Result is the outcome of a read.
type Result struct {
	Segments []segment.Segment

	// Skipped lists rejected features in collection order. Always empty in strict mode.
	Skipped []Skip
}

// Option configures a read.
type Option func(*options)

type options struct {
	strict   bool
	costProp string
}

// WithStrict makes the first unusable feature fail the whole read.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithCostProperty reads the base cost from name instead of PropCost.
// Panics on an empty name.
func WithCostProperty(name string) Option {
	if name == "" {
		panic("ingest: WithCostProperty(\"\")")
	}

	return func(o *options) { o.costProp = name }
}

// ReadSegments decodes a FeatureCollection from r and converts its features.
func ReadSegments(r io.Reader, opts ...Option) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: read: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return FromFeatureCollection(fc, opts...)
}

// ReadFile is ReadSegments over the named file.
func ReadFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	return ReadSegments(f, opts...)
}

// FromFeatureCollection converts already decoded features.
//
// Segment validity is checked with (segment.Segment).Validate, so a record in
// Result.Segments is always accepted by core.Build.
func FromFeatureCollection(fc *geojson.FeatureCollection, opts ...Option) (*Result, error) {
	o := options{costProp: PropCost}
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{Segments: make([]segment.Segment, 0, len(fc.Features))}
	for i, f := range fc.Features {
		segs, err := convert(f, i, o)
		if err != nil {
			if o.strict {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			res.Skipped = append(res.Skipped, Skip{Feature: i, Err: err})

			continue
		}
		res.Segments = append(res.Segments, segs...)
	}

	return res, nil
}

func convert(f *geojson.Feature, index int, o options) ([]segment.Segment, error) {
	if f == nil || f.Geometry == nil {
		return nil, fmt.Errorf("%w: no geometry", ErrUnsupportedGeometry)
	}

	var parts []orb.LineString
	switch g := f.Geometry.(type) {
	case orb.LineString:
		parts = []orb.LineString{g}
	case orb.MultiLineString:
		parts = g
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, f.Geometry.GeoJSONType())
	}

	cost, ok, err := number(f.Properties, o.costProp)
	if err != nil {
		return nil, err
	}
	if !ok || !segment.ValidCost(cost) {
		return nil, fmt.Errorf("%w: %s=%v", ErrMissingCost, o.costProp, f.Properties[o.costProp])
	}
	fwd, _, err := number(f.Properties, PropForwardCost)
	if err != nil {
		return nil, err
	}
	bwd, _, err := number(f.Properties, PropBackwardCost)
	if err != nil {
		return nil, err
	}

	label, err := text(f.Properties, PropDirection)
	if err != nil {
		return nil, err
	}
	dir, err := segment.ParseDirection(label)
	if err != nil {
		return nil, err
	}

	id := featureID(f, index)
	out := make([]segment.Segment, 0, len(parts))
	for k, ls := range parts {
		s := segment.Segment{
			ID:           id,
			Geometry:     ls,
			Cost:         cost,
			Direction:    dir,
			ForwardCost:  fwd,
			BackwardCost: bwd,
		}
		if len(parts) > 1 {
			s.ID = id + "#" + strconv.Itoa(k)
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// number reads a numeric property. ok is false when the property is absent or null.
func number(p geojson.Properties, key string) (v float64, ok bool, err error) {
	raw, present := p[key]
	if !present || raw == nil {
		return 0, false, nil
	}
	v, isNum := raw.(float64)
	if !isNum {
		return 0, false, fmt.Errorf("%w: %s is %T", ErrBadProperty, key, raw)
	}

	return v, true, nil
}

// text reads a string property. An absent or null property reads as "".
func text(p geojson.Properties, key string) (string, error) {
	raw, present := p[key]
	if !present || raw == nil {
		return "", nil
	}
	v, isStr := raw.(string)
	if !isStr {
		return "", fmt.Errorf("%w: %s is %T", ErrBadProperty, key, raw)
	}

	return v, nil
}

// featureID prefers the _id property, then the feature id, then "feature-<index>".
func featureID(f *geojson.Feature, index int) string {
	for _, raw := range []interface{}{f.Properties[PropID], f.ID} {
		switch v := raw.(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	return "feature-" + strconv.Itoa(index)
}
