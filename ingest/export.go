package ingest

import (
	"fmt"
	"io"

	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/lvroute/segment"
)

// WriteSegments encodes segs as a FeatureCollection using the same property
// convention ReadSegments understands. Overrides are written only when set and
// _direction only when it is not Both.
func WriteSegments(w io.Writer, segs []segment.Segment) error {
	fc := geojson.NewFeatureCollection()
	for i := range segs {
		s := &segs[i]
		f := geojson.NewFeature(s.Geometry)
		f.Properties[PropID] = s.ID
		f.Properties[PropCost] = s.Cost
		if s.Direction != segment.Both {
			f.Properties[PropDirection] = s.Direction.String()
		}
		if s.ForwardCost > 0 {
			f.Properties[PropForwardCost] = s.ForwardCost
		}
		if s.BackwardCost > 0 {
			f.Properties[PropBackwardCost] = s.BackwardCost
		}
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("ingest: encode: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("ingest: write: %w", err)
	}

	return nil
}
