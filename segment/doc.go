// Package segment defines the raw road-segment record that every other lvroute
// package consumes, together with the canonical node-key derivation.
//
// A Segment is one line geometry with a cost and a stable external identifier:
//
//	Geometry     orb.LineString  // ≥2 points, [lon, lat]; only first/last are routing nodes
//	Cost         float64         // positive, finite (e.g. travel minutes)
//	ID           string          // copied onto every Edge built from this record
//	Direction    Direction       // Both (default) | Forward | Backward
//	ForwardCost  float64         // optional override, 0 = absent
//	BackwardCost float64         // optional override, 0 = absent
//
// Node identity:
//
//	Two coordinates denote the same node iff NodeKey(a,p) == NodeKey(b,p).
//	Coordinates are quantized to p decimal places before formatting, so values
//	that differ only by floating-point noise below 10^-p collapse onto one key.
//
// Errors:
//
//	ErrMalformedGeometry - fewer than two coordinates.
//	ErrInvalidCost       - cost (or a present override) not positive and finite.
//	ErrUnknownDirection  - direction label outside {"", "all", "f", "b"}.
//	ErrBadPrecision      - precision outside [0, MaxPrecision].
package segment
