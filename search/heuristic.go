package search

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// polarRadius is the WGS84 semi-minor axis in metres. A sphere of this radius
// never measures a geodesic longer than the ellipsoid does.
const polarRadius = 6356752.0

// GreatCircle returns a heuristic equal to the haversine distance in metres on
// a sphere of the polar radius, divided by metresPerCost. Choose metresPerCost
// from the fastest edge of the network so the estimate stays a lower bound.
//
// Panics if metresPerCost is not positive.
func GreatCircle(metresPerCost float64) Heuristic {
	if !(metresPerCost > 0) {
		panic(fmt.Sprintf("search: metresPerCost must be positive, got %v", metresPerCost))
	}
	scale := polarRadius / orb.EarthRadius / metresPerCost

	return func(from, to orb.Point) float64 {
		return geo.DistanceHaversine(from, to) * scale
	}
}

// wrapNode attaches which endpoint failed.
func wrapNode(err error, role, key string) error {
	return fmt.Errorf("%w: %s %q", err, role, key)
}
