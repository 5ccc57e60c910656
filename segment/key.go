package segment

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

const (
	// DefaultPrecision is the number of decimals kept in a node key.
	// Six decimals of a degree is roughly 0.1 m at the equator.
	DefaultPrecision = 6

	// MaxPrecision bounds the quantization so that lon*10^p stays exact in float64.
	MaxPrecision = 12

	// keySeparator joins longitude and latitude inside a key.
	keySeparator = ','
)

// NodeKey derives the canonical key of p at the given precision.
//
// Implementation:
//   - Stage 1: quantize each ordinate with math.Round(v·10^p)/10^p.
//   - Stage 2: fold -0 onto 0 so both signs of zero share one key.
//   - Stage 3: format with exactly p decimals, "lon,lat".
//
// Precision outside [0, MaxPrecision] is clamped; use CheckPrecision to reject it instead.
//
// Complexity: O(1), one small allocation for the key.
func NodeKey(p orb.Point, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}

	scale := math.Pow10(precision)
	buf := make([]byte, 0, 32)
	buf = strconv.AppendFloat(buf, quantize(p.Lon(), scale), 'f', precision, 64)
	buf = append(buf, keySeparator)
	buf = strconv.AppendFloat(buf, quantize(p.Lat(), scale), 'f', precision, 64)

	return string(buf)
}

// CheckPrecision returns ErrBadPrecision when precision is outside [0, MaxPrecision].
func CheckPrecision(precision int) error {
	if precision < 0 || precision > MaxPrecision {
		return ErrBadPrecision
	}

	return nil
}

func quantize(v, scale float64) float64 {
	q := math.Round(v*scale) / scale
	if q == 0 {
		return 0 // drops the sign of -0
	}

	return q
}
