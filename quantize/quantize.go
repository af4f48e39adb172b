package quantize

import (
	"math"

	"github.com/pensaer/geokernel/mathx"
)

// Grid is the spacing every persisted float is pinned to.
const Grid = mathx.Quantize

// Quantize rounds x to the nearest multiple of Grid, normalizing -0.0 to
// +0.0 so two bit-for-bit-different zero values serialize identically.
func Quantize(x float64) float64 {
	q := math.Round(x/Grid) * Grid
	if q == 0 {
		return 0
	}
	return q
}

// QuantizePoint2 quantizes both components of p.
func QuantizePoint2(p mathx.Point2) mathx.Point2 {
	return mathx.Point2{X: Quantize(p.X), Y: Quantize(p.Y)}
}

// QuantizePoint3 quantizes all three components of p.
func QuantizePoint3(p mathx.Point3) mathx.Point3 {
	return mathx.Point3{X: Quantize(p.X), Y: Quantize(p.Y), Z: Quantize(p.Z)}
}
