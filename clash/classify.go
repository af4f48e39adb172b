package clash

import (
	"math"

	"github.com/pensaer/geokernel/mathx"
)

// classifyPair applies spec §4.K's three rules in priority order: a pair
// coinciding within tau is a Duplicate even if it would otherwise also
// qualify as Hard.
func classifyPair(a, b Candidate, tol Tolerances) (Result, bool) {
	if isDuplicate(a.AABB, b.AABB, tol.Tau) {
		return Result{A: a.ID, B: b.ID, Type: Duplicate}, true
	}
	if center, vol, ok := hardOverlap(a.AABB, b.AABB, tol.Tau); ok {
		return Result{A: a.ID, B: b.ID, Type: Hard, OverlapCenter: &center, OverlapVolume: vol}, true
	}
	if tol.Clearance > 0 {
		if closest, gap, ok := clearanceGap(a.AABB, b.AABB, tol.Tau, tol.Clearance); ok {
			return Result{A: a.ID, B: b.ID, Type: Clearance, ClosestPoint: &closest, GapDistance: gap}, true
		}
	}
	return Result{}, false
}

func isDuplicate(a, b mathx.BBox3, tau float64) bool {
	return closeAbs(a.Min.X, b.Min.X, tau) && closeAbs(a.Min.Y, b.Min.Y, tau) && closeAbs(a.Min.Z, b.Min.Z, tau) &&
		closeAbs(a.Max.X, b.Max.X, tau) && closeAbs(a.Max.Y, b.Max.Y, tau) && closeAbs(a.Max.Z, b.Max.Z, tau)
}

func closeAbs(x, y, tau float64) bool { return math.Abs(x-y) <= tau }

// hardOverlap reports the overlap region's center and volume when every
// per-axis overlap extent exceeds tau.
func hardOverlap(a, b mathx.BBox3, tau float64) (mathx.Point3, float64, bool) {
	inter, ok := a.Intersection(b)
	if !ok {
		return mathx.Point3{}, 0, false
	}
	ox := inter.Max.X - inter.Min.X
	oy := inter.Max.Y - inter.Min.Y
	oz := inter.Max.Z - inter.Min.Z
	if ox <= tau || oy <= tau || oz <= tau {
		return mathx.Point3{}, 0, false
	}
	return inter.Center(), ox * oy * oz, true
}

// clearanceGap reports the approximate closest point and Euclidean gap
// between two disjoint boxes, when that gap falls strictly within
// (tau, clearance).
func clearanceGap(a, b mathx.BBox3, tau, clearance float64) (mathx.Point3, float64, bool) {
	if _, overlap := a.Intersection(b); overlap {
		return mathx.Point3{}, 0, false
	}
	dx := axisGap(a.Min.X, a.Max.X, b.Min.X, b.Max.X)
	dy := axisGap(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y)
	dz := axisGap(a.Min.Z, a.Max.Z, b.Min.Z, b.Max.Z)
	gap := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if gap <= tau || gap >= clearance {
		return mathx.Point3{}, 0, false
	}
	closest := mathx.Point3{
		X: closestCoord(a.Min.X, a.Max.X, b.Min.X, b.Max.X),
		Y: closestCoord(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y),
		Z: closestCoord(a.Min.Z, a.Max.Z, b.Min.Z, b.Max.Z),
	}
	return closest, gap, true
}

func axisGap(aMin, aMax, bMin, bMax float64) float64 {
	if aMax < bMin {
		return bMin - aMax
	}
	if bMax < aMin {
		return aMin - bMax
	}
	return 0
}

// closestCoord returns the midpoint of the separating gap on an axis where
// the boxes are disjoint, or the midpoint of their overlap where they
// aren't — used to build an approximate closest point across all three
// axes at once.
func closestCoord(aMin, aMax, bMin, bMax float64) float64 {
	if aMax < bMin {
		return (aMax + bMin) / 2
	}
	if bMax < aMin {
		return (aMin + bMax) / 2
	}
	lo := math.Max(aMin, bMin)
	hi := math.Min(aMax, bMax)
	return (lo + hi) / 2
}
