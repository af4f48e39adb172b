package joins

import (
	"math"
	"sort"

	"github.com/pensaer/geokernel/mathx"
)

// DetectJoins finds every join among walls within the given tolerances and
// returns one JoinGeometry per join, deduplicated by join-point proximity
// and participating wall-id set.
func DetectJoins(walls []WallRef, tol Tolerances) []JoinGeometry {
	var found []JoinGeometry
	for i := 0; i < len(walls); i++ {
		for j := i + 1; j < len(walls); j++ {
			if g, ok := detectPair(walls[i], walls[j], tol); ok {
				found = append(found, g)
			}
		}
	}
	return dedupe(found, tol.Tau)
}

func detectPair(a, b WallRef, tol Tolerances) (JoinGeometry, bool) {
	if g, ok := detectEndpointEndpoint(a, b, tol); ok {
		return g, true
	}
	if g, ok := detectTJoin(a, b, tol); ok {
		return g, true
	}
	if g, ok := detectTJoin(b, a, tol); ok {
		return g, true
	}
	if g, ok := detectCross(a, b, tol); ok {
		return g, true
	}
	return JoinGeometry{}, false
}

type endpoint struct {
	p, other mathx.Point2
}

// detectEndpointEndpoint finds the closest pair of endpoints (one from each
// wall) within Tau, classifies the join by the angle between the walls'
// outgoing directions, and builds the matching profile pair.
func detectEndpointEndpoint(a, b WallRef, tol Tolerances) (JoinGeometry, bool) {
	aEps := []endpoint{{a.Start, a.End}, {a.End, a.Start}}
	bEps := []endpoint{{b.Start, b.End}, {b.End, b.Start}}

	bestDist := math.Inf(1)
	var bestA, bestB endpoint
	found := false
	for _, ae := range aEps {
		for _, be := range bEps {
			d := ae.p.DistanceTo(be.p)
			if d <= tol.Tau && d < bestDist {
				bestDist, bestA, bestB, found = d, ae, be, true
			}
		}
	}
	if !found {
		return JoinGeometry{}, false
	}

	joinPt := bestA.p.Lerp(bestB.p, 0.5)
	dirA, err1 := bestA.other.Sub(bestA.p).Normalize()
	dirB, err2 := bestB.other.Sub(bestB.p).Normalize()
	if err1 != nil || err2 != nil {
		return JoinGeometry{}, false
	}

	theta := mathx.AngleBetween(dirA, dirB)
	jt := classifyAngle(theta, tol.Alpha)

	var profiles []WallProfile
	switch jt {
	case LJoin, Miter:
		profiles = miterProfiles(a, bestA.p, dirA, b, bestB.p, dirB, joinPt)
	default: // Butt
		profiles = []WallProfile{
			unmodifiedProfile(a.ID, bestA.p, dirA, a.Thickness),
			unmodifiedProfile(b.ID, bestB.p, dirB, b.Thickness),
		}
	}

	return JoinGeometry{JoinPoint: joinPt, JoinType: jt, WallProfiles: profiles}, true
}

func classifyAngle(theta, alpha float64) JoinType {
	if math.Abs(theta-math.Pi) < alpha || theta < alpha {
		return Butt
	}
	if math.Abs(theta-math.Pi/2) < alpha {
		return LJoin
	}
	return Miter
}

// detectTJoin checks whether either endpoint of a lands in the strict
// interior of b's baseline (margin Tau/len from either end, to avoid
// double-reporting what detectEndpointEndpoint already covers).
func detectTJoin(a, b WallRef, tol Tolerances) (JoinGeometry, bool) {
	baseline := b.Baseline()
	length := baseline.Length()
	if length < mathx.Epsilon {
		return JoinGeometry{}, false
	}
	margin := tol.Tau / length

	for _, e := range []endpoint{{a.Start, a.End}, {a.End, a.Start}} {
		t := baseline.ProjectClamped(e.p)
		if t <= margin || t >= 1-margin {
			continue
		}
		proj := baseline.PointAt(t)
		if e.p.DistanceTo(proj) > tol.Tau {
			continue
		}
		dirA, errA := e.other.Sub(e.p).Normalize()
		dirB, errB := b.End.Sub(b.Start).Normalize()
		if errA != nil || errB != nil {
			continue
		}
		profiles := []WallProfile{
			unmodifiedProfile(a.ID, e.p, dirA, a.Thickness),
			unmodifiedProfile(b.ID, proj, dirB, b.Thickness),
		}
		return JoinGeometry{JoinPoint: proj, JoinType: TJoin, WallProfiles: profiles}, true
	}
	return JoinGeometry{}, false
}

// detectCross finds a proper interior crossing of the two baselines, each
// strictly interior (margin Tau) on both segments.
func detectCross(a, b WallRef, tol Tolerances) (JoinGeometry, bool) {
	baseA, baseB := a.Baseline(), b.Baseline()
	if !baseA.ProperlyIntersects(baseB) {
		return JoinGeometry{}, false
	}
	pt, err := baseA.Intersection(baseB)
	if err != nil {
		return JoinGeometry{}, false
	}

	lenA, lenB := math.Max(baseA.Length(), mathx.Epsilon), math.Max(baseB.Length(), mathx.Epsilon)
	ta, tb := baseA.ProjectClamped(pt), baseB.ProjectClamped(pt)
	marginA, marginB := tol.Tau/lenA, tol.Tau/lenB
	if ta <= marginA || ta >= 1-marginA || tb <= marginB || tb >= 1-marginB {
		return JoinGeometry{}, false
	}

	dirA, errA := baseA.Direction()
	dirB, errB := baseB.Direction()
	if errA != nil || errB != nil {
		return JoinGeometry{}, false
	}

	profiles := []WallProfile{
		unmodifiedProfile(a.ID, pt, dirA, a.Thickness),
		unmodifiedProfile(b.ID, pt, dirB, b.Thickness),
	}
	return JoinGeometry{JoinPoint: pt, JoinType: Cross, WallProfiles: profiles}, true
}

// dedupe collapses joins whose points are within tau and whose participant
// wall-id sets match, keeping the first occurrence in a deterministic
// (x, then y) sweep order.
func dedupe(joins []JoinGeometry, tau float64) []JoinGeometry {
	sort.Slice(joins, func(i, j int) bool {
		if joins[i].JoinPoint.X != joins[j].JoinPoint.X {
			return joins[i].JoinPoint.X < joins[j].JoinPoint.X
		}
		return joins[i].JoinPoint.Y < joins[j].JoinPoint.Y
	})

	var out []JoinGeometry
	for _, g := range joins {
		dup := false
		for _, have := range out {
			if have.JoinPoint.DistanceTo(g.JoinPoint) <= tau && sameWallIDSet(have, g) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, g)
		}
	}
	return out
}

func sameWallIDSet(a, b JoinGeometry) bool {
	if len(a.WallProfiles) != len(b.WallProfiles) {
		return false
	}
	ids := make(map[string]bool, len(a.WallProfiles))
	for _, p := range a.WallProfiles {
		ids[p.WallID] = true
	}
	for _, p := range b.WallProfiles {
		if !ids[p.WallID] {
			return false
		}
	}
	return true
}
