package joins

import "github.com/pensaer/geokernel/mathx"

// unmodifiedProfile is the straightforward square-cut end profile: near
// corners at the wall's own endpoint offset by half thickness along the
// outward normal, far corners one thickness further back along dir. Used
// for Butt, TJoin, and Cross (spec: "currently return unmodified end
// profiles").
func unmodifiedProfile(wallID string, p mathx.Point2, dir mathx.Vector2, thickness float64) WallProfile {
	normal := dir.Perp()
	half := thickness / 2
	far := p.Add(dir.Scale(thickness))
	return WallProfile{
		WallID:    wallID,
		InnerNear: p.Add(normal.Scale(half)),
		OuterNear: p.Add(normal.Scale(-half)),
		OuterFar:  far.Add(normal.Scale(-half)),
		InnerFar:  far.Add(normal.Scale(half)),
	}
}

// miterProfiles computes the trimmed end profile for each of the two walls
// at an LJoin/Miter endpoint join: the bisector of their outgoing
// directions defines a miter line through joinPt, and each wall's inner and
// outer offset lines are intersected with it to produce the near corners.
// Falls back to the unmodified profile for a wall whose offset line turns
// out parallel to the miter line (a near-degenerate angle already filtered
// by classifyAngle in the common case, kept here as a defensive fallback).
func miterProfiles(a WallRef, pa mathx.Point2, dirA mathx.Vector2, b WallRef, pb mathx.Point2, dirB mathx.Vector2, joinPt mathx.Point2) []WallProfile {
	sum := dirA.Add(dirB)
	var bisector mathx.Vector2
	if sum.Length() < mathx.Epsilon {
		bisector = dirA.Perp()
	} else if nb, err := sum.Normalize(); err == nil {
		bisector = nb
	} else {
		bisector = dirA.Perp()
	}
	miterDir := bisector.Perp()

	return []WallProfile{
		miterWallProfile(a, pa, dirA, joinPt, miterDir),
		miterWallProfile(b, pb, dirB, joinPt, miterDir),
	}
}

func miterWallProfile(w WallRef, p mathx.Point2, dir mathx.Vector2, joinPt mathx.Point2, miterDir mathx.Vector2) WallProfile {
	normal := dir.Perp()
	half := w.Thickness / 2
	innerLinePt := p.Add(normal.Scale(half))
	outerLinePt := p.Add(normal.Scale(-half))

	innerNear, err1 := mathx.IntersectSegments(innerLinePt, innerLinePt.Add(dir), joinPt, joinPt.Add(miterDir))
	outerNear, err2 := mathx.IntersectSegments(outerLinePt, outerLinePt.Add(dir), joinPt, joinPt.Add(miterDir))
	if err1 != nil || err2 != nil {
		return unmodifiedProfile(w.ID, p, dir, w.Thickness)
	}

	far := p.Add(dir.Scale(w.Thickness))
	return WallProfile{
		WallID:    w.ID,
		InnerNear: innerNear,
		OuterNear: outerNear,
		OuterFar:  far.Add(normal.Scale(-half)),
		InnerFar:  far.Add(normal.Scale(half)),
	}
}
