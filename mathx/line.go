package mathx

import "math"

// Segment2 is an ordered pair of 2D points.
type Segment2 struct {
	A, B Point2
}

// Segment3 is an ordered pair of 3D points.
type Segment3 struct {
	A, B Point3
}

// Length returns the Euclidean length of the segment.
func (s Segment2) Length() float64 { return s.A.DistanceTo(s.B) }

// Direction returns the unit vector from A to B. Fails with
// ErrZeroLengthVector for a degenerate (zero-length) segment.
func (s Segment2) Direction() (Vector2, error) { return s.B.Sub(s.A).Normalize() }

// Midpoint returns the point halfway between A and B.
func (s Segment2) Midpoint() Point2 { return s.A.Lerp(s.B, 0.5) }

// PointAt returns the point at parameter t, where t=0 is A and t=1 is B.
// t is not clamped.
func (s Segment2) PointAt(t float64) Point2 { return s.A.Lerp(s.B, t) }

// ProjectClamped returns the parameter t in [0,1] of the closest point on
// the segment to p (the "clamped projection").
func (s Segment2) ProjectClamped(p Point2) float64 {
	d := s.B.Sub(s.A)
	l2 := d.LengthSquared()
	if l2 < Epsilon*Epsilon {
		return 0
	}
	t := p.Sub(s.A).Dot(d) / l2
	return clamp01(t)
}

// ClosestPoint returns the point on the segment nearest to p.
func (s Segment2) ClosestPoint(p Point2) Point2 { return s.PointAt(s.ProjectClamped(p)) }

// DistanceTo returns the distance from p to the closest point on the segment.
func (s Segment2) DistanceTo(p Point2) float64 { return p.DistanceTo(s.ClosestPoint(p)) }

// BBox returns the axis-aligned bounding box of the segment.
func (s Segment2) BBox() BBox2 { return NewBBox2(s.A, s.B) }

// Intersects reports whether s and t intersect (including endpoint
// touches), via the robust predicate.
func (s Segment2) Intersects(t Segment2) bool {
	return SegmentsIntersect(s.A, s.B, t.A, t.B)
}

// ProperlyIntersects reports whether s and t cross in their mutual
// interiors, via the robust predicate.
func (s Segment2) ProperlyIntersects(t Segment2) bool {
	return SegmentsProperlyIntersect(s.A, s.B, t.A, t.B)
}

// Intersection computes the point where s and t's carrier lines meet.
// Callers should first confirm an interior crossing exists (e.g. via
// ProperlyIntersects) when that guarantee matters.
func (s Segment2) Intersection(t Segment2) (Point2, error) {
	return IntersectSegments(s.A, s.B, t.A, t.B)
}

// Length returns the Euclidean length of the segment.
func (s Segment3) Length() float64 { return s.A.DistanceTo(s.B) }

// Direction returns the unit vector from A to B.
func (s Segment3) Direction() (Vector3, error) { return s.B.Sub(s.A).Normalize() }

// Midpoint returns the point halfway between A and B.
func (s Segment3) Midpoint() Point3 { return s.A.Lerp(s.B, 0.5) }

// PointAt returns the point at parameter t.
func (s Segment3) PointAt(t float64) Point3 { return s.A.Lerp(s.B, t) }

// ProjectClamped returns the clamped parameter t in [0,1] of the closest
// point on the segment to p.
func (s Segment3) ProjectClamped(p Point3) float64 {
	d := s.B.Sub(s.A)
	l2 := d.LengthSquared()
	if l2 < Epsilon*Epsilon {
		return 0
	}
	t := p.Sub(s.A).Dot(d) / l2
	return clamp01(t)
}

// ClosestPoint returns the point on the segment nearest to p.
func (s Segment3) ClosestPoint(p Point3) Point3 { return s.PointAt(s.ProjectClamped(p)) }

// DistanceTo returns the distance from p to the closest point on the segment.
func (s Segment3) DistanceTo(p Point3) float64 { return p.DistanceTo(s.ClosestPoint(p)) }

// AngleBetween returns the unsigned angle in [0, pi] between two directions,
// clamping the dot-product argument to acos's domain to guard against
// floating-point drift pushing it slightly outside [-1, 1].
func AngleBetween(u, v Vector2) float64 {
	un, err1 := u.Normalize()
	vn, err2 := v.Normalize()
	if err1 != nil || err2 != nil {
		return 0
	}
	d := un.Dot(vn)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}
