package mathx

import "math"

// Point2 is a point in the plane, f64 coordinates, millimeters.
type Point2 struct {
	X, Y float64
}

// Point3 is a point in space, f64 coordinates, millimeters.
type Point3 struct {
	X, Y, Z float64
}

// Sub returns the vector from q to p (p - q).
func (p Point2) Sub(q Point2) Vector2 { return Vector2{p.X - q.X, p.Y - q.Y} }

// Add translates p by v.
func (p Point2) Add(v Vector2) Point2 { return Point2{p.X + v.X, p.Y + v.Y} }

// DistanceTo returns the Euclidean distance between p and q.
func (p Point2) DistanceTo(q Point2) float64 { return p.Sub(q).Length() }

// DistanceSquaredTo avoids the sqrt when only comparisons are needed.
func (p Point2) DistanceSquaredTo(q Point2) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Equal reports whether p and q are within tol of each other.
func (p Point2) Equal(q Point2, tol float64) bool { return p.DistanceTo(q) <= tol }

// Lerp linearly interpolates between p and q at parameter t.
func (p Point2) Lerp(q Point2, t float64) Point2 {
	return Point2{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// To3 lifts p into the plane z=z.
func (p Point2) To3(z float64) Point3 { return Point3{p.X, p.Y, z} }

// Sub returns the vector from q to p (p - q).
func (p Point3) Sub(q Point3) Vector3 { return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Add translates p by v.
func (p Point3) Add(v Vector3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// DistanceTo returns the Euclidean distance between p and q.
func (p Point3) DistanceTo(q Point3) float64 { return p.Sub(q).Length() }

// Lerp linearly interpolates between p and q at parameter t.
func (p Point3) Lerp(q Point3, t float64) Point3 {
	return Point3{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t, p.Z + (q.Z-p.Z)*t}
}

// To2 drops the z coordinate.
func (p Point3) To2() Point2 { return Point2{p.X, p.Y} }

// clamp01 restricts t to [0,1]; used by clamped-projection helpers.
func clamp01(t float64) float64 { return math.Max(0, math.Min(1, t)) }
