package mathx

import "math"

// Vector2 is a 2D displacement/direction, f64 components.
type Vector2 struct {
	X, Y float64
}

// Vector3 is a 3D displacement/direction, f64 components.
type Vector3 struct {
	X, Y, Z float64
}

// Length returns the Euclidean magnitude of v.
func (v Vector2) Length() float64 { return math.Hypot(v.X, v.Y) }

// LengthSquared avoids the sqrt when only comparisons are needed.
func (v Vector2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Negate returns -v.
func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

// Dot returns the scalar dot product v . w.
func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z-component of the 3D cross product of v and w treated
// as vectors in the z=0 plane: v.X*w.Y - v.Y*w.X. Positive means w is CCW
// of v.
func (v Vector2) Cross(w Vector2) float64 { return v.X*w.Y - v.Y*w.X }

// Perp returns v rotated CCW by 90 degrees: (-y, x).
func (v Vector2) Perp() Vector2 { return Vector2{-v.Y, v.X} }

// Normalize returns v scaled to unit length. Fails with ErrZeroLengthVector
// when |v| < Epsilon. Postcondition: |result| is within 1e-10 of 1.
func (v Vector2) Normalize() (Vector2, error) {
	l := v.Length()
	if l < Epsilon {
		return Vector2{}, ErrZeroLengthVector
	}
	return Vector2{v.X / l, v.Y / l}, nil
}

// Rotate rotates v by theta radians CCW.
func (v Vector2) Rotate(theta float64) Vector2 {
	s, c := math.Sincos(theta)
	return Vector2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Project returns the component of v projected onto w.
func (v Vector2) Project(w Vector2) Vector2 {
	wl2 := w.LengthSquared()
	if wl2 < Epsilon*Epsilon {
		return Vector2{}
	}
	return w.Scale(v.Dot(w) / wl2)
}

// Reflect reflects v across the line through the origin with direction n
// (n need not be unit length).
func (v Vector2) Reflect(n Vector2) Vector2 {
	proj := v.Project(n)
	return proj.Scale(2).Sub(v)
}

// Angle returns atan2(y, x), the polar angle of v in (-pi, pi].
func (v Vector2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// To3 lifts v into the plane z=0.
func (v Vector2) To3() Vector3 { return Vector3{v.X, v.Y, 0} }

// Length returns the Euclidean magnitude of v.
func (v Vector3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// LengthSquared avoids the sqrt when only comparisons are needed.
func (v Vector3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Negate returns -v.
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar dot product v . w.
func (v Vector3) Dot(w Vector3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the 3D cross product v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Normalize returns v scaled to unit length. Fails with ErrZeroLengthVector
// when |v| < Epsilon.
func (v Vector3) Normalize() (Vector3, error) {
	l := v.Length()
	if l < Epsilon {
		return Vector3{}, ErrZeroLengthVector
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}, nil
}

// Project returns the component of v projected onto w.
func (v Vector3) Project(w Vector3) Vector3 {
	wl2 := w.LengthSquared()
	if wl2 < Epsilon*Epsilon {
		return Vector3{}
	}
	return w.Scale(v.Dot(w) / wl2)
}

// Reflect reflects v across the plane whose normal is n.
func (v Vector3) Reflect(n Vector3) Vector3 {
	nu, err := n.Normalize()
	if err != nil {
		return v
	}
	return v.Sub(nu.Scale(2 * v.Dot(nu)))
}

// To2 drops the z component.
func (v Vector3) To2() Vector2 { return Vector2{v.X, v.Y} }
