package mathx

import "math"

// Transform2 is a 2D affine transform stored as a 2x3 matrix:
//
//	[a c tx]   [x]
//	[b d ty] * [y]
//	           [1]
type Transform2 struct {
	A, B, C, D, Tx, Ty float64
}

// IdentityTransform2 returns the identity transform.
func IdentityTransform2() Transform2 { return Transform2{A: 1, D: 1} }

// Translate2 returns a pure translation transform.
func Translate2(v Vector2) Transform2 { return Transform2{A: 1, D: 1, Tx: v.X, Ty: v.Y} }

// Rotate2 returns a pure rotation transform by theta radians CCW about the
// origin.
func Rotate2(theta float64) Transform2 {
	s, c := math.Sincos(theta)
	return Transform2{A: c, B: s, C: -s, D: c}
}

// Scale2 returns a pure non-uniform scale transform about the origin.
func Scale2(sx, sy float64) Transform2 { return Transform2{A: sx, D: sy} }

// Apply transforms point p.
func (t Transform2) Apply(p Point2) Point2 {
	return Point2{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// ApplyVector transforms vector v (ignores translation).
func (t Transform2) ApplyVector(v Vector2) Vector2 {
	return Vector2{X: t.A*v.X + t.C*v.Y, Y: t.B*v.X + t.D*v.Y}
}

// Compose returns the transform equivalent to applying t first, then o
// (o.Compose result == o ∘ t, matrix-multiplication order o * t).
func (t Transform2) Compose(o Transform2) Transform2 {
	return Transform2{
		A:  o.A*t.A + o.C*t.B,
		B:  o.B*t.A + o.D*t.B,
		C:  o.A*t.C + o.C*t.D,
		D:  o.B*t.C + o.D*t.D,
		Tx: o.A*t.Tx + o.C*t.Ty + o.Tx,
		Ty: o.B*t.Tx + o.D*t.Ty + o.Ty,
	}
}

// Determinant returns the determinant of the linear part.
func (t Transform2) Determinant() float64 { return t.A*t.D - t.B*t.C }

// Inverse returns the inverse transform, or ErrSingularTransform if the
// linear part is not invertible.
func (t Transform2) Inverse() (Transform2, error) {
	det := t.Determinant()
	if math.Abs(det) < Epsilon {
		return Transform2{}, ErrSingularTransform
	}
	invDet := 1 / det
	a := t.D * invDet
	b := -t.B * invDet
	c := -t.C * invDet
	d := t.A * invDet
	return Transform2{
		A: a, B: b, C: c, D: d,
		Tx: -(a*t.Tx + c*t.Ty),
		Ty: -(b*t.Tx + d*t.Ty),
	}, nil
}

// Transform3 is a 3D affine transform: a 3x3 linear part M plus a
// translation T.
type Transform3 struct {
	M  [3][3]float64
	T  Vector3
}

// IdentityTransform3 returns the identity transform.
func IdentityTransform3() Transform3 {
	return Transform3{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Translate3 returns a pure translation transform.
func Translate3(v Vector3) Transform3 {
	t := IdentityTransform3()
	t.T = v
	return t
}

// Scale3 returns a pure non-uniform scale transform about the origin.
func Scale3(sx, sy, sz float64) Transform3 {
	return Transform3{M: [3][3]float64{{sx, 0, 0}, {0, sy, 0}, {0, 0, sz}}}
}

// RotateAxis3 returns a rotation by theta radians about a unit axis, via
// Rodrigues' rotation formula. Returns ErrZeroLengthVector if axis is not
// normalizable.
func RotateAxis3(axis Vector3, theta float64) (Transform3, error) {
	u, err := axis.Normalize()
	if err != nil {
		return Transform3{}, err
	}
	s, c := math.Sincos(theta)
	ic := 1 - c
	m := [3][3]float64{
		{c + u.X*u.X*ic, u.X*u.Y*ic - u.Z*s, u.X*u.Z*ic + u.Y*s},
		{u.Y*u.X*ic + u.Z*s, c + u.Y*u.Y*ic, u.Y*u.Z*ic - u.X*s},
		{u.Z*u.X*ic - u.Y*s, u.Z*u.Y*ic + u.X*s, c + u.Z*u.Z*ic},
	}
	return Transform3{M: m}, nil
}

// Apply transforms point p.
func (t Transform3) Apply(p Point3) Point3 {
	return Point3{
		X: t.M[0][0]*p.X + t.M[0][1]*p.Y + t.M[0][2]*p.Z + t.T.X,
		Y: t.M[1][0]*p.X + t.M[1][1]*p.Y + t.M[1][2]*p.Z + t.T.Y,
		Z: t.M[2][0]*p.X + t.M[2][1]*p.Y + t.M[2][2]*p.Z + t.T.Z,
	}
}

// ApplyVector transforms vector v (ignores translation).
func (t Transform3) ApplyVector(v Vector3) Vector3 {
	return Vector3{
		X: t.M[0][0]*v.X + t.M[0][1]*v.Y + t.M[0][2]*v.Z,
		Y: t.M[1][0]*v.X + t.M[1][1]*v.Y + t.M[1][2]*v.Z,
		Z: t.M[2][0]*v.X + t.M[2][1]*v.Y + t.M[2][2]*v.Z,
	}
}

// Compose returns the transform equivalent to applying t first, then o.
func (t Transform3) Compose(o Transform3) Transform3 {
	var m [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += o.M[i][k] * t.M[k][j]
			}
			m[i][j] = sum
		}
	}
	translated := o.ApplyVector(t.T)
	return Transform3{M: m, T: translated.Add(o.T)}
}

// Determinant returns the determinant of the linear part M.
func (t Transform3) Determinant() float64 {
	m := t.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse transform, or ErrSingularTransform if M is
// not invertible.
func (t Transform3) Inverse() (Transform3, error) {
	det := t.Determinant()
	if math.Abs(det) < Epsilon {
		return Transform3{}, ErrSingularTransform
	}
	m := t.M
	invDet := 1 / det
	var inv [3][3]float64
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet

	res := Transform3{M: inv}
	negT := res.ApplyVector(t.T).Negate()
	res.T = negT
	return res, nil
}
