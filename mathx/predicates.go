package mathx

import (
	"math"
	"math/big"
)

// Orientation is the sign of the signed area of a triangle (a, b, c).
type Orientation int

const (
	// Collinear means a, b, c lie on one line.
	Collinear Orientation = 0
	// CounterClockwise means c is to the left of the directed line a->b.
	CounterClockwise Orientation = 1
	// Clockwise means c is to the right of the directed line a->b.
	Clockwise Orientation = -1
)

// String implements fmt.Stringer for readable test failures.
func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "CCW"
	case Clockwise:
		return "CW"
	default:
		return "Collinear"
	}
}

// errorBoundFactor bounds the relative rounding error of the float64
// determinant below, scaled by the magnitude of its largest term. It is a
// generous constant (not Shewchuk's tightly derived bound) chosen so the
// exact fallback fires whenever the fast path result could plausibly be
// wrong, never when it can't.
const errorBoundFactor = 1e-12

// Orientation returns the mathematically correct orientation of the triple
// (a, b, c) for the given double-precision inputs. It first evaluates the
// determinant in float64; if the magnitude is within errorBoundFactor of the
// largest contributing term (i.e. rounding error could have flipped the
// sign), it recomputes exactly using math/big.Float and reclassifies.
func OrientationOf(a, b, c Point2) Orientation {
	acx, acy := a.X-c.X, a.Y-c.Y
	bcx, bcy := b.X-c.X, b.Y-c.Y
	det := acx*bcy - acy*bcx

	bound := errorBoundFactor * (math.Abs(acx*bcy) + math.Abs(acy*bcx) + 1e-300)
	if math.Abs(det) > bound {
		return classify(det)
	}
	return orientationExact(a, b, c)
}

// classify maps a determinant's sign to an Orientation.
func classify(det float64) Orientation {
	switch {
	case det > 0:
		return CounterClockwise
	case det < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// orientationExact recomputes the orientation determinant with arbitrary
// precision, used only when the float64 fast path is too close to call.
func orientationExact(a, b, c Point2) Orientation {
	prec := uint(256)
	acx := new(big.Float).SetPrec(prec).SetFloat64(a.X - c.X)
	acy := new(big.Float).SetPrec(prec).SetFloat64(a.Y - c.Y)
	bcx := new(big.Float).SetPrec(prec).SetFloat64(b.X - c.X)
	bcy := new(big.Float).SetPrec(prec).SetFloat64(b.Y - c.Y)

	t1 := new(big.Float).SetPrec(prec).Mul(acx, bcy)
	t2 := new(big.Float).SetPrec(prec).Mul(acy, bcx)
	det := new(big.Float).SetPrec(prec).Sub(t1, t2)

	switch det.Sign() {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	default:
		return Collinear
	}
}

// onSegment reports whether p, known collinear with a and b, lies within the
// closed bounding box of segment a-b (the standard collinear-containment
// check paired with an orientation test of Collinear).
func onSegment(a, b, p Point2) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// SegmentsIntersect reports whether segments a1-a2 and b1-b2 intersect,
// including endpoint touches, using four robust orientation tests plus the
// collinear on-segment special cases.
func SegmentsIntersect(a1, a2, b1, b2 Point2) bool {
	o1 := OrientationOf(a1, a2, b1)
	o2 := OrientationOf(a1, a2, b2)
	o3 := OrientationOf(b1, b2, a1)
	o4 := OrientationOf(b1, b2, a2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == Collinear && onSegment(a1, a2, b1) {
		return true
	}
	if o2 == Collinear && onSegment(a1, a2, b2) {
		return true
	}
	if o3 == Collinear && onSegment(b1, b2, a1) {
		return true
	}
	if o4 == Collinear && onSegment(b1, b2, a2) {
		return true
	}
	return false
}

// SegmentsProperlyIntersect is SegmentsIntersect minus any case where an
// endpoint of either segment lies on the other segment.
func SegmentsProperlyIntersect(a1, a2, b1, b2 Point2) bool {
	o1 := OrientationOf(a1, a2, b1)
	o2 := OrientationOf(a1, a2, b2)
	o3 := OrientationOf(b1, b2, a1)
	o4 := OrientationOf(b1, b2, a2)

	if o1 == Collinear || o2 == Collinear || o3 == Collinear || o4 == Collinear {
		return false
	}
	return o1 != o2 && o3 != o4
}

// IntersectSegments computes the intersection point of the lines carrying
// a1-a2 and b1-b2, assuming the caller already knows (typically via
// SegmentsProperlyIntersect) that an interior crossing exists. Returns
// ErrParallelLines if the two lines are parallel.
func IntersectSegments(a1, a2, b1, b2 Point2) (Point2, error) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := d1.Cross(d2)
	if math.Abs(denom) < Epsilon {
		return Point2{}, ErrParallelLines
	}
	diff := b1.Sub(a1)
	t := diff.Cross(d2) / denom
	return a1.Add(d1.Scale(t)), nil
}

// PointInTriangle reports whether p lies inside (or on the boundary of)
// triangle (a, b, c), by requiring all three orientation tests to agree
// with the triangle's own orientation (collinear results are tolerated as
// "on an edge").
func PointInTriangle(p, a, b, c Point2) bool {
	tri := OrientationOf(a, b, c)
	if tri == Collinear {
		return false
	}
	o1 := OrientationOf(a, b, p)
	o2 := OrientationOf(b, c, p)
	o3 := OrientationOf(c, a, p)

	agrees := func(o Orientation) bool { return o == Collinear || o == tri }
	return agrees(o1) && agrees(o2) && agrees(o3)
}

// IsConvexVertex reports whether curr is a convex vertex of a CCW polygon,
// i.e. the turn prev->curr->next is a left (CounterClockwise) turn.
func IsConvexVertex(prev, curr, next Point2) bool {
	return OrientationOf(prev, curr, next) == CounterClockwise
}

// InCircleResult classifies where d lies relative to the circle through
// a, b, c.
type InCircleResult int

const (
	// Outside means d lies outside the circle through a, b, c.
	Outside InCircleResult = -1
	// On means d lies exactly on the circle through a, b, c.
	On InCircleResult = 0
	// Inside means d lies inside the circle through a, b, c.
	Inside InCircleResult = 1
)

// Incircle evaluates the classic 4x4 incircle determinant for point d
// against the circle through a, b, c (assumed CCW; if a,b,c is CW the sense
// of Inside/Outside is reversed), using the same fast/exact adaptive
// strategy as OrientationOf.
func Incircle(a, b, c, d Point2) InCircleResult {
	det := incircleDet(a.X, a.Y, b.X, b.Y, c.X, c.Y, d.X, d.Y)
	bound := errorBoundFactor * (math.Abs(det) + 1e-300)
	if math.Abs(det) > bound {
		return classifyIncircle(det)
	}
	return incircleExact(a, b, c, d)
}

func incircleDet(ax, ay, bx, by, cx, cy, dx, dy float64) float64 {
	adx, ady := ax-dx, ay-dy
	bdx, bdy := bx-dx, by-dy
	cdx, cdy := cx-dx, cy-dy

	adSq := adx*adx + ady*ady
	bdSq := bdx*bdx + bdy*bdy
	cdSq := cdx*cdx + cdy*cdy

	return adx*(bdy*cdSq-cdy*bdSq) -
		ady*(bdx*cdSq-cdx*bdSq) +
		adSq*(bdx*cdy-cdx*bdy)
}

func classifyIncircle(det float64) InCircleResult {
	switch {
	case det > 0:
		return Inside
	case det < 0:
		return Outside
	default:
		return On
	}
}

// incircleExact recomputes the incircle determinant with arbitrary
// precision.
func incircleExact(a, b, c, d Point2) InCircleResult {
	prec := uint(256)
	bf := func(x float64) *big.Float { return new(big.Float).SetPrec(prec).SetFloat64(x) }

	adx := new(big.Float).SetPrec(prec).Sub(bf(a.X), bf(d.X))
	ady := new(big.Float).SetPrec(prec).Sub(bf(a.Y), bf(d.Y))
	bdx := new(big.Float).SetPrec(prec).Sub(bf(b.X), bf(d.X))
	bdy := new(big.Float).SetPrec(prec).Sub(bf(b.Y), bf(d.Y))
	cdx := new(big.Float).SetPrec(prec).Sub(bf(c.X), bf(d.X))
	cdy := new(big.Float).SetPrec(prec).Sub(bf(c.Y), bf(d.Y))

	sq := func(v *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Mul(v, v) }
	add := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Add(x, y) }
	mul := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Mul(x, y) }
	sub := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sub(x, y) }

	adSq := add(sq(adx), sq(ady))
	bdSq := add(sq(bdx), sq(bdy))
	cdSq := add(sq(cdx), sq(cdy))

	term1 := mul(adx, sub(mul(bdy, cdSq), mul(cdy, bdSq)))
	term2 := mul(ady, sub(mul(bdx, cdSq), mul(cdx, bdSq)))
	term3 := mul(adSq, sub(mul(bdx, cdy), mul(cdx, bdy)))

	det := add(sub(term1, term2), term3)
	switch det.Sign() {
	case 1:
		return Inside
	case -1:
		return Outside
	default:
		return On
	}
}
