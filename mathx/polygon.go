package mathx

import "math"

// Polygon2 is an ordered vertex sequence (>= 3 points) with an implicit
// closing edge from the last vertex back to the first.
type Polygon2 struct {
	Vertices []Point2
}

// NewPolygon2 validates vertex count and returns a Polygon2.
func NewPolygon2(vertices []Point2) (Polygon2, error) {
	if len(vertices) < 3 {
		return Polygon2{}, ErrInsufficientVertices
	}
	cp := make([]Point2, len(vertices))
	copy(cp, vertices)
	return Polygon2{Vertices: cp}, nil
}

// N returns the vertex count.
func (p Polygon2) N() int { return len(p.Vertices) }

// At returns vertex i modulo N, supporting negative indices.
func (p Polygon2) At(i int) Point2 {
	n := len(p.Vertices)
	return p.Vertices[((i%n)+n)%n]
}

// SignedArea returns the shoelace signed area: positive for CCW winding.
func (p Polygon2) SignedArea() float64 {
	n := len(p.Vertices)
	sum := 0.0
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsCCW reports whether the polygon winds counter-clockwise.
func (p Polygon2) IsCCW() bool { return p.SignedArea() > 0 }

// Area returns the unsigned area.
func (p Polygon2) Area() float64 { return math.Abs(p.SignedArea()) }

// Centroid returns the area-weighted centroid via the standard shoelace
// centroid formula. Falls back to the vertex average for zero-area
// (degenerate) polygons.
func (p Polygon2) Centroid() Point2 {
	n := len(p.Vertices)
	a := p.SignedArea()
	if math.Abs(a) < Epsilon {
		var sx, sy float64
		for _, v := range p.Vertices {
			sx += v.X
			sy += v.Y
		}
		return Point2{sx / float64(n), sy / float64(n)}
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		v0 := p.Vertices[i]
		v1 := p.Vertices[(i+1)%n]
		cross := v0.X*v1.Y - v1.X*v0.Y
		cx += (v0.X + v1.X) * cross
		cy += (v0.Y + v1.Y) * cross
	}
	factor := 1.0 / (6 * a)
	return Point2{cx * factor, cy * factor}
}

// Reversed returns the polygon with vertex order reversed (flips winding).
func (p Polygon2) Reversed() Polygon2 {
	n := len(p.Vertices)
	out := make([]Point2, n)
	for i, v := range p.Vertices {
		out[n-1-i] = v
	}
	return Polygon2{Vertices: out}
}

// EnsureCCW returns p unchanged if already CCW, or reversed otherwise.
func (p Polygon2) EnsureCCW() Polygon2 {
	if p.IsCCW() {
		return p
	}
	return p.Reversed()
}

// EnsureCW returns p unchanged if already CW, or reversed otherwise.
func (p Polygon2) EnsureCW() Polygon2 {
	if !p.IsCCW() {
		return p
	}
	return p.Reversed()
}

// IsConvex reports whether every vertex is a convex turn (per
// IsConvexVertex, oriented consistently with the polygon's own winding);
// collinear triples are skipped rather than failing the test.
func (p Polygon2) IsConvex() bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	ccw := p.IsCCW()
	sawTurn := false
	for i := 0; i < n; i++ {
		prev := p.At(i - 1)
		curr := p.At(i)
		next := p.At(i + 1)
		o := OrientationOf(prev, curr, next)
		if o == Collinear {
			continue
		}
		sawTurn = true
		wantCCW := o == CounterClockwise
		if wantCCW != ccw {
			return false
		}
	}
	return sawTurn
}

// ContainsPoint reports whether p lies inside the polygon using the
// winding-number method with a robust orientation test per edge; points
// exactly on the boundary are considered contained.
func (poly Polygon2) ContainsPoint(p Point2) bool {
	n := len(poly.Vertices)
	winding := 0
	for i := 0; i < n; i++ {
		a := poly.At(i)
		b := poly.At(i + 1)
		if onBoundarySegment(a, b, p) {
			return true
		}
		if a.Y <= p.Y {
			if b.Y > p.Y && OrientationOf(a, b, p) == CounterClockwise {
				winding++
			}
		} else {
			if b.Y <= p.Y && OrientationOf(a, b, p) == Clockwise {
				winding--
			}
		}
	}
	return winding != 0
}

func onBoundarySegment(a, b, p Point2) bool {
	return OrientationOf(a, b, p) == Collinear && onSegment(a, b, p)
}

// IsSimple reports whether no two non-adjacent edges properly intersect.
// IsSimple MUST hold for any polygon participating in triangulation or
// containment tests (§3).
func (p Polygon2) IsSimple() bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		e1 := Segment2{p.At(i), p.At(i + 1)}
		for j := i + 1; j < n; j++ {
			if j == i {
				continue
			}
			// Skip edges adjacent to e1 (share a vertex).
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			e2 := Segment2{p.At(j), p.At(j + 1)}
			if e1.ProperlyIntersects(e2) {
				return false
			}
		}
	}
	return true
}

// Simplify removes exactly-collinear vertices, then near-collinear vertices
// whose interior angle deviates from pi by less than angleTol radians.
func (p Polygon2) Simplify(angleTol float64) Polygon2 {
	verts := p.Vertices
	// Pass 1: exact collinearity.
	verts = dropCollinear(verts, func(prev, curr, next Point2) bool {
		return OrientationOf(prev, curr, next) == Collinear
	})
	// Pass 2: near-collinear by angle tolerance.
	verts = dropCollinear(verts, func(prev, curr, next Point2) bool {
		u := curr.Sub(prev)
		v := next.Sub(curr)
		if u.LengthSquared() < Epsilon*Epsilon || v.LengthSquared() < Epsilon*Epsilon {
			return false
		}
		angle := AngleBetween(u, v)
		return math.Abs(angle) < angleTol
	})
	return Polygon2{Vertices: verts}
}

// dropCollinear removes vertices for which isRedundant(prev, curr, next)
// holds, iterating until stable or fewer than 3 vertices remain.
func dropCollinear(verts []Point2, isRedundant func(prev, curr, next Point2) bool) []Point2 {
	for {
		n := len(verts)
		if n <= 3 {
			return verts
		}
		out := make([]Point2, 0, n)
		changed := false
		for i := 0; i < n; i++ {
			prev := verts[(i-1+n)%n]
			curr := verts[i]
			next := verts[(i+1)%n]
			if isRedundant(prev, curr, next) {
				changed = true
				continue
			}
			out = append(out, curr)
		}
		if !changed || len(out) < 3 {
			return out
		}
		verts = out
	}
}

// Offset returns a parallel miter offset of the polygon: each edge is
// displaced by dist along its outward normal (positive dist expands a CCW
// polygon), and consecutive offset edges are rejoined at the intersection
// of their carrier lines, scaled by 1/cos(theta/2) at each vertex. Not
// guaranteed to be self-simple for concave inputs; callers must validate
// with IsSimple if that matters.
func (p Polygon2) Offset(dist float64) Polygon2 {
	n := len(p.Vertices)
	out := make([]Point2, n)
	for i := 0; i < n; i++ {
		prev := p.At(i - 1)
		curr := p.At(i)
		next := p.At(i + 1)

		inDir, err1 := curr.Sub(prev).Normalize()
		outDir, err2 := next.Sub(curr).Normalize()
		if err1 != nil {
			inDir = outDir
		}
		if err2 != nil {
			outDir = inDir
		}
		nIn := Vector2{inDir.Y, -inDir.X}
		nOut := Vector2{outDir.Y, -outDir.X}
		bis := nIn.Add(nOut)
		bl := bis.Length()
		if bl < Epsilon {
			out[i] = curr.Add(nIn.Scale(dist))
			continue
		}
		bis = bis.Scale(1 / bl)
		cosHalf := bis.Dot(nIn)
		if math.Abs(cosHalf) < Epsilon {
			out[i] = curr.Add(nIn.Scale(dist))
			continue
		}
		out[i] = curr.Add(bis.Scale(dist / cosHalf))
	}
	return Polygon2{Vertices: out}
}

// Perimeter returns the sum of edge lengths including the closing edge.
func (p Polygon2) Perimeter() float64 {
	n := len(p.Vertices)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += p.At(i).DistanceTo(p.At(i + 1))
	}
	return sum
}

// BBox returns the axis-aligned bounding box of the polygon's vertices.
func (p Polygon2) BBox() BBox2 { return NewBBox2(p.Vertices...) }
