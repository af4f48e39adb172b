package mesh

import "github.com/pensaer/geokernel/mathx"

var upZ = mathx.Vector3{X: 0, Y: 0, Z: 1}
var downZ = mathx.Vector3{X: 0, Y: 0, Z: -1}

// Extrude produces a closed solid from a simple 2D footprint and a height
// (spec §4.I): bottom cap at z0 with reversed winding (normal -Z), top cap
// at z0+height with the polygon's own winding (normal +Z) — both
// triangulated once and emitted twice — plus one outward-facing quad per
// boundary edge.
func Extrude(poly mathx.Polygon2, z0, height float64) (Mesh, error) {
	if height <= 0 {
		return Mesh{}, ErrNonPositiveHeight
	}
	ccw := poly.EnsureCCW()
	tris, err := Triangulate(ccw)
	if err != nil {
		return Mesh{}, err
	}

	var m Mesh
	z1 := z0 + height

	for _, t := range tris {
		a, b, c := ccw.At(t[0]), ccw.At(t[1]), ccw.At(t[2])
		m.addFlatTriangle(a.To3(z1), b.To3(z1), c.To3(z1), upZ)
		// reversed winding on the bottom cap flips the visible face to -Z
		m.addFlatTriangle(a.To3(z0), c.To3(z0), b.To3(z0), downZ)
	}

	n := ccw.N()
	for i := 0; i < n; i++ {
		p0, p1 := ccw.At(i), ccw.At((i+1)%n)
		addSideQuad(&m, p0, p1, z0, z1)
	}
	return m, nil
}

// addSideQuad emits the two triangles of the wall panel standing over edge
// (p0, p1), with outward normal = edge x +Z, normalized.
func addSideQuad(m *Mesh, p0, p1 mathx.Point2, z0, z1 float64) {
	edge := p1.Sub(p0)
	outward := edge.To3().Cross(upZ)
	normal, err := outward.Normalize()
	if err != nil {
		return // zero-length edge: nothing to emit
	}

	bl := p0.To3(z0)
	br := p1.To3(z0)
	tr := p1.To3(z1)
	tl := p0.To3(z1)
	m.addFlatTriangle(bl, br, tr, normal)
	m.addFlatTriangle(bl, tr, tl, normal)
}
