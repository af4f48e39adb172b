package mesh

import "github.com/pensaer/geokernel/mathx"

// openingBoundaryShrink is how far a rectangular opening's edge is pulled
// inward when it touches the wall panel's outer boundary, so the hole
// never shares a coincident edge with the outer polygon (spec §4.I).
const openingBoundaryShrink = 1e-3

// RectOpening is a rectangular door/window cut in wall-local coordinates:
// U runs along the wall's baseline from 0 at start to the wall length, V
// runs from 0 at the floor to the wall height.
type RectOpening struct {
	U0, V0, U1, V1 float64
}

// ExtrudeWallWithOpenings builds a wall slab of the given thickness and
// height over baseline (start, end), cutting each opening all the way
// through (spec §4.I): both faces are triangulated with the openings as
// holes (ε-shrinking any opening edge flush with the panel boundary),
// mirrored front-to-back, and the outer perimeter plus every opening
// reveal is closed with quads.
func ExtrudeWallWithOpenings(start, end mathx.Point2, thickness, height float64, openings []RectOpening) (Mesh, error) {
	if height <= 0 {
		return Mesh{}, ErrNonPositiveHeight
	}
	if thickness <= 0 {
		return Mesh{}, ErrNonPositiveThickness
	}
	dir, err := end.Sub(start).Normalize()
	if err != nil {
		return Mesh{}, ErrDegenerateWallBaseline
	}
	length := start.DistanceTo(end)

	mapPoint := func(p mathx.Point2) mathx.Point3 {
		return start.Add(dir.Scale(p.X)).To3(p.Y)
	}
	mapVec := func(v mathx.Vector2) mathx.Vector3 {
		return dir.To3().Scale(v.X).Add(upZ.Scale(v.Y))
	}
	perp := dir.Perp() // unit, since dir is unit and Perp preserves length
	frontDepth := perp.To3().Scale(thickness / 2)
	backDepth := perp.To3().Scale(-thickness / 2)

	frontPoint := func(p mathx.Point2) mathx.Point3 { return mapPoint(p).Add(frontDepth) }
	backPoint := func(p mathx.Point2) mathx.Point3 { return mapPoint(p).Add(backDepth) }
	frontNormal := perp.To3()
	backNormal := perp.To3().Negate()

	outer, err := mathx.NewPolygon2([]mathx.Point2{
		{X: 0, Y: 0}, {X: length, Y: 0}, {X: length, Y: height}, {X: 0, Y: height},
	})
	if err != nil {
		return Mesh{}, err
	}
	holes := make([]mathx.Polygon2, 0, len(openings))
	for _, o := range openings {
		u0, v0, u1, v1 := shrinkOpening(o, length, height)
		hole, err := mathx.NewPolygon2([]mathx.Point2{
			{X: u0, Y: v0}, {X: u0, Y: v1}, {X: u1, Y: v1}, {X: u1, Y: v0},
		})
		if err != nil {
			return Mesh{}, err
		}
		holes = append(holes, hole)
	}

	var faceTris [][3]mathx.Point2
	if len(holes) == 0 {
		idxTris, err := Triangulate(outer)
		if err != nil {
			return Mesh{}, err
		}
		faceTris = make([][3]mathx.Point2, len(idxTris))
		for i, t := range idxTris {
			faceTris[i] = [3]mathx.Point2{outer.At(t[0]), outer.At(t[1]), outer.At(t[2])}
		}
	} else {
		faceTris, err = TriangulateWithHoles(outer, holes)
		if err != nil {
			return Mesh{}, err
		}
	}

	var m Mesh
	for _, t := range faceTris {
		m.addFlatTriangle(frontPoint(t[0]), frontPoint(t[1]), frontPoint(t[2]), frontNormal)
		// mirrored to the back face: reverse winding so the visible side still faces outward
		m.addFlatTriangle(backPoint(t[0]), backPoint(t[2]), backPoint(t[1]), backNormal)
	}

	addDepthQuads := func(poly mathx.Polygon2) {
		n := poly.N()
		for i := 0; i < n; i++ {
			p0, p1 := poly.At(i), poly.At((i+1)%n)
			addDepthQuad(&m, p0, p1, frontPoint, backPoint, mapVec)
		}
	}
	addDepthQuads(outer.EnsureCCW())
	for _, h := range holes {
		addDepthQuads(h.EnsureCW())
	}
	return m, nil
}

// shrinkOpening pulls any edge of o flush with the panel's outer boundary
// inward by openingBoundaryShrink.
func shrinkOpening(o RectOpening, length, height float64) (u0, v0, u1, v1 float64) {
	u0, v0, u1, v1 = o.U0, o.V0, o.U1, o.V1
	if u0 <= 0 {
		u0 = openingBoundaryShrink
	}
	if v0 <= 0 {
		v0 = openingBoundaryShrink
	}
	if u1 >= length {
		u1 = length - openingBoundaryShrink
	}
	if v1 >= height {
		v1 = height - openingBoundaryShrink
	}
	return u0, v0, u1, v1
}

// addDepthQuad emits the two triangles of the panel edge running from p0 to
// p1 (wall-local 2D), spanning the wall's thickness from front to back.
// The outward normal — away from the panel's own interior, whether p0/p1
// trace the outer boundary or a hole — is the edge direction rotated -90
// degrees, mapped into world space.
func addDepthQuad(m *Mesh, p0, p1 mathx.Point2, frontPoint, backPoint func(mathx.Point2) mathx.Point3, mapVec func(mathx.Vector2) mathx.Vector3) {
	edge := p1.Sub(p0)
	outward2D := mathx.Vector2{X: edge.Y, Y: -edge.X}
	normal, err := mapVec(outward2D).Normalize()
	if err != nil {
		return
	}
	a, b := frontPoint(p0), frontPoint(p1)
	c, d := backPoint(p1), backPoint(p0)
	m.addFlatTriangle(a, b, c, normal)
	m.addFlatTriangle(a, c, d, normal)
}
