package mesh

import "github.com/pensaer/geokernel/mathx"

// Face is one triangle: three indices into Mesh.Vertices plus one index
// into Mesh.Normals (shared by all three corners — meshes produced by this
// package are all flat-shaded per face).
type Face struct {
	Vertices [3]int
	Normal   int
}

// Mesh is a flat-shaded indexed triangle mesh.
type Mesh struct {
	Vertices []mathx.Point3
	Normals  []mathx.Vector3
	Faces    []Face
}

// addVertex appends p and returns its index.
func (m *Mesh) addVertex(p mathx.Point3) int {
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1
}

// addNormal appends n and returns its index.
func (m *Mesh) addNormal(n mathx.Vector3) int {
	m.Normals = append(m.Normals, n)
	return len(m.Normals) - 1
}

// addTriangle records a face over three already-inserted vertex indices,
// sharing one normal index across all three corners.
func (m *Mesh) addTriangle(a, b, c, normalIdx int) {
	m.Faces = append(m.Faces, Face{Vertices: [3]int{a, b, c}, Normal: normalIdx})
}

// addFlatTriangle inserts three fresh vertices and one normal computed from
// their winding (a, b, c right-hand-rule), and records the face.
func (m *Mesh) addFlatTriangle(a, b, c mathx.Point3, normal mathx.Vector3) {
	ia, ib, ic := m.addVertex(a), m.addVertex(b), m.addVertex(c)
	m.addTriangle(ia, ib, ic, m.addNormal(normal))
}
