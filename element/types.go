package element

import (
	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/mesh"
)

// Kind classifies a BIM element. Mirrors pensaer-geometry's ElementType,
// kept in full even though this kernel only generates geometry for a
// subset (Column/Beam/Stair/Railing/Furniture/Ceiling carry metadata only
// and use Generic's flat-box mesh, same as the Rust original's untyped
// fallback elements).
type Kind int

const (
	KindWall Kind = iota
	KindFloor
	KindCeiling
	KindRoof
	KindColumn
	KindBeam
	KindDoor
	KindWindow
	KindOpening
	KindRoom
	KindStair
	KindRailing
	KindFurniture
	KindGeneric
)

// String returns the human-readable element kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "Wall"
	case KindFloor:
		return "Floor"
	case KindCeiling:
		return "Ceiling"
	case KindRoof:
		return "Roof"
	case KindColumn:
		return "Column"
	case KindBeam:
		return "Beam"
	case KindDoor:
		return "Door"
	case KindWindow:
		return "Window"
	case KindOpening:
		return "Opening"
	case KindRoom:
		return "Room"
	case KindStair:
		return "Stair"
	case KindRailing:
		return "Railing"
	case KindFurniture:
		return "Furniture"
	default:
		return "Generic"
	}
}

// Metadata is the data common to every element kind.
type Metadata struct {
	Name        string
	Description string
	LevelID     string
	Properties  map[string]string
}

// SetProperty records a custom key/value pair, initializing Properties if
// necessary.
func (m *Metadata) SetProperty(key, value string) {
	if m.Properties == nil {
		m.Properties = make(map[string]string)
	}
	m.Properties[key] = value
}

// GetProperty returns the value for key and whether it was present.
func (m Metadata) GetProperty(key string) (string, bool) {
	v, ok := m.Properties[key]
	return v, ok
}

// Element is satisfied by every BIM element kind this kernel models.
type Element interface {
	ID() string
	Kind() Kind
	BoundingBox() (mathx.BBox3, error)
	ToMesh() (mesh.Mesh, error)
}

// boundingBoxOf returns the AABB of m's vertices, or ErrEmptyBoundary for an
// empty mesh.
func boundingBoxOf(m mesh.Mesh) (mathx.BBox3, error) {
	if len(m.Vertices) == 0 {
		return mathx.BBox3{}, ErrEmptyBoundary
	}
	return mathx.NewBBox3(m.Vertices...), nil
}

// appendFlatTriangle appends a, b, c and a shared normal to m as a new face.
// mesh.Mesh's own addFlatTriangle is unexported, but its fields are plain
// exported slices, so building a flat-shaded mesh from outside the package
// is just appending to them directly.
func appendFlatTriangle(m *mesh.Mesh, a, b, c mathx.Point3, normal mathx.Vector3) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, a, b, c)
	normalIdx := len(m.Normals)
	m.Normals = append(m.Normals, normal)
	m.Faces = append(m.Faces, mesh.Face{Vertices: [3]int{base, base + 1, base + 2}, Normal: normalIdx})
}

// translateZ shifts every vertex of m by dz, used to seat a locally-built
// mesh (which always starts at its own z=0) at an element's actual level.
func translateZ(m mesh.Mesh, dz float64) mesh.Mesh {
	if dz == 0 {
		return m
	}
	out := mesh.Mesh{Vertices: make([]mathx.Point3, len(m.Vertices)), Normals: m.Normals, Faces: m.Faces}
	for i, v := range m.Vertices {
		out.Vertices[i] = mathx.Point3{X: v.X, Y: v.Y, Z: v.Z + dz}
	}
	return out
}
