package element

import (
	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/mesh"
	"github.com/pensaer/geokernel/topology"
)

// RoomElement is a space boundary: a closed polygon with no solid geometry
// of its own, grounded on topology.TopoRoom and pensaer-geometry's
// RoomElement / export.rs's RoomExportData. Its mesh is a single flat
// upward-facing polygon at FloorZ, used for plan-view rendering and IFC
// IfcSpace placement, not for clash or extrusion.
type RoomElement struct {
	IDValue  string
	Metadata Metadata
	Number   string
	Boundary mathx.Polygon2
	FloorZ   float64
	Height   float64
}

// NewRoomFromTopoRoom builds a RoomElement from a solved planar-subdivision
// face, taking its vertex positions from g in boundary order.
func NewRoomFromTopoRoom(id string, g *topology.Graph, r *topology.TopoRoom, floorZ, height float64) (RoomElement, error) {
	pts := make([]mathx.Point2, 0, len(r.BoundaryNodes))
	for _, nodeID := range r.BoundaryNodes {
		n, ok := g.Node(nodeID)
		if !ok {
			continue
		}
		pts = append(pts, n.Position)
	}
	boundary, err := mathx.NewPolygon2(pts)
	if err != nil {
		return RoomElement{}, err
	}
	return RoomElement{IDValue: id, Boundary: boundary, FloorZ: floorZ, Height: height}, nil
}

func (r RoomElement) ID() string { return r.IDValue }
func (r RoomElement) Kind() Kind { return KindRoom }

// Area returns the room's unsigned plan area.
func (r RoomElement) Area() float64 { return r.Boundary.Area() }

// Centroid returns the room's area-weighted plan centroid.
func (r RoomElement) Centroid() mathx.Point2 { return r.Boundary.Centroid() }

func (r RoomElement) ToMesh() (mesh.Mesh, error) {
	boundary := r.Boundary.EnsureCCW()
	tris, err := mesh.Triangulate(boundary)
	if err != nil {
		return mesh.Mesh{}, err
	}
	var m mesh.Mesh
	up := mathx.Vector3{X: 0, Y: 0, Z: 1}
	for _, t := range tris {
		a := boundary.At(t[0]).To3(r.FloorZ)
		b := boundary.At(t[1]).To3(r.FloorZ)
		c := boundary.At(t[2]).To3(r.FloorZ)
		appendFlatTriangle(&m, a, b, c, up)
	}
	return m, nil
}

func (r RoomElement) BoundingBox() (mathx.BBox3, error) {
	m, err := r.ToMesh()
	if err != nil {
		return mathx.BBox3{}, err
	}
	return boundingBoxOf(m)
}
