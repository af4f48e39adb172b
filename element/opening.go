package element

import (
	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/mesh"
)

// DoorElement and WindowElement describe an opening cut into a host wall,
// grounded on export.rs's DoorExportData/WindowExportData. The kernel's
// own wall geometry (WallElement.Openings) is what actually cuts the hole;
// these types carry the fixture's own identity, placement, and dimensions
// for mesh preview and IFC export. Placement is resolved by the caller from
// the host wall's baseline, Offset, and (for windows) SillHeight, then
// passed in as a wall-local rectangle the same shape as mesh.RectOpening.
type DoorElement struct {
	IDValue    string
	Metadata   Metadata
	HostWallID string
	Width      float64
	Height     float64
	Offset     float64
	DoorType   string
	Panel      mesh.RectOpening
	ToWorld    func(mathx.Point2) mathx.Point3
}

func (d DoorElement) ID() string { return d.IDValue }
func (d DoorElement) Kind() Kind { return KindDoor }

func (d DoorElement) ToMesh() (mesh.Mesh, error) {
	return flatPanelMesh(d.Panel, d.ToWorld)
}

func (d DoorElement) BoundingBox() (mathx.BBox3, error) {
	m, err := d.ToMesh()
	if err != nil {
		return mathx.BBox3{}, err
	}
	return boundingBoxOf(m)
}

type WindowElement struct {
	IDValue    string
	Metadata   Metadata
	HostWallID string
	Width      float64
	Height     float64
	SillHeight float64
	Offset     float64
	WindowType string
	Panel      mesh.RectOpening
	ToWorld    func(mathx.Point2) mathx.Point3
}

func (w WindowElement) ID() string { return w.IDValue }
func (w WindowElement) Kind() Kind { return KindWindow }

func (w WindowElement) ToMesh() (mesh.Mesh, error) {
	return flatPanelMesh(w.Panel, w.ToWorld)
}

func (w WindowElement) BoundingBox() (mathx.BBox3, error) {
	m, err := w.ToMesh()
	if err != nil {
		return mathx.BBox3{}, err
	}
	return boundingBoxOf(m)
}

// flatPanelMesh builds a two-triangle rectangle for a door or window leaf,
// mapping its wall-local (U, V) rectangle into world space via toWorld
// (typically the host wall's own point-mapping closure).
func flatPanelMesh(rect mesh.RectOpening, toWorld func(mathx.Point2) mathx.Point3) (mesh.Mesh, error) {
	if toWorld == nil {
		return mesh.Mesh{}, ErrEmptyBoundary
	}
	corners := [4]mathx.Point2{
		{X: rect.U0, Y: rect.V0},
		{X: rect.U1, Y: rect.V0},
		{X: rect.U1, Y: rect.V1},
		{X: rect.U0, Y: rect.V1},
	}
	a, b, c, d := toWorld(corners[0]), toWorld(corners[1]), toWorld(corners[2]), toWorld(corners[3])
	ab := mathx.Vector3{X: b.X - a.X, Y: b.Y - a.Y, Z: b.Z - a.Z}
	ad := mathx.Vector3{X: d.X - a.X, Y: d.Y - a.Y, Z: d.Z - a.Z}
	n := ab.Cross(ad)
	unit, err := n.Normalize()
	if err != nil {
		unit = mathx.Vector3{X: 0, Y: 0, Z: 1}
	}
	var m mesh.Mesh
	appendFlatTriangle(&m, a, b, c, unit)
	appendFlatTriangle(&m, a, c, d, unit)
	return m, nil
}
