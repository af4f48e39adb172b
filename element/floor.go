package element

import (
	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/mesh"
)

// FloorElement is a horizontal slab bounded by a (possibly non-convex)
// polygon, grounded on pensaer-geometry's FloorElement / export.rs's
// FloorExportData. The slab's solid body runs from Level-Thickness (its
// underside) up to Level (its top, the walkable surface) — an Open
// Question the distilled spec left unresolved; original_source never
// extrudes floor geometry at all, so this is a kernel-side decision.
type FloorElement struct {
	IDValue   string
	Metadata  Metadata
	Boundary  mathx.Polygon2
	Level     float64
	Thickness float64
}

func (f FloorElement) ID() string { return f.IDValue }
func (f FloorElement) Kind() Kind { return KindFloor }

func (f FloorElement) ToMesh() (mesh.Mesh, error) {
	return mesh.Extrude(f.Boundary, f.Level-f.Thickness, f.Thickness)
}

func (f FloorElement) BoundingBox() (mathx.BBox3, error) {
	m, err := f.ToMesh()
	if err != nil {
		return mathx.BBox3{}, err
	}
	return boundingBoxOf(m)
}

// Area returns the boundary's unsigned plan area.
func (f FloorElement) Area() float64 { return f.Boundary.Area() }

// RoofElement is a horizontal slab above a storey, grounded on
// pensaer-geometry's RoofElement / export.rs's RoofExportData. SlopeDegrees
// is carried as metadata only (original_source's own roof export never
// applies it to the exported geometry either — IFCROOF is emitted with a
// flat placement regardless of slope).
type RoofElement struct {
	IDValue       string
	Metadata      Metadata
	Boundary      mathx.Polygon2
	Level         float64
	Thickness     float64
	SlopeDegrees  float64
	RoofType      string
}

func (r RoofElement) ID() string { return r.IDValue }
func (r RoofElement) Kind() Kind { return KindRoof }

func (r RoofElement) ToMesh() (mesh.Mesh, error) {
	return mesh.Extrude(r.Boundary, r.Level, r.Thickness)
}

func (r RoofElement) BoundingBox() (mathx.BBox3, error) {
	m, err := r.ToMesh()
	if err != nil {
		return mathx.BBox3{}, err
	}
	return boundingBoxOf(m)
}

func (r RoofElement) Area() float64 { return r.Boundary.Area() }
