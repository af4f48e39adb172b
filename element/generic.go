package element

import (
	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/mesh"
)

// GenericElement is a box-bounded placeholder for element kinds this kernel
// does not model with dedicated geometry (columns, beams, stairs,
// railings, furniture, ceilings): pensaer-geometry gives each of these its
// own extruded-profile type, which is out of this kernel's scope, but
// every element must still answer BoundingBox/ToMesh, so a box stands in.
type GenericElement struct {
	IDValue  string
	Metadata Metadata
	KindTag  Kind
	Box      mathx.BBox3
}

func (g GenericElement) ID() string { return g.IDValue }

// Kind returns KindTag as set by the caller (e.g. KindColumn, KindStair);
// construct with KindTag: KindGeneric explicitly if no more specific kind
// applies, since Kind's zero value is KindWall.
func (g GenericElement) Kind() Kind { return g.KindTag }

func (g GenericElement) BoundingBox() (mathx.BBox3, error) { return g.Box, nil }

func (g GenericElement) ToMesh() (mesh.Mesh, error) {
	min, max := g.Box.Min, g.Box.Max
	poly, err := mathx.NewPolygon2([]mathx.Point2{
		{X: min.X, Y: min.Y}, {X: max.X, Y: min.Y}, {X: max.X, Y: max.Y}, {X: min.X, Y: max.Y},
	})
	if err != nil {
		return mesh.Mesh{}, err
	}
	return mesh.Extrude(poly, min.Z, max.Z-min.Z)
}
