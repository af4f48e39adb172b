package element

import (
	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/mesh"
	"github.com/pensaer/geokernel/topology"
)

// WallElement is a straight wall segment between two points, with openings
// cut all the way through. Grounded on topology.TopoEdge/EdgeData (the
// graph's own wall payload) and pensaer-geometry's WallElement.
type WallElement struct {
	IDValue   string
	Metadata  Metadata
	Start     mathx.Point2
	End       mathx.Point2
	BaseZ     float64
	Height    float64
	Thickness float64
	WallType  string
	Openings  []mesh.RectOpening
}

// NewWallFromEdge builds a WallElement from a topology edge's endpoints and
// payload, converting each baseline-parameter opening into wall-local
// (U, V) coordinates: U runs 0..length along the baseline, V runs 0..height
// from the wall's own base (edge.Data.Openings' SillZ/HeadZ are already
// measured from there per topology.Opening's doc comment).
func NewWallFromEdge(id string, start, end mathx.Point2, baseZ float64, data topology.EdgeData) WallElement {
	length := start.DistanceTo(end)
	openings := make([]mesh.RectOpening, 0, len(data.Openings))
	for _, o := range data.Openings {
		openings = append(openings, mesh.RectOpening{
			U0: o.T0 * length,
			U1: o.T1 * length,
			V0: o.SillZ,
			V1: o.HeadZ,
		})
	}
	return WallElement{
		IDValue:   id,
		Start:     start,
		End:       end,
		BaseZ:     baseZ,
		Height:    data.Height,
		Thickness: data.Thickness,
		WallType:  data.WallType,
		Openings:  openings,
	}
}

func (w WallElement) ID() string  { return w.IDValue }
func (w WallElement) Kind() Kind  { return KindWall }
func (w WallElement) Length() float64 { return w.Start.DistanceTo(w.End) }

// ToMesh extrudes the wall panel (with openings) and seats it at BaseZ.
func (w WallElement) ToMesh() (mesh.Mesh, error) {
	m, err := mesh.ExtrudeWallWithOpenings(w.Start, w.End, w.Thickness, w.Height, w.Openings)
	if err != nil {
		return mesh.Mesh{}, err
	}
	return translateZ(m, w.BaseZ), nil
}

func (w WallElement) BoundingBox() (mathx.BBox3, error) {
	m, err := w.ToMesh()
	if err != nil {
		return mathx.BBox3{}, err
	}
	return boundingBoxOf(m)
}
