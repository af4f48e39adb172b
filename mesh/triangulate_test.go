package mesh_test

import (
	"testing"

	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) mathx.Polygon2 {
	poly, _ := mathx.NewPolygon2([]mathx.Point2{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side},
	})
	return poly
}

func TestTriangulateSquareProducesTwoTriangles(t *testing.T) {
	tris, err := mesh.Triangulate(square(1000))
	require.NoError(t, err)
	assert.Len(t, tris, 2)
}

func TestTriangulateReversesClockwiseInput(t *testing.T) {
	poly, err := mathx.NewPolygon2([]mathx.Point2{
		{X: 0, Y: 0}, {X: 0, Y: 1000}, {X: 1000, Y: 1000}, {X: 1000, Y: 0},
	})
	require.NoError(t, err)
	require.False(t, poly.IsCCW())

	tris, err := mesh.Triangulate(poly)
	require.NoError(t, err)
	assert.Len(t, tris, 2)
}

func TestTriangulateLShapeCoversFullArea(t *testing.T) {
	poly, err := mathx.NewPolygon2([]mathx.Point2{
		{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 500},
		{X: 500, Y: 500}, {X: 500, Y: 1000}, {X: 0, Y: 1000},
	})
	require.NoError(t, err)

	tris, err := mesh.Triangulate(poly)
	require.NoError(t, err)
	assert.Len(t, tris, 4)

	var total float64
	for _, tri := range tris {
		a, b, c := poly.At(tri[0]), poly.At(tri[1]), poly.At(tri[2])
		total += triangleArea(a, b, c)
	}
	assert.InDelta(t, poly.Area(), total, 1e-6)
}

func triangleArea(a, b, c mathx.Point2) float64 {
	return 0.5 * ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
}

func TestTriangulateTooFewVerticesFails(t *testing.T) {
	_, err := mathx.NewPolygon2([]mathx.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.ErrorIs(t, err, mathx.ErrInsufficientVertices)
}
