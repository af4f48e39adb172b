package mathx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensaer/geokernel/mathx"
)

func square() mathx.Polygon2 {
	p, _ := mathx.NewPolygon2([]mathx.Point2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	})
	return p
}

func TestPolygonSignedAreaAndWinding(t *testing.T) {
	p := square()
	assert.Equal(t, 16.0, p.SignedArea())
	assert.True(t, p.IsCCW())

	rev := p.Reversed()
	assert.False(t, rev.IsCCW())
	assert.Equal(t, -16.0, rev.SignedArea())
}

func TestPolygonIsConvex(t *testing.T) {
	assert.True(t, square().IsConvex())

	lshape, err := mathx.NewPolygon2([]mathx.Point2{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
	})
	require.NoError(t, err)
	assert.False(t, lshape.IsConvex())
}

func TestPolygonContainsPoint(t *testing.T) {
	p := square()
	assert.True(t, p.ContainsPoint(mathx.Point2{X: 2, Y: 2}))
	assert.False(t, p.ContainsPoint(mathx.Point2{X: 5, Y: 5}))
	assert.True(t, p.ContainsPoint(mathx.Point2{X: 0, Y: 2}))
}

func TestPolygonIsSimple(t *testing.T) {
	assert.True(t, square().IsSimple())

	bowtie, err := mathx.NewPolygon2([]mathx.Point2{
		{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 4},
	})
	require.NoError(t, err)
	assert.False(t, bowtie.IsSimple())
}

func TestPolygonCentroidOfSquare(t *testing.T) {
	c := square().Centroid()
	assert.InDelta(t, 2, c.X, 1e-9)
	assert.InDelta(t, 2, c.Y, 1e-9)
}
