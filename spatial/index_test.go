package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/spatial"
)

func TestNodeIndexWithinRadiusAndNearest(t *testing.T) {
	idx := spatial.NewNodeIndex()
	idx.Insert("a", mathx.Point2{X: 0, Y: 0})
	idx.Insert("b", mathx.Point2{X: 10, Y: 0})
	idx.Insert("c", mathx.Point2{X: 0.3, Y: 0})

	ids := idx.WithinRadius(mathx.Point2{X: 0, Y: 0}, 1)
	assert.ElementsMatch(t, []string{"a", "c"}, ids)

	nearest, ok := idx.Nearest(mathx.Point2{X: 9, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, "b", nearest)
}

func TestNodeIndexRemoveAndRebuild(t *testing.T) {
	idx := spatial.NewNodeIndex()
	idx.Insert("a", mathx.Point2{X: 0, Y: 0})
	idx.Insert("b", mathx.Point2{X: 5, Y: 5})
	idx.Remove("a")
	assert.Equal(t, 1, idx.Len())

	idx.Rebuild(map[string]mathx.Point2{"x": {X: 1, Y: 1}, "y": {X: 2, Y: 2}})
	assert.Equal(t, 2, idx.Len())
}

func TestEdgeIndexPotentiallyIntersecting(t *testing.T) {
	idx := spatial.NewEdgeIndex()
	idx.Insert("e1", mathx.Point2{X: 0, Y: 0}, mathx.Point2{X: 10, Y: 0})
	idx.Insert("e2", mathx.Point2{X: 5, Y: -5}, mathx.Point2{X: 5, Y: 5})
	idx.Insert("e3", mathx.Point2{X: 100, Y: 100}, mathx.Point2{X: 200, Y: 200})

	hits := idx.PotentiallyIntersecting(mathx.Point2{X: 0, Y: 0}, mathx.Point2{X: 10, Y: 0})
	assert.Contains(t, hits, "e1")
	assert.Contains(t, hits, "e2")
	assert.NotContains(t, hits, "e3")
}
