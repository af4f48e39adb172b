package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensaer/geokernel/mathx"
)

func TestSnapMergeNodesCoalescesCluster(t *testing.T) {
	g := NewGraph(WithSnapTolerance(10))

	a := g.FindOrCreateNode(mathx.Point2{X: 0, Y: 0})
	b := g.FindOrCreateNode(mathx.Point2{X: 2000, Y: 0})
	_, err := g.AddEdgeBetweenNodes(a, b, EdgeData{})
	require.NoError(t, err)

	// A second node a hair away from a, within tolerance, with its own edge.
	c := g.FindOrCreateNode(mathx.Point2{X: 3, Y: 4}) // distance 5 from a, within tol 10
	e := g.FindOrCreateNode(mathx.Point2{X: 0, Y: 2000})
	_, err = g.AddEdgeBetweenNodes(c, e, EdgeData{})
	require.NoError(t, err)

	require.Equal(t, 4, g.NodeCount())

	g.Lock()
	g.SnapMergeNodes()
	g.Unlock()

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestSplitCrossingsSplitsIntersectingEdges(t *testing.T) {
	g := NewGraph()
	_, err := g.AddEdge(mathx.Point2{X: 0, Y: 500}, mathx.Point2{X: 1000, Y: 500}, EdgeData{})
	require.NoError(t, err)
	_, err = g.AddEdge(mathx.Point2{X: 500, Y: 0}, mathx.Point2{X: 500, Y: 1000}, EdgeData{})
	require.NoError(t, err)

	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())

	g.Lock()
	g.SplitCrossings()
	g.Unlock()

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestMergeColinearCollapsesThroughNode(t *testing.T) {
	g := NewGraph()
	id, err := g.AddEdge(mathx.Point2{X: 0, Y: 0}, mathx.Point2{X: 1000, Y: 0}, EdgeData{Thickness: 150})
	require.NoError(t, err)
	mid, _, _, err := g.SplitEdge(id, mathx.Point2{X: 500, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())

	n, ok := g.Node(mid)
	require.True(t, ok)
	assert.Equal(t, 2, n.Degree())

	g.Lock()
	g.MergeColinear()
	g.Unlock()

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestMergeColinearPreservesJunction(t *testing.T) {
	g := NewGraph()
	id, err := g.AddEdge(mathx.Point2{X: 0, Y: 0}, mathx.Point2{X: 1000, Y: 0}, EdgeData{})
	require.NoError(t, err)
	mid, _, _, err := g.SplitEdge(id, mathx.Point2{X: 500, Y: 0})
	require.NoError(t, err)

	// A third edge branching off the midpoint makes it a junction (degree 3);
	// it must survive merge-colinear untouched.
	n, ok := g.Node(mid)
	require.True(t, ok)
	_, err = g.AddEdgeBetweenNodes(mid, g.FindOrCreateNode(mathx.Point2{X: 500, Y: 1000}), EdgeData{})
	require.NoError(t, err)
	assert.Equal(t, 3, n.Degree())

	g.Lock()
	g.MergeColinear()
	g.Unlock()

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestHealEndToEndRebuildsRoomAfterCrossSplit(t *testing.T) {
	g := NewGraph()

	// A square plus a diagonal-ish cross brace that properly intersects one
	// side, forcing split-crossings before the room can close.
	buildSquare(t, g)
	_, err := g.AddEdge(mathx.Point2{X: -500, Y: 500}, mathx.Point2{X: 500, Y: 500}, EdgeData{})
	require.NoError(t, err)

	g.Lock()
	g.Heal(nil)
	g.Unlock()

	assert.GreaterOrEqual(t, g.NodeCount(), 5)
	interior := g.InteriorRooms()
	require.Len(t, interior, 1)
	assert.InDelta(t, 1_000_000.0, interior[0].Area(), 1e-6)
}
