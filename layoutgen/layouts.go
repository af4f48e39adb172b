package layoutgen

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pensaer/geokernel/builder"
	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/topology"
)

// GridFloorPlan lays out rows×cols rooms on an orthogonal lattice spaced
// cellSizeMM apart, wiring builder.Grid's "r,c" vertices to a topology
// graph one wall edge at a time.
func GridFloorPlan(rows, cols int, cellSizeMM float64, data topology.EdgeData) (*topology.Graph, error) {
	if cellSizeMM <= 0 {
		return nil, fmt.Errorf("layoutgen: cellSizeMM must be positive")
	}
	abstract, err := builder.BuildGraph(nil, nil, builder.Grid(rows, cols))
	if err != nil {
		return nil, err
	}

	positions := make(map[string]mathx.Point2, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := fmt.Sprintf("%d,%d", r, c)
			positions[id] = mathx.Point2{X: float64(c) * cellSizeMM, Y: float64(r) * cellSizeMM}
		}
	}
	return assemble(abstract, positions, data)
}

// CorridorFloorPlan lays out n rooms in a single-file line, spacingMM
// apart, wiring builder.Path's sequential vertices into a straight
// corridor of wall edges.
func CorridorFloorPlan(n int, spacingMM float64, data topology.EdgeData) (*topology.Graph, error) {
	if spacingMM <= 0 {
		return nil, fmt.Errorf("layoutgen: spacingMM must be positive")
	}
	abstract, err := builder.BuildGraph(nil, nil, builder.Path(n))
	if err != nil {
		return nil, err
	}

	positions := make(map[string]mathx.Point2, n)
	for i := 0; i < n; i++ {
		positions[strconv.Itoa(i)] = mathx.Point2{X: float64(i) * spacingMM, Y: 0}
	}
	return assemble(abstract, positions, data)
}

// RingFloorPlan lays out n rooms evenly spaced around a circle of the
// given radius, wiring builder.Cycle's vertices into a closed perimeter
// loop — e.g. a ring corridor or annular floor plate.
func RingFloorPlan(n int, radiusMM float64, data topology.EdgeData) (*topology.Graph, error) {
	if radiusMM <= 0 {
		return nil, fmt.Errorf("layoutgen: radiusMM must be positive")
	}
	abstract, err := builder.BuildGraph(nil, nil, builder.Cycle(n))
	if err != nil {
		return nil, err
	}
	return assemble(abstract, polarPositions(n, radiusMM), data)
}

// HubAndSpokeFloorPlan places one hub room at the origin and n-1 leaf
// rooms evenly spaced around it at the given radius, wiring builder.Star's
// hub-and-spoke vertices — e.g. a central lobby serving surrounding rooms.
func HubAndSpokeFloorPlan(n int, radiusMM float64, data topology.EdgeData) (*topology.Graph, error) {
	if radiusMM <= 0 {
		return nil, fmt.Errorf("layoutgen: radiusMM must be positive")
	}
	abstract, err := builder.BuildGraph(nil, nil, builder.Star(n))
	if err != nil {
		return nil, err
	}

	leaves := n - 1
	positions := make(map[string]mathx.Point2, n)
	positions[builder.CenterVertexID] = mathx.Point2{X: 0, Y: 0}
	for i := 1; i <= leaves; i++ {
		theta := 2 * math.Pi * float64(i-1) / float64(leaves)
		positions[strconv.Itoa(i)] = mathx.Point2{X: radiusMM * math.Cos(theta), Y: radiusMM * math.Sin(theta)}
	}
	return assemble(abstract, positions, data)
}

// WheelFloorPlan places a hub room at the origin surrounded by a ring of
// n-1 rooms at the given radius, each ring room also door-connected to its
// two ring neighbors, wiring builder.Wheel — e.g. a central atrium with a
// perimeter corridor.
func WheelFloorPlan(n int, radiusMM float64, data topology.EdgeData) (*topology.Graph, error) {
	if radiusMM <= 0 {
		return nil, fmt.Errorf("layoutgen: radiusMM must be positive")
	}
	abstract, err := builder.BuildGraph(nil, nil, builder.Wheel(n))
	if err != nil {
		return nil, err
	}

	ringN := n - 1
	positions := polarPositions(ringN, radiusMM)
	positions[builder.CenterVertexID] = mathx.Point2{X: 0, Y: 0}
	return assemble(abstract, positions, data)
}

// CourtyardFloorPlan places n rooms evenly around a circle, each directly
// door-connected to every other, wiring builder.Complete — a fully meshed
// ring of rooms all opening onto a shared central courtyard. Meaningful
// only for small n; K_n's O(n²) edges quickly stop looking like a floor
// plan as n grows.
func CourtyardFloorPlan(n int, radiusMM float64, data topology.EdgeData) (*topology.Graph, error) {
	if radiusMM <= 0 {
		return nil, fmt.Errorf("layoutgen: radiusMM must be positive")
	}
	abstract, err := builder.BuildGraph(nil, nil, builder.Complete(n))
	if err != nil {
		return nil, err
	}
	return assemble(abstract, polarPositions(n, radiusMM), data)
}

// TwoWingFloorPlan places n1 rooms in a left column and n2 rooms in a right
// column, wingGapMM apart, spacingMM between rooms within a column, every
// left room door-connected to every right room, wiring
// builder.CompleteBipartite — a shared double-loaded corridor between two
// wings.
func TwoWingFloorPlan(n1, n2 int, wingGapMM, spacingMM float64, data topology.EdgeData) (*topology.Graph, error) {
	if wingGapMM <= 0 || spacingMM <= 0 {
		return nil, fmt.Errorf("layoutgen: wingGapMM and spacingMM must be positive")
	}
	abstract, err := builder.BuildGraph(nil, nil, builder.CompleteBipartite(n1, n2))
	if err != nil {
		return nil, err
	}

	positions := make(map[string]mathx.Point2, n1+n2)
	for i := 0; i < n1; i++ {
		positions[fmt.Sprintf("L%d", i)] = mathx.Point2{X: 0, Y: float64(i) * spacingMM}
	}
	for j := 0; j < n2; j++ {
		positions[fmt.Sprintf("R%d", j)] = mathx.Point2{X: wingGapMM, Y: float64(j) * spacingMM}
	}
	return assemble(abstract, positions, data)
}

// polarPositions assigns n points evenly spaced around a circle of radiusMM,
// labelled by their decimal builder.DefaultIDFn index.
func polarPositions(n int, radiusMM float64) map[string]mathx.Point2 {
	positions := make(map[string]mathx.Point2, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		positions[strconv.Itoa(i)] = mathx.Point2{X: radiusMM * math.Cos(theta), Y: radiusMM * math.Sin(theta)}
	}
	return positions
}
