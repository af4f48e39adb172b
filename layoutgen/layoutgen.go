package layoutgen

import (
	"fmt"

	"github.com/pensaer/geokernel/core"
	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/topology"
)

// DefaultWallData is the wall payload FloorPlan functions use when the
// caller passes a zero topology.EdgeData.
func DefaultWallData() topology.EdgeData {
	return topology.EdgeData{
		Thickness: 150,
		Height:    2700,
		WallType:  "generated",
	}
}

// resolveWallData returns data unchanged unless it is the zero value, in
// which case it substitutes DefaultWallData. EdgeData carries a slice
// field, so it cannot be compared with ==; the zero value is recognized
// field by field instead.
func resolveWallData(data topology.EdgeData) topology.EdgeData {
	if data.Thickness == 0 && data.Height == 0 && data.WallType == "" && len(data.Openings) == 0 {
		return DefaultWallData()
	}
	return data
}

// assemble replays every edge of an abstract structural graph as a
// topology wall edge between its endpoints' assigned positions.
func assemble(abstract *core.Graph, positions map[string]mathx.Point2, data topology.EdgeData) (*topology.Graph, error) {
	data = resolveWallData(data)
	g := topology.NewGraph()
	for _, e := range abstract.Edges() {
		from, ok := positions[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPosition, e.From)
		}
		to, ok := positions[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPosition, e.To)
		}
		if _, err := g.AddEdge(from, to, data); err != nil {
			return nil, fmt.Errorf("layoutgen: AddEdge(%s→%s): %w", e.From, e.To, err)
		}
	}
	return g, nil
}
