package circulation

import (
	"github.com/pensaer/geokernel/core"
	"github.com/pensaer/geokernel/matrix"
	"github.com/pensaer/geokernel/prim_kruskal"
	"github.com/pensaer/geokernel/topology"
	"github.com/pensaer/geokernel/tsp"
)

// ServiceLink is one edge of the minimum-spanning circulation backbone: the
// cheapest door connecting roomA and roomB, measured centroid to centroid.
type ServiceLink struct {
	RoomA, RoomB topology.RoomId
	DistanceMM   int64
}

// ServiceBackbone computes the minimum-spanning tree of the door-adjacency
// network, the shortest set of corridors that still reaches every
// door-connected room exactly once each. Useful for sizing a single shared
// corridor or duct run that must touch every room.
func ServiceBackbone(g *topology.Graph) ([]ServiceLink, int64, error) {
	cg, err := buildUndirectedNetwork(g)
	if err != nil {
		return nil, 0, err
	}

	edges, total, err := prim_kruskal.Kruskal(cg)
	if err != nil {
		return nil, 0, err
	}

	out := make([]ServiceLink, len(edges))
	for i, e := range edges {
		out[i] = ServiceLink{
			RoomA:      topology.RoomId(e.From),
			RoomB:      topology.RoomId(e.To),
			DistanceMM: e.Weight,
		}
	}
	return out, total, nil
}

// InspectionTour is a round-trip route that visits every door-connected room
// once and returns to its start, e.g. for a fire-marshal walkthrough.
type InspectionTour struct {
	Rooms      []topology.RoomId
	DistanceMM float64
}

// InspectionRoute solves a closed inspection tour over the door-adjacency
// network via tsp.SolveWithGraph, approximating the shortest walk that
// touches every room once (Christofides on the metric closure of the
// network, since raw door adjacency is rarely a complete graph).
func InspectionRoute(g *topology.Graph) (InspectionTour, error) {
	cg, err := buildUndirectedNetwork(g)
	if err != nil {
		return InspectionTour{}, err
	}

	res, err := tsp.SolveWithGraph(cg, tsp.Options{
		Algo:             tsp.Christofides,
		RunMetricClosure: true,
		Symmetric:        true,
	})
	if err != nil {
		return InspectionTour{}, err
	}

	ids, err := vertexIDsInIndexOrder(cg)
	if err != nil {
		return InspectionTour{}, err
	}

	rooms := make([]topology.RoomId, len(res.Tour))
	for i, idx := range res.Tour {
		rooms[i] = topology.RoomId(ids[idx])
	}
	return InspectionTour{Rooms: rooms, DistanceMM: res.Cost}, nil
}

// vertexIDsInIndexOrder recovers the stable id-by-matrix-index ordering
// tsp.SolveWithGraph used internally, so tour indices can be mapped back to
// room ids the same way tsp/solve.go itself does.
func vertexIDsInIndexOrder(cg *core.Graph) ([]string, error) {
	am, err := matrix.NewAdjacencyMatrix(cg, matrix.NewMatrixOptions(matrix.WithWeighted(), matrix.WithUndirected()))
	if err != nil {
		return nil, err
	}
	ids := make([]string, am.Mat.Rows())
	for id, idx := range am.VertexIndex {
		ids[idx] = id
	}
	return ids, nil
}
