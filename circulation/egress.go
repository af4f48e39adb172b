package circulation

import (
	"math"

	"github.com/pensaer/geokernel/bfs"
	"github.com/pensaer/geokernel/core"
	"github.com/pensaer/geokernel/dijkstra"
	"github.com/pensaer/geokernel/flow"
	"github.com/pensaer/geokernel/topology"
)

// EgressPath is the shortest door-to-door route from a room to the nearest
// exterior face, measured centroid to centroid.
type EgressPath struct {
	DistanceMM int64
	ExitRoom   topology.RoomId
	Route      []topology.RoomId
}

// ShortestEgressPath runs dijkstra over the door-adjacency network rooted at
// from, and returns the nearest exterior room reached plus the route to it.
func ShortestEgressPath(g *topology.Graph, from topology.RoomId) (EgressPath, error) {
	cg, err := buildUndirectedNetwork(g)
	if err != nil {
		return EgressPath{}, err
	}

	dist, prev, err := dijkstra.Dijkstra(cg, dijkstra.Source(string(from)), dijkstra.WithReturnPath())
	if err != nil {
		return EgressPath{}, err
	}

	exits := exteriorVertexIDs(g)
	best := ""
	bestDist := int64(math.MaxInt64)
	for _, ext := range exits {
		d, ok := dist[ext]
		if !ok || d >= bestDist {
			continue
		}
		bestDist = d
		best = ext
	}
	if best == "" {
		return EgressPath{}, ErrNoNetwork
	}

	route := []topology.RoomId{topology.RoomId(best)}
	for cur := best; cur != string(from); {
		p, ok := prev[cur]
		if !ok || p == "" {
			break
		}
		route = append([]topology.RoomId{topology.RoomId(p)}, route...)
		cur = p
	}

	return EgressPath{DistanceMM: bestDist, ExitRoom: topology.RoomId(best), Route: route}, nil
}

// ReachableRooms lists every room reachable from from through door
// connections, via bfs.BFS over the undirected network.
func ReachableRooms(g *topology.Graph, from topology.RoomId) ([]topology.RoomId, error) {
	cg, err := buildUndirectedNetwork(g)
	if err != nil {
		return nil, err
	}
	// bfs.BFS rejects weighted graphs, so traverse an unweighted copy of the
	// same door adjacency.
	ug := core.NewGraph()
	for _, v := range cg.Vertices() {
		_ = ug.AddVertex(v)
	}
	for _, e := range cg.Edges() {
		if _, err := ug.AddEdge(e.From, e.To, 0); err != nil {
			return nil, err
		}
	}
	result, err := bfs.BFS(ug, string(from))
	if err != nil {
		return nil, err
	}
	out := make([]topology.RoomId, len(result.Order))
	for i, id := range result.Order {
		out[i] = topology.RoomId(id)
	}
	return out, nil
}

// EgressCapacity computes the maximum sustained flow (in millimetres of
// combined door width) from a room to an exterior face via flow.Dinic,
// reporting the largest value over every exterior face, modelling the network's narrowest doorway chain as the
// bottleneck a real evacuation would hit.
func EgressCapacity(g *topology.Graph, from topology.RoomId) (float64, error) {
	cg, err := buildDirectedFlowNetwork(g)
	if err != nil {
		return 0, err
	}

	exits := exteriorVertexIDs(g)
	best := 0.0
	found := false
	for _, ext := range exits {
		capacity, _, err := flow.Dinic(cg, string(from), ext, flow.FlowOptions{Epsilon: 1e-6})
		if err != nil {
			continue
		}
		found = true
		if capacity > best {
			best = capacity
		}
	}
	if !found {
		return 0, ErrNoNetwork
	}
	return best, nil
}
