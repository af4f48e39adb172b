package circulation

import (
	"fmt"
	"strings"

	"github.com/pensaer/geokernel/core"
	"github.com/pensaer/geokernel/topology"
)

// ErrNoNetwork is returned when a graph has no door-connected rooms to
// build a circulation network from.
var ErrNoNetwork = fmt.Errorf("circulation: no door-connected rooms in graph")

// doorAdjacency is one edge of the derived circulation network: two rooms
// connected through a shared wall edge carrying a door-kind opening.
type doorAdjacency struct {
	roomA, roomB topology.RoomId
	distanceMM   int64
	widthMM      int64
}

// isDoorKind reports whether an opening kind names a door (case-insensitive,
// matching the free-form tagging topology.Opening.Kind allows).
func isDoorKind(kind string) bool {
	return strings.EqualFold(kind, "door")
}

// edgeRoomIndex maps each edge id to every room (interior or exterior) whose
// boundary includes it. An edge with two entries borders two faces; the
// planar subdivision traceBoundary produces guarantees at most two.
func edgeRoomIndex(g *topology.Graph) map[topology.EdgeId][]*topology.TopoRoom {
	idx := make(map[topology.EdgeId][]*topology.TopoRoom)
	for _, r := range g.Rooms() {
		for _, eid := range r.BoundaryEdges {
			idx[eid] = append(idx[eid], r)
		}
	}
	return idx
}

// doorAdjacencies walks every edge with a door-kind opening and resolves the
// pair of rooms it connects, skipping edges the room index can't fully
// resolve (open, non-enclosing geometry).
func doorAdjacencies(g *topology.Graph) []doorAdjacency {
	roomsByEdge := edgeRoomIndex(g)
	var out []doorAdjacency
	for _, e := range g.Edges() {
		var doorWidth float64
		hasDoor := false
		length := edgeLength(g, e)
		for _, o := range e.Data.Openings {
			if !isDoorKind(o.Kind) {
				continue
			}
			hasDoor = true
			doorWidth += (o.T1 - o.T0) * length
		}
		if !hasDoor {
			continue
		}
		rooms := roomsByEdge[e.ID]
		if len(rooms) != 2 {
			continue
		}
		out = append(out, doorAdjacency{
			roomA:      rooms[0].ID,
			roomB:      rooms[1].ID,
			distanceMM: int64(rooms[0].Centroid.DistanceTo(rooms[1].Centroid)),
			widthMM:    int64(doorWidth),
		})
	}
	return out
}

func edgeLength(g *topology.Graph, e *topology.TopoEdge) float64 {
	sn, ok1 := g.Node(e.StartNode)
	en, ok2 := g.Node(e.EndNode)
	if !ok1 || !ok2 {
		return 0
	}
	return sn.Position.DistanceTo(en.Position)
}

// buildUndirectedNetwork assembles a weighted, undirected core.Graph over
// door-connected rooms, weight = centroid-to-centroid distance in
// millimetres. Used by egress shortest-path, the minimum-spanning backbone,
// and the inspection tour.
func buildUndirectedNetwork(g *topology.Graph) (*core.Graph, error) {
	adj := doorAdjacencies(g)
	if len(adj) == 0 {
		return nil, ErrNoNetwork
	}

	cg := core.NewGraph(core.WithWeighted())
	seen := make(map[string]bool)
	addVertex := func(id topology.RoomId) {
		s := string(id)
		if seen[s] {
			return
		}
		seen[s] = true
		_ = cg.AddVertex(s)
	}
	for _, a := range adj {
		addVertex(a.roomA)
		addVertex(a.roomB)
		if _, err := cg.AddEdge(string(a.roomA), string(a.roomB), a.distanceMM); err != nil {
			return nil, err
		}
	}
	return cg, nil
}

// buildDirectedFlowNetwork assembles a directed, weighted core.Graph over
// door-connected rooms, weight = door clear width in millimetres (the
// capacity flow.Dinic moves through that doorway), with each undirected
// adjacency split into both directions.
func buildDirectedFlowNetwork(g *topology.Graph) (*core.Graph, error) {
	adj := doorAdjacencies(g)
	if len(adj) == 0 {
		return nil, ErrNoNetwork
	}

	cg := core.NewMixedGraph(core.WithWeighted(), core.WithDirected(true))
	seen := make(map[string]bool)
	addVertex := func(id topology.RoomId) {
		s := string(id)
		if seen[s] {
			return
		}
		seen[s] = true
		_ = cg.AddVertex(s)
	}
	for _, a := range adj {
		addVertex(a.roomA)
		addVertex(a.roomB)
		width := a.widthMM
		if width <= 0 {
			width = 1
		}
		if _, err := cg.AddEdge(string(a.roomA), string(a.roomB), width); err != nil {
			return nil, err
		}
		if _, err := cg.AddEdge(string(a.roomB), string(a.roomA), width); err != nil {
			return nil, err
		}
	}
	return cg, nil
}

// exteriorVertexIDs returns the room ids of every exterior face of g,
// whether or not a door connects it to the network.
func exteriorVertexIDs(g *topology.Graph) []string {
	var out []string
	for _, r := range g.Rooms() {
		if r.IsExterior {
			out = append(out, string(r.ID))
		}
	}
	return out
}
