package topology

import (
	"math"
	"sort"

	"github.com/pensaer/geokernel/mathx"
)

// roomTraceSafetyMargin is the constant added to 2|E| to bound a single
// boundary walk (spec §4.F.4.b): any walk exceeding this is a bug, and the
// seed is discarded rather than looping forever.
const roomTraceSafetyMargin = 10

// minRoomArea is the minimum |signed area| (mm^2) a closed boundary walk
// must have to be accepted as a room, filtering degenerate back-and-forth
// walks on open (non-enclosing) graphs.
const minRoomArea = 1.0

// RebuildRooms clears and recomputes every room by clockwise half-edge
// boundary tracing.
func (g *Graph) RebuildRooms() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.RebuildRoomsLocked()
}

// RebuildRoomsLocked is RebuildRooms for callers already holding the write
// lock.
func (g *Graph) RebuildRoomsLocked() {
	g.rooms = make(map[RoomId]*TopoRoom)

	var allHalfEdges []HalfEdge
	for _, e := range g.edges {
		allHalfEdges = append(allHalfEdges, HalfEdge{EdgeID: e.ID, FromNode: e.StartNode, ToNode: e.EndNode})
		allHalfEdges = append(allHalfEdges, HalfEdge{EdgeID: e.ID, FromNode: e.EndNode, ToNode: e.StartNode})
	}
	sort.Slice(allHalfEdges, func(i, j int) bool {
		if allHalfEdges[i].FromNode != allHalfEdges[j].FromNode {
			return allHalfEdges[i].FromNode < allHalfEdges[j].FromNode
		}
		return allHalfEdges[i].EdgeID < allHalfEdges[j].EdgeID
	})

	outgoing := make(map[NodeId][]HalfEdge)
	for _, he := range allHalfEdges {
		outgoing[he.FromNode] = append(outgoing[he.FromNode], he)
	}
	for nid, hes := range outgoing {
		origin := g.nodes[nid].Position
		sort.Slice(hes, func(i, j int) bool {
			di := g.nodes[hes[i].ToNode].Position.Sub(origin)
			dj := g.nodes[hes[j].ToNode].Position.Sub(origin)
			return di.Angle() < dj.Angle()
		})
		outgoing[nid] = hes
	}

	used := make(map[HalfEdge]bool, len(allHalfEdges))
	for _, seed := range allHalfEdges {
		if used[seed] {
			continue
		}
		nodes, edges, halfEdges, ok := g.traceBoundary(seed, outgoing, used)
		if !ok || len(nodes) < 3 {
			continue
		}
		pts := make([]mathx.Point2, len(nodes))
		for i, nid := range nodes {
			pts[i] = g.nodes[nid].Position
		}
		poly, err := mathx.NewPolygon2(pts)
		if err != nil {
			continue
		}
		area := poly.SignedArea()
		if math.Abs(area) < minRoomArea {
			continue
		}
		room := &TopoRoom{
			ID:            NewRoomId(),
			BoundaryNodes: nodes,
			BoundaryEdges: edges,
			HalfEdges:     halfEdges,
			SignedArea:    area,
			Centroid:      poly.Centroid(),
			IsExterior:    area < 0,
		}
		g.rooms[room.ID] = room
	}
}

// traceBoundary walks the face bounded by "always turn right": from the
// half-edge reversing the one just traversed, pick the next half-edge
// immediately clockwise (the entry before it in the CCW-sorted outgoing
// list, wrapping around).
func (g *Graph) traceBoundary(
	start HalfEdge,
	outgoing map[NodeId][]HalfEdge,
	used map[HalfEdge]bool,
) ([]NodeId, []EdgeId, []HalfEdge, bool) {
	limit := 2*len(g.edges) + roomTraceSafetyMargin

	var nodes []NodeId
	var edges []EdgeId
	var halfEdges []HalfEdge

	current := start
	for i := 0; i < limit; i++ {
		if used[current] {
			if current == start {
				return nodes, edges, halfEdges, true
			}
			return nil, nil, nil, false
		}
		used[current] = true
		nodes = append(nodes, current.FromNode)
		edges = append(edges, current.EdgeID)
		halfEdges = append(halfEdges, current)

		inRev := current.Reverse()
		outs := outgoing[current.ToNode]
		idx := -1
		for k, he := range outs {
			if he == inRev {
				idx = k
				break
			}
		}
		if idx == -1 || len(outs) == 0 {
			return nil, nil, nil, false
		}
		current = outs[(idx-1+len(outs))%len(outs)]
	}
	return nil, nil, nil, false
}
