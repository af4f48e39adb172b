package topology

import (
	"sync"

	"github.com/pensaer/geokernel/mathx"
	"github.com/pensaer/geokernel/spatial"
)

// GraphOption configures a Graph before use.
type GraphOption func(*Graph)

// WithSnapTolerance overrides the default SnapMerge tolerance.
func WithSnapTolerance(tol float64) GraphOption {
	return func(g *Graph) { g.snapTolerance = tol }
}

// Graph is the single mutable state of the model: nodes, edges, and rooms,
// backed by the two spatial indices, guarded by one mutex so an entire
// command's mutate-then-heal sequence can run as one critical section
// (spec §5: "exactly one logical mutator at a time").
type Graph struct {
	mu sync.RWMutex

	nodes map[NodeId]*TopoNode
	edges map[EdgeId]*TopoEdge
	rooms map[RoomId]*TopoRoom

	nodeIndex *spatial.NodeIndex
	edgeIndex *spatial.EdgeIndex

	snapTolerance float64
}

// NewGraph returns an empty Graph with SnapMerge as the default snap
// tolerance.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:         make(map[NodeId]*TopoNode),
		edges:         make(map[EdgeId]*TopoEdge),
		rooms:         make(map[RoomId]*TopoRoom),
		nodeIndex:     spatial.NewNodeIndex(),
		edgeIndex:     spatial.NewEdgeIndex(),
		snapTolerance: mathx.SnapMerge,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Lock acquires the write lock. Callers that need several mutations to run
// as one atomic unit (the command executor, across dispatch + heal) call
// Lock once and use the *Locked method variants for the duration.
func (g *Graph) Lock() { g.mu.Lock() }

// Unlock releases the write lock acquired by Lock.
func (g *Graph) Unlock() { g.mu.Unlock() }

// RLock acquires a read lock for snapshot-style reads.
func (g *Graph) RLock() { g.mu.RLock() }

// RUnlock releases a read lock acquired by RLock.
func (g *Graph) RUnlock() { g.mu.RUnlock() }

// SnapTolerance returns the configured snap-merge tolerance.
func (g *Graph) SnapTolerance() float64 { return g.snapTolerance }

// Node returns the node with the given id, or (nil, false).
func (g *Graph) Node(id NodeId) (*TopoNode, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.NodeLocked(id)
}

// NodeLocked is Node for callers already holding the read or write lock.
func (g *Graph) NodeLocked(id NodeId) (*TopoNode, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the edge with the given id, or (nil, false).
func (g *Graph) Edge(id EdgeId) (*TopoEdge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.EdgeLocked(id)
}

// EdgeLocked is Edge for callers already holding the read or write lock.
func (g *Graph) EdgeLocked(id EdgeId) (*TopoEdge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Room returns the room with the given id, or (nil, false).
func (g *Graph) Room(id RoomId) (*TopoRoom, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.rooms[id]
	return r, ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// RoomCount returns the number of rooms (interior and exterior).
func (g *Graph) RoomCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

// Nodes returns a snapshot slice of all nodes.
func (g *Graph) Nodes() []*TopoNode {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*TopoNode, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Edges returns a snapshot slice of all edges.
func (g *Graph) Edges() []*TopoEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.EdgesLocked()
}

// EdgesLocked is Edges for callers already holding the read or write lock.
func (g *Graph) EdgesLocked() []*TopoEdge {
	out := make([]*TopoEdge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	return out
}

// Rooms returns a snapshot slice of all rooms.
func (g *Graph) Rooms() []*TopoRoom {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*TopoRoom, 0, len(g.rooms))
	for _, r := range g.rooms {
		out = append(out, r)
	}
	return out
}

// InteriorRooms returns every room with IsExterior == false.
func (g *Graph) InteriorRooms() []*TopoRoom {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*TopoRoom, 0, len(g.rooms))
	for _, r := range g.rooms {
		if !r.IsExterior {
			out = append(out, r)
		}
	}
	return out
}

// FindOrCreateNode scans nodes in the index within snap-tolerance of p; if
// any exists, returns its id. Otherwise it creates a new node at p and
// inserts it in the node index.
func (g *Graph) FindOrCreateNode(p mathx.Point2) NodeId {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.FindOrCreateNodeLocked(p)
}

// FindOrCreateNodeLocked is FindOrCreateNode for callers already holding
// the write lock (via Lock).
func (g *Graph) FindOrCreateNodeLocked(p mathx.Point2) NodeId {
	hits := g.nodeIndex.WithinRadius(p, g.snapTolerance)
	if len(hits) > 0 {
		return NodeId(hits[0])
	}
	id := NewNodeId()
	g.nodes[id] = &TopoNode{ID: id, Position: p, Edges: make(map[EdgeId]struct{})}
	g.nodeIndex.Insert(string(id), p)
	return id
}

// AddEdge rejects coincident endpoints, otherwise creates (or reuses, via
// find-or-create) both endpoint nodes and a new edge between them.
func (g *Graph) AddEdge(start, end mathx.Point2, data EdgeData) (EdgeId, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.AddEdgeLocked(start, end, data)
}

// AddEdgeLocked is AddEdge for callers already holding the write lock.
func (g *Graph) AddEdgeLocked(start, end mathx.Point2, data EdgeData) (EdgeId, error) {
	if start.DistanceTo(end) <= g.snapTolerance {
		return "", ErrCoincidentPoints
	}
	a := g.FindOrCreateNodeLocked(start)
	b := g.FindOrCreateNodeLocked(end)
	if a == b {
		return "", ErrCoincidentPoints
	}
	return g.AddEdgeBetweenNodesLocked(a, b, data)
}

// AddEdgeBetweenNodes is like AddEdge but with existing node ids; refuses
// self-loops.
func (g *Graph) AddEdgeBetweenNodes(a, b NodeId, data EdgeData) (EdgeId, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.AddEdgeBetweenNodesLocked(a, b, data)
}

// AddEdgeBetweenNodesLocked is AddEdgeBetweenNodes for callers already
// holding the write lock.
func (g *Graph) AddEdgeBetweenNodesLocked(a, b NodeId, data EdgeData) (EdgeId, error) {
	if a == b {
		return "", ErrSelfLoop
	}
	na, ok := g.nodes[a]
	if !ok {
		return "", ErrNodeNotFound
	}
	nb, ok := g.nodes[b]
	if !ok {
		return "", ErrNodeNotFound
	}
	id := NewEdgeId()
	edge := &TopoEdge{ID: id, StartNode: a, EndNode: b, Data: data}
	g.edges[id] = edge
	na.Edges[id] = struct{}{}
	nb.Edges[id] = struct{}{}
	g.edgeIndex.Insert(string(id), na.Position, nb.Position)
	return id, nil
}

// RemoveEdge unlinks the edge from both endpoints' edge-sets, removes it
// from the edge index, and deletes each endpoint that is now orphaned and
// not pinned.
func (g *Graph) RemoveEdge(id EdgeId) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.RemoveEdgeLocked(id)
}

// RemoveEdgeLocked is RemoveEdge for callers already holding the write lock.
func (g *Graph) RemoveEdgeLocked(id EdgeId) error {
	edge, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	g.edgeIndex.Remove(string(id))

	for _, nid := range []NodeId{edge.StartNode, edge.EndNode} {
		n, ok := g.nodes[nid]
		if !ok {
			continue
		}
		delete(n.Edges, id)
		if len(n.Edges) == 0 && !n.Pinned {
			delete(g.nodes, nid)
			g.nodeIndex.Remove(string(nid))
		}
	}
	return nil
}

// SplitEdge refuses if p is within snap-tolerance of either endpoint;
// otherwise removes the original edge, finds-or-creates a node at p, and
// adds two new edges carrying a clone of the original's data. Returns
// (new_node, e1, e2).
func (g *Graph) SplitEdge(id EdgeId, p mathx.Point2) (NodeId, EdgeId, EdgeId, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.SplitEdgeLocked(id, p)
}

// SplitEdgeLocked is SplitEdge for callers already holding the write lock.
func (g *Graph) SplitEdgeLocked(id EdgeId, p mathx.Point2) (NodeId, EdgeId, EdgeId, error) {
	edge, ok := g.edges[id]
	if !ok {
		return "", "", "", ErrEdgeNotFound
	}
	startNode, ok1 := g.nodes[edge.StartNode]
	endNode, ok2 := g.nodes[edge.EndNode]
	if !ok1 || !ok2 {
		return "", "", "", ErrNodeNotFound
	}
	if p.DistanceTo(startNode.Position) <= g.snapTolerance ||
		p.DistanceTo(endNode.Position) <= g.snapTolerance {
		return "", "", "", ErrTooCloseToEndpoint
	}
	startPos := startNode.Position
	endPos := endNode.Position
	data := edge.Data

	if err := g.RemoveEdgeLocked(id); err != nil {
		return "", "", "", err
	}

	mid := g.FindOrCreateNodeLocked(p)
	e1, err := g.AddEdgeLocked(startPos, p, data.Clone())
	if err != nil {
		return "", "", "", err
	}
	e2, err := g.AddEdgeLocked(p, endPos, data.Clone())
	if err != nil {
		return "", "", "", err
	}
	return mid, e1, e2, nil
}

// MoveNode repositions node id to p and refreshes both spatial indices for
// every edge incident to it. Callers are expected to run Heal afterward to
// detect any crossings or collinear points the move introduces.
func (g *Graph) MoveNode(id NodeId, p mathx.Point2) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.MoveNodeLocked(id, p)
}

// MoveNodeLocked is MoveNode for callers already holding the write lock.
func (g *Graph) MoveNodeLocked(id NodeId, p mathx.Point2) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Position = p
	g.nodeIndex.Insert(string(id), p)

	for eid := range n.Edges {
		e, ok := g.edges[eid]
		if !ok {
			continue
		}
		sn, ok1 := g.nodes[e.StartNode]
		en, ok2 := g.nodes[e.EndNode]
		if !ok1 || !ok2 {
			continue
		}
		g.edgeIndex.Insert(string(eid), sn.Position, en.Position)
	}
	return nil
}

// RebuildSpatialIndices discards and reconstructs both R-tree indices from
// the current node/edge maps — the "bulk-load" rebuild spec §4.C prescribes
// after batch structural changes such as a snap-merge cluster resolution.
func (g *Graph) RebuildSpatialIndices() {
	positions := make(map[string]mathx.Point2, len(g.nodes))
	for id, n := range g.nodes {
		positions[string(id)] = n.Position
	}
	g.nodeIndex.Rebuild(positions)

	segments := make(map[string]spatial.EdgeEndpoints, len(g.edges))
	for id, e := range g.edges {
		sn, ok1 := g.nodes[e.StartNode]
		en, ok2 := g.nodes[e.EndNode]
		if !ok1 || !ok2 {
			continue
		}
		segments[string(id)] = spatial.EdgeEndpoints{A: sn.Position, B: en.Position}
	}
	g.edgeIndex.Rebuild(segments)
}
