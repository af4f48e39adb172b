package topology

import (
	"github.com/google/uuid"

	"github.com/pensaer/geokernel/mathx"
)

// NodeId uniquely identifies a TopoNode, comparable by equality, hashable
// (it is a plain string under the hood so it works as a map key directly).
type NodeId string

// EdgeId uniquely identifies a TopoEdge.
type EdgeId string

// RoomId uniquely identifies a TopoRoom.
type RoomId string

// NewNodeId mints a fresh, globally-unique NodeId.
func NewNodeId() NodeId { return NodeId(uuid.NewString()) }

// NewEdgeId mints a fresh, globally-unique EdgeId.
func NewEdgeId() EdgeId { return EdgeId(uuid.NewString()) }

// NewRoomId mints a fresh, globally-unique RoomId.
func NewRoomId() RoomId { return RoomId(uuid.NewString()) }

// Baseline is where an edge's stored centerline sits relative to the wall
// it represents.
type Baseline int

const (
	// Center: the stored line is the wall's centerline.
	Center Baseline = iota
	// Left: the stored line is the wall's left face.
	Left
	// Right: the stored line is the wall's right face.
	Right
)

// Opening is a door/window cut into a wall edge, located by parameter range
// along the baseline.
type Opening struct {
	ID       string
	Kind     string // "door" | "window" | arbitrary caller tag
	T0, T1   float64 // baseline parameter range, 0 <= T0 < T1 <= 1
	SillZ    float64 // height of the opening's bottom above the wall base
	HeadZ    float64 // height of the opening's top above the wall base
}

// EdgeData is the non-topological payload carried by a TopoEdge.
type EdgeData struct {
	Thickness float64
	Height    float64
	Baseline  Baseline
	WallType  string
	Openings  []Opening
}

// Clone returns a deep copy of d (Openings is copied element-wise), used by
// split_edge to give both halves of a split wall independent opening lists.
func (d EdgeData) Clone() EdgeData {
	out := d
	if len(d.Openings) > 0 {
		out.Openings = make([]Opening, len(d.Openings))
		copy(out.Openings, d.Openings)
	}
	return out
}

// TopoNode is a vertex of the planar graph.
type TopoNode struct {
	ID       NodeId
	Position mathx.Point2
	Edges    map[EdgeId]struct{}
	Pinned   bool
}

// NodeClass classifies a node by its degree.
type NodeClass int

const (
	// Orphan: degree 0.
	Orphan NodeClass = iota
	// Terminal: degree 1.
	Terminal
	// Through: degree 2.
	Through
	// Junction: degree >= 3.
	Junction
)

// Degree returns the number of incident edges.
func (n *TopoNode) Degree() int { return len(n.Edges) }

// Class classifies n by its degree.
func (n *TopoNode) Class() NodeClass {
	switch n.Degree() {
	case 0:
		return Orphan
	case 1:
		return Terminal
	case 2:
		return Through
	default:
		return Junction
	}
}

// EdgeIDs returns n's incident edge ids in no particular order.
func (n *TopoNode) EdgeIDs() []EdgeId {
	out := make([]EdgeId, 0, len(n.Edges))
	for id := range n.Edges {
		out = append(out, id)
	}
	return out
}

// TopoEdge is an undirected connection between two nodes carrying wall
// data. Invariant: StartNode != EndNode.
type TopoEdge struct {
	ID        EdgeId
	StartNode NodeId
	EndNode   NodeId
	Data      EdgeData
	Locked    bool
}

// OtherEnd returns the endpoint of e that is not from, or "" if from is
// neither endpoint.
func (e *TopoEdge) OtherEnd(from NodeId) NodeId {
	switch from {
	case e.StartNode:
		return e.EndNode
	case e.EndNode:
		return e.StartNode
	default:
		return ""
	}
}

// HalfEdge is a directed traversal of an edge.
type HalfEdge struct {
	EdgeID   EdgeId
	FromNode NodeId
	ToNode   NodeId
}

// Reverse returns the opposite half-edge of the same edge.
func (h HalfEdge) Reverse() HalfEdge {
	return HalfEdge{EdgeID: h.EdgeID, FromNode: h.ToNode, ToNode: h.FromNode}
}

// TopoRoom is a closed face of the planar subdivision.
type TopoRoom struct {
	ID             RoomId
	BoundaryNodes  []NodeId
	BoundaryEdges  []EdgeId
	HalfEdges      []HalfEdge
	SignedArea     float64
	Centroid       mathx.Point2
	IsExterior     bool
}

// Area returns the unsigned area of the room.
func (r *TopoRoom) Area() float64 {
	if r.SignedArea < 0 {
		return -r.SignedArea
	}
	return r.SignedArea
}
