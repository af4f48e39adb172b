package topology

import "errors"

// Sentinel errors for topology graph operations. Callers branch on these
// with errors.Is; wrapping happens at call sites via fmt.Errorf("%w", ...).
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("topology: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("topology: edge not found")

	// ErrRoomNotFound indicates an operation referenced a non-existent room.
	ErrRoomNotFound = errors.New("topology: room not found")

	// ErrCoincidentPoints indicates add_edge's two endpoints are within snap
	// tolerance of each other (or resolve to the same existing node).
	ErrCoincidentPoints = errors.New("topology: edge endpoints coincide")

	// ErrSelfLoop indicates an edge would start and end at the same node.
	ErrSelfLoop = errors.New("topology: self-loop not allowed")

	// ErrTooCloseToEndpoint indicates split_edge's split point is within
	// snap tolerance of one of the edge's own endpoints.
	ErrTooCloseToEndpoint = errors.New("topology: split point too close to an endpoint")

	// ErrNodeStillReferenced indicates an internal invariant violation: a
	// node was about to be dropped while an edge still references it.
	ErrNodeStillReferenced = errors.New("topology: node still referenced by an edge")
)
