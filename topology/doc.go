// Package topology is the single mutable state of a building floor: nodes,
// edges, and the rooms they enclose, backed by the two spatial indices in
// package spatial, with automatic healing to restore model invariants after
// any mutation.
//
// What:
//
//   - Graph: the node/edge/room maps plus both spatial indices and the
//     snap tolerance (core/types.go-style: sync.RWMutex-guarded maps,
//     options-pattern constructor).
//   - Add/remove/split primitives (FindOrCreateNode, AddEdge, RemoveEdge,
//     SplitEdge, AddEdgeBetweenNodes) — node coalescing is automatic,
//     nodes are never created directly by callers.
//   - Healing passes (Heal, and its four steps SnapMergeNodes,
//     SplitCrossings, MergeColinear, RebuildRoomsDirty), run in that fixed
//     order after every mutation by the command executor.
//   - Room tracer (RebuildRooms): clockwise half-edge boundary walks that
//     recompute every face of the planar subdivision from scratch.
//
// Why:
//
//   - This is the *only* place the planar graph's invariants are enforced:
//     no two unpinned nodes closer than SnapMerge, no two edges properly
//     crossing, no redundant collinear chains, rooms that accurately
//     partition the plane. Every higher layer (meshing, joins, clash,
//     IFC) reads this state; none of them may mutate it directly.
//
// Concurrency:
//
//   - Graph guards its maps with a single sync.RWMutex (muGraph); the
//     model is a single logical mutator per spec §5, so one writer lock
//     covers an entire command's mutation + heal sequence. Readers may take
//     RLock concurrently with each other, never with a writer.
//
// Errors:
//
//	ErrNodeNotFound       - operation referenced a non-existent node.
//	ErrEdgeNotFound       - operation referenced a non-existent edge.
//	ErrCoincidentPoints   - add_edge's two endpoints resolve to the same node.
//	ErrSelfLoop           - an edge would start and end at the same node.
//	ErrTooCloseToEndpoint - split_edge's point is within snap tolerance of an endpoint.
package topology
