// Package spatial provides the two R-tree-backed indices the topology graph
// relies on for every snap/crossing/envelope query: NodeIndex (points) and
// EdgeIndex (segment bounding boxes).
//
// What:
//
//   - NodeIndex: WithinRadius, Nearest, KNearest, InEnvelope, Remove, Rebuild.
//   - EdgeIndex: PotentiallyIntersecting, NearPoint, InEnvelope, Remove, Rebuild.
//
// Why:
//
//   - Healing passes run find-or-create and crossing-detection queries
//     after every mutation; a linear scan over all nodes/edges would make
//     snap_merge_nodes and split_crossings quadratic on large floors.
//   - After any batch structural change (a full snap-merge cluster
//     resolution, for instance) the indices are rebuilt from the current
//     node/edge maps rather than incrementally repaired — cheaper than
//     incremental repair when union-find merges happen (spec §4.C).
//
// Both indices key entries by id-as-string, keeping this package free of any
// dependency on the topology package's NodeId/EdgeId wrapper types.
package spatial
