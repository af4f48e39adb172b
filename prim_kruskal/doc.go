// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an undirected,
// weighted *core.Graph using Kruskal's algorithm.
//
// Given an undirected, connected, weighted graph G = (V, E), an MST is a subset
// T ⊆ E that connects every vertex in V while minimizing the sum of weights in T.
// Circulation routing uses it to lay out the cheapest doorway backbone that still
// reaches every room on a floor, before Christofides tours the rooms it spans.
//
// # Algorithm
//
// Kruskal sorts all edges by ascending weight, then walks them from smallest to
// largest, merging components with a disjoint-set (union-find) structure and
// skipping any edge whose endpoints are already connected. It stops once |V|-1
// edges have been added.
//
//   - Time:  O(E log E + α(V)·E) ≈ O(E log V); sorting dominates.
//   - Space: O(V + E) for the parent/rank maps and the sorted edge list.
//   - Determinism: graph.Edges() returns edges in ascending ID order, and the
//     sort is stable, so ties between equal-weight edges break predictably.
//
// # Errors
//
//	ErrInvalidGraph  - graph is nil, directed, unweighted, or has directed edges.
//	ErrDisconnected  - the graph has no vertices, or is not fully connected.
//
// # Integration
//
//   - Relies on github.com/pensaer/geokernel/core for graph storage and iteration.
package prim_kruskal
