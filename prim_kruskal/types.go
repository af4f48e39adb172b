// Package prim_kruskal computes minimum spanning trees over undirected, weighted
// *core.Graph values. Circulation routing uses it to find the cheapest doorway
// backbone that still reaches every room on a floor.
package prim_kruskal

import "errors"

// ErrInvalidGraph indicates that MST computation requires an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")
