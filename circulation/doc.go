// Package circulation derives an egress/access network from a topology.Graph
// and runs classic graph algorithms against it: shortest egress distance
// (dijkstra), egress capacity (flow), reachability (bfs), a minimum-spanning
// service backbone (prim_kruskal), and a round-trip inspection tour (tsp).
//
// The network's vertices are topology.TopoRoom ids (interior rooms and the
// exterior faces the graph already tracks as rooms with IsExterior==true);
// two rooms are adjacent when they share a wall edge carrying a door-kind
// topology.Opening. This models circulation through doorways rather than
// through solid partitions, the same distinction spec.md's own Opening type
// already draws between a wall and the openings cut into it.
package circulation
