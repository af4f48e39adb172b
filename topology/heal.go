package topology

import (
	"sort"

	"github.com/pensaer/geokernel/mathx"
)

// Heal runs the four healing passes in their fixed order (spec §4.E):
// snap-merge, split-crossings, merge-colinear, rebuild-rooms. Callers MUST
// already hold the write lock (via Lock) — Heal itself performs no
// locking, so the entire mutate-then-heal sequence runs as one critical
// section.
func (g *Graph) Heal(affected []NodeId) Delta {
	var out Delta
	out.Merge(g.SnapMergeNodes())
	out.Merge(g.SplitCrossings())
	out.Merge(g.MergeColinear())
	dirty := append(append([]NodeId{}, affected...), out.AffectedNodes...)
	out.Merge(g.RoomsRebuildDirty(dirty))
	return out
}

// SnapMergeNodes coalesces every cluster of unpinned nodes mutually within
// SnapTolerance of each other into one survivor, positioned at the
// cluster's centroid (always inside the cluster's bounding box, satisfying
// spec §4.E.1 without the rotation-dependence of naive pairwise-midpoint
// reduction — see DESIGN.md open question (i)). Must be called with the
// write lock already held.
func (g *Graph) SnapMergeNodes() Delta {
	var delta Delta

	uf := newUnionFind()
	ids := make([]NodeId, 0, len(g.nodes))
	for id, n := range g.nodes {
		if n.Pinned {
			continue
		}
		ids = append(ids, id)
		uf.add(id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for i := 0; i < len(ids); i++ {
		pi := g.nodes[ids[i]].Position
		for j := i + 1; j < len(ids); j++ {
			pj := g.nodes[ids[j]].Position
			if pi.DistanceTo(pj) <= g.snapTolerance {
				uf.union(ids[i], ids[j])
			}
		}
	}

	for _, members := range uf.clusters() {
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		survivor := members[0]
		survivorNode := g.nodes[survivor]

		var sx, sy float64
		for _, m := range members {
			p := g.nodes[m].Position
			sx += p.X
			sy += p.Y
		}
		survivorNode.Position = mathx.Point2{X: sx / float64(len(members)), Y: sy / float64(len(members))}

		for _, m := range members[1:] {
			mn, ok := g.nodes[m]
			if !ok {
				continue
			}
			for eid := range mn.Edges {
				e, ok := g.edges[eid]
				if !ok {
					continue
				}
				if e.StartNode == m {
					e.StartNode = survivor
				}
				if e.EndNode == m {
					e.EndNode = survivor
				}
				survivorNode.Edges[eid] = struct{}{}
			}
			delete(g.nodes, m)
			g.nodeIndex.Remove(string(m))
			delta.Deleted = append(delta.Deleted, string(m))
		}
		delta.Modified = append(delta.Modified, string(survivor))
		delta.AddAffected(survivor)
	}

	// Delete any edge whose endpoints are now equal (self-loop).
	for id, e := range g.edges {
		if e.StartNode == e.EndNode {
			_ = g.RemoveEdgeLocked(id)
			delta.Deleted = append(delta.Deleted, string(id))
		}
	}

	g.RebuildSpatialIndices()
	return delta
}

// splitCrossingsSafetyMargin bounds the number of split iterations beyond
// the pair count observed at the start of the pass, per spec §4.E.2's
// termination argument (each split strictly increases node count while the
// number of pairwise crossings strictly decreases).
const splitCrossingsSafetyMargin = 16

// SplitCrossings repeatedly finds a properly-crossing edge pair (via the
// edge index broad phase, narrowed by the robust proper-intersection
// predicate) and splits both edges at the intersection point, until none
// remain. Must be called with the write lock already held.
func (g *Graph) SplitCrossings() Delta {
	var delta Delta

	n0 := len(g.edges)
	safetyCap := n0*n0 + splitCrossingsSafetyMargin
	for iter := 0; iter < safetyCap; iter++ {
		id1, id2, pt, found := g.findProperCrossing()
		if !found {
			break
		}
		mid1, ea1, ea2, err := g.SplitEdgeLocked(id1, pt)
		if err != nil {
			continue
		}
		mid2, eb1, eb2, err := g.SplitEdgeLocked(id2, pt)
		if err != nil {
			continue
		}
		delta.Created = append(delta.Created, string(ea1), string(ea2), string(eb1), string(eb2))
		delta.Deleted = append(delta.Deleted, string(id1), string(id2))
		delta.AddAffected(mid1, mid2)
	}

	g.RebuildSpatialIndices()
	return delta
}

// findProperCrossing returns the first properly-crossing edge pair found
// via the edge index broad phase, in deterministic (sorted id) order.
func (g *Graph) findProperCrossing() (EdgeId, EdgeId, mathx.Point2, bool) {
	ids := make([]EdgeId, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id1 := range ids {
		e1, ok := g.edges[id1]
		if !ok {
			continue
		}
		n1s, ok1 := g.nodes[e1.StartNode]
		n1e, ok2 := g.nodes[e1.EndNode]
		if !ok1 || !ok2 {
			continue
		}
		candidates := g.edgeIndex.PotentiallyIntersecting(n1s.Position, n1e.Position)
		sort.Strings(candidates)
		for _, cand := range candidates {
			id2 := EdgeId(cand)
			if id2 == id1 {
				continue
			}
			e2, ok := g.edges[id2]
			if !ok {
				continue
			}
			n2s, ok1 := g.nodes[e2.StartNode]
			n2e, ok2 := g.nodes[e2.EndNode]
			if !ok1 || !ok2 {
				continue
			}
			if !mathx.SegmentsProperlyIntersect(n1s.Position, n1e.Position, n2s.Position, n2e.Position) {
				continue
			}
			pt, err := mathx.IntersectSegments(n1s.Position, n1e.Position, n2s.Position, n2e.Position)
			if err != nil {
				continue
			}
			return id1, id2, pt, true
		}
	}
	return "", "", mathx.Point2{}, false
}

// MergeColinear replaces every non-pinned through-node whose two incident
// edges are collinear within robust tolerance and carry identical EdgeData
// with a single edge between the outer endpoints. Must be called with the
// write lock already held.
func (g *Graph) MergeColinear() Delta {
	var delta Delta

	for {
		mergedAny := false
		ids := make([]NodeId, 0, len(g.nodes))
		for id := range g.nodes {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, id := range ids {
			n, ok := g.nodes[id]
			if !ok || n.Pinned || n.Degree() != 2 {
				continue
			}
			eids := n.EdgeIDs()
			sort.Slice(eids, func(i, j int) bool { return eids[i] < eids[j] })
			e1, ok1 := g.edges[eids[0]]
			e2, ok2 := g.edges[eids[1]]
			if !ok1 || !ok2 {
				continue
			}
			other1 := e1.OtherEnd(id)
			other2 := e2.OtherEnd(id)
			if other1 == "" || other2 == "" || other1 == other2 {
				continue
			}
			if !edgeDataEqual(e1.Data, e2.Data) {
				continue
			}
			p1, ok1 := g.nodes[other1]
			p2, ok2 := g.nodes[other2]
			if !ok1 || !ok2 {
				continue
			}
			if mathx.OrientationOf(p1.Position, n.Position, p2.Position) != mathx.Collinear {
				continue
			}

			newData := e1.Data.Clone()
			oldE1, oldE2, oldNode := e1.ID, e2.ID, id
			_ = g.RemoveEdgeLocked(oldE1)
			_ = g.RemoveEdgeLocked(oldE2)
			newEdge, err := g.AddEdgeBetweenNodesLocked(other1, other2, newData)
			if err != nil {
				continue
			}
			delta.Deleted = append(delta.Deleted, string(oldE1), string(oldE2), string(oldNode))
			delta.Created = append(delta.Created, string(newEdge))
			delta.AddAffected(other1, other2)
			mergedAny = true
			break
		}
		if !mergedAny {
			break
		}
	}

	g.RebuildSpatialIndices()
	return delta
}

// edgeDataEqual reports whether two EdgeData values are interchangeable for
// the purpose of collinear merging: same thickness, height, baseline, wall
// type, and opening list.
func edgeDataEqual(a, b EdgeData) bool {
	if a.Thickness != b.Thickness || a.Height != b.Height ||
		a.Baseline != b.Baseline || a.WallType != b.WallType {
		return false
	}
	if len(a.Openings) != len(b.Openings) {
		return false
	}
	for i := range a.Openings {
		if a.Openings[i] != b.Openings[i] {
			return false
		}
	}
	return true
}

// RoomsRebuildDirty invalidates rooms touching any affected node and
// rebuilds. This implementation takes the conservative path spec §4.E.4
// explicitly allows: clear all rooms and rebuild from scratch (room
// detection is O((V+E) log V), cheap enough that incremental invalidation
// buys little). Must be called with the write lock already held.
func (g *Graph) RoomsRebuildDirty(affected []NodeId) Delta {
	_ = affected // incremental invalidation not needed at this scale; see doc comment
	var delta Delta
	for id := range g.rooms {
		delta.Deleted = append(delta.Deleted, string(id))
	}
	g.rooms = make(map[RoomId]*TopoRoom)
	g.RebuildRoomsLocked()
	for id := range g.rooms {
		delta.Created = append(delta.Created, string(id))
	}
	return delta
}
