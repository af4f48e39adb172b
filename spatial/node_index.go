package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/pensaer/geokernel/mathx"
)

// rtree branch factors; generous defaults for the node counts a single
// building floor plan is expected to reach.
const (
	minBranch = 25
	maxBranch = 50

	// pointTol is the half-width of the degenerate box rtreego requires for
	// a point-shaped entry (it rejects zero-length rectangle sides).
	pointTol = 1e-7
)

// nodeItem is the rtreego.Spatial wrapping one indexed node.
type nodeItem struct {
	id  string
	pos mathx.Point2
}

func (n *nodeItem) Bounds() rtreego.Rect {
	pt := rtreego.Point{n.pos.X, n.pos.Y}
	r, err := pt.ToRect(pointTol)
	if err != nil {
		// ToRect only fails for a non-positive tolerance, which pointTol
		// never is; guard anyway rather than panic on a library surprise.
		r, _ = rtreego.NewRect(rtreego.Point{n.pos.X - pointTol, n.pos.Y - pointTol}, []float64{2 * pointTol, 2 * pointTol})
	}
	return r
}

// NodeIndex is an R-tree over node positions, keyed by id-as-string.
type NodeIndex struct {
	tree  *rtreego.Rtree
	items map[string]*nodeItem
}

// NewNodeIndex returns an empty node index.
func NewNodeIndex() *NodeIndex {
	return &NodeIndex{
		tree:  rtreego.NewTree(2, minBranch, maxBranch),
		items: make(map[string]*nodeItem),
	}
}

// Insert adds or repositions the entry for id.
func (idx *NodeIndex) Insert(id string, pos mathx.Point2) {
	if old, ok := idx.items[id]; ok {
		idx.tree.Delete(old)
	}
	item := &nodeItem{id: id, pos: pos}
	idx.items[id] = item
	idx.tree.Insert(item)
}

// Remove deletes the entry for id, if present.
func (idx *NodeIndex) Remove(id string) {
	item, ok := idx.items[id]
	if !ok {
		return
	}
	idx.tree.Delete(item)
	delete(idx.items, id)
}

// Len returns the number of indexed nodes.
func (idx *NodeIndex) Len() int { return len(idx.items) }

// WithinRadius returns every indexed id within r of p (inclusive), nearest
// first.
func (idx *NodeIndex) WithinRadius(p mathx.Point2, r float64) []string {
	box, err := rtreego.NewRect(rtreego.Point{p.X - r, p.Y - r}, []float64{2 * r, 2 * r})
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(box)
	type scored struct {
		id string
		d  float64
	}
	out := make([]scored, 0, len(hits))
	for _, h := range hits {
		n := h.(*nodeItem)
		d := n.pos.DistanceTo(p)
		if d <= r {
			out = append(out, scored{n.id, d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].d < out[j].d })
	ids := make([]string, len(out))
	for i, s := range out {
		ids[i] = s.id
	}
	return ids
}

// Nearest returns the id of the closest indexed node to p, and false if the
// index is empty.
func (idx *NodeIndex) Nearest(p mathx.Point2) (string, bool) {
	res := idx.tree.NearestNeighbor(rtreego.Point{p.X, p.Y})
	if res == nil {
		return "", false
	}
	return res.(*nodeItem).id, true
}

// KNearest returns up to k indexed ids closest to p, nearest first.
func (idx *NodeIndex) KNearest(p mathx.Point2, k int) []string {
	if k <= 0 {
		return nil
	}
	res := idx.tree.NearestNeighbors(k, rtreego.Point{p.X, p.Y})
	ids := make([]string, 0, len(res))
	for _, r := range res {
		if r == nil {
			continue
		}
		ids = append(ids, r.(*nodeItem).id)
	}
	return ids
}

// InEnvelope returns every indexed id whose position lies within the
// axis-aligned box [min, max].
func (idx *NodeIndex) InEnvelope(min, max mathx.Point2) []string {
	box, err := rtreego.NewRect(rtreego.Point{min.X, min.Y}, []float64{
		maxf(max.X-min.X, pointTol), maxf(max.Y-min.Y, pointTol),
	})
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(box)
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*nodeItem).id)
	}
	return ids
}

// Rebuild discards the current tree and bulk-loads it from positions,
// cheaper than incremental repair after a batch of union-find merges.
func (idx *NodeIndex) Rebuild(positions map[string]mathx.Point2) {
	idx.tree = rtreego.NewTree(2, minBranch, maxBranch)
	idx.items = make(map[string]*nodeItem, len(positions))
	for id, pos := range positions {
		item := &nodeItem{id: id, pos: pos}
		idx.items[id] = item
		idx.tree.Insert(item)
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
