package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/pensaer/geokernel/mathx"
)

// edgeItem is the rtreego.Spatial wrapping one indexed edge's AABB.
type edgeItem struct {
	id   string
	a, b mathx.Point2
}

func (e *edgeItem) aabb() mathx.BBox2 { return mathx.NewBBox2(e.a, e.b) }

func (e *edgeItem) Bounds() rtreego.Rect {
	box := e.aabb()
	w := maxf(box.Max.X-box.Min.X, pointTol)
	h := maxf(box.Max.Y-box.Min.Y, pointTol)
	r, err := rtreego.NewRect(rtreego.Point{box.Min.X, box.Min.Y}, []float64{w, h})
	if err != nil {
		r, _ = rtreego.NewRect(rtreego.Point{box.Min.X, box.Min.Y}, []float64{pointTol, pointTol})
	}
	return r
}

// EdgeIndex is an R-tree over edge segment AABBs, keyed by id-as-string.
type EdgeIndex struct {
	tree  *rtreego.Rtree
	items map[string]*edgeItem
}

// NewEdgeIndex returns an empty edge index.
func NewEdgeIndex() *EdgeIndex {
	return &EdgeIndex{
		tree:  rtreego.NewTree(2, minBranch, maxBranch),
		items: make(map[string]*edgeItem),
	}
}

// Insert adds or repositions the entry for id.
func (idx *EdgeIndex) Insert(id string, a, b mathx.Point2) {
	if old, ok := idx.items[id]; ok {
		idx.tree.Delete(old)
	}
	item := &edgeItem{id: id, a: a, b: b}
	idx.items[id] = item
	idx.tree.Insert(item)
}

// Remove deletes the entry for id, if present.
func (idx *EdgeIndex) Remove(id string) {
	item, ok := idx.items[id]
	if !ok {
		return
	}
	idx.tree.Delete(item)
	delete(idx.items, id)
}

// Len returns the number of indexed edges.
func (idx *EdgeIndex) Len() int { return len(idx.items) }

// PotentiallyIntersecting returns every indexed edge id whose AABB overlaps
// the AABB of segment a-b — a broad-phase filter; callers narrow with a
// robust segment predicate.
func (idx *EdgeIndex) PotentiallyIntersecting(a, b mathx.Point2) []string {
	box := mathx.NewBBox2(a, b)
	w := maxf(box.Max.X-box.Min.X, pointTol)
	h := maxf(box.Max.Y-box.Min.Y, pointTol)
	rect, err := rtreego.NewRect(rtreego.Point{box.Min.X, box.Min.Y}, []float64{w, h})
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(rect)
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*edgeItem).id)
	}
	return ids
}

// NearPoint returns every indexed edge id whose AABB, expanded by tol, still
// contains p — a broad-phase filter for "closest edge to a click" style
// queries.
func (idx *EdgeIndex) NearPoint(p mathx.Point2, tol float64) []string {
	box, err := rtreego.NewRect(rtreego.Point{p.X - tol, p.Y - tol}, []float64{2 * tol, 2 * tol})
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(box)
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*edgeItem).id)
	}
	return ids
}

// InEnvelope returns every indexed edge id whose AABB overlaps [min, max].
func (idx *EdgeIndex) InEnvelope(min, max mathx.Point2) []string {
	w := maxf(max.X-min.X, pointTol)
	h := maxf(max.Y-min.Y, pointTol)
	rect, err := rtreego.NewRect(rtreego.Point{min.X, min.Y}, []float64{w, h})
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(rect)
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.(*edgeItem).id)
	}
	return ids
}

// EdgeEndpoints identifies a segment by its two endpoints, keyed for Rebuild.
type EdgeEndpoints struct {
	A, B mathx.Point2
}

// Rebuild discards the current tree and bulk-loads it from segments.
func (idx *EdgeIndex) Rebuild(segments map[string]EdgeEndpoints) {
	idx.tree = rtreego.NewTree(2, minBranch, maxBranch)
	idx.items = make(map[string]*edgeItem, len(segments))
	for id, seg := range segments {
		item := &edgeItem{id: id, a: seg.A, b: seg.B}
		idx.items[id] = item
		idx.tree.Insert(item)
	}
}
