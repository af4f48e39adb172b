package clash

import (
	"github.com/dhconnelly/rtreego"

	"github.com/pensaer/geokernel/mathx"
)

const (
	minBranch = 25
	maxBranch = 50
	boxTol    = 1e-6
)

// boxItem is the rtreego.Spatial wrapping one candidate's AABB.
type boxItem struct {
	id  string
	box mathx.BBox3
}

func (b *boxItem) Bounds() rtreego.Rect {
	w := maxf(b.box.Max.X-b.box.Min.X, boxTol)
	h := maxf(b.box.Max.Y-b.box.Min.Y, boxTol)
	d := maxf(b.box.Max.Z-b.box.Min.Z, boxTol)
	r, err := rtreego.NewRect(rtreego.Point{b.box.Min.X, b.box.Min.Y, b.box.Min.Z}, []float64{w, h, d})
	if err != nil {
		r, _ = rtreego.NewRect(rtreego.Point{b.box.Min.X, b.box.Min.Y, b.box.Min.Z}, []float64{boxTol, boxTol, boxTol})
	}
	return r
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// broadPhaseIndex finds candidate ids whose AABB, expanded by a margin,
// might clash with a query box — narrowed precisely by classifyPair
// afterward.
type broadPhaseIndex struct {
	tree *rtreego.Rtree
}

func newBroadPhaseIndex(candidates []Candidate) *broadPhaseIndex {
	tree := rtreego.NewTree(3, minBranch, maxBranch)
	for i := range candidates {
		tree.Insert(&boxItem{id: candidates[i].ID, box: candidates[i].AABB})
	}
	return &broadPhaseIndex{tree: tree}
}

func (idx *broadPhaseIndex) overlapping(box mathx.BBox3, margin float64) []string {
	expanded := box.Expand(margin)
	w := maxf(expanded.Max.X-expanded.Min.X, boxTol)
	h := maxf(expanded.Max.Y-expanded.Min.Y, boxTol)
	d := maxf(expanded.Max.Z-expanded.Min.Z, boxTol)
	rect, err := rtreego.NewRect(rtreego.Point{expanded.Min.X, expanded.Min.Y, expanded.Min.Z}, []float64{w, h, d})
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(rect)
	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.(*boxItem).id)
	}
	return ids
}
