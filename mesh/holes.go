package mesh

import (
	"math"
	"sort"

	"github.com/pensaer/geokernel/mathx"
)

// TriangulateWithHoles triangulates outer (forced CCW) with holes (each
// forced CW), bridging each hole into the outer boundary rightmost-first
// (spec §4.I). The result is returned as vertex triples rather than
// indices, since bridging fabricates duplicated vertices that exist in
// neither input slice.
func TriangulateWithHoles(outer mathx.Polygon2, holes []mathx.Polygon2) ([][3]mathx.Point2, error) {
	verts := append([]mathx.Point2{}, outer.EnsureCCW().Vertices...)

	type ordered struct {
		poly mathx.Polygon2
		maxX float64
	}
	orderedHoles := make([]ordered, len(holes))
	for i, h := range holes {
		cw := h.EnsureCW()
		maxX := math.Inf(-1)
		for _, v := range cw.Vertices {
			if v.X > maxX {
				maxX = v.X
			}
		}
		orderedHoles[i] = ordered{poly: cw, maxX: maxX}
	}
	sort.Slice(orderedHoles, func(i, j int) bool { return orderedHoles[i].maxX > orderedHoles[j].maxX })

	for _, oh := range orderedHoles {
		var err error
		verts, err = bridgeHole(verts, oh.poly)
		if err != nil {
			return nil, err
		}
	}

	bridged, err := mathx.NewPolygon2(verts)
	if err != nil {
		return nil, err
	}
	idxTris, err := Triangulate(bridged)
	if err != nil {
		return nil, err
	}
	out := make([][3]mathx.Point2, len(idxTris))
	for i, tri := range idxTris {
		out[i] = [3]mathx.Point2{bridged.At(tri[0]), bridged.At(tri[1]), bridged.At(tri[2])}
	}
	return out, nil
}

// bridgeHole splices hole into outer as outer[0..=B] ++ hole-from-H ++ H ++
// B ++ outer[B+1..], introducing the two coincident-vertex pairs ear-clip's
// coincidence rule tolerates.
func bridgeHole(outer []mathx.Point2, hole mathx.Polygon2) ([]mathx.Point2, error) {
	hIdx := rightmostIndex(hole.Vertices)
	h := hole.Vertices[hIdx]

	bIdx, err := findBridgeVertex(outer, h)
	if err != nil {
		return nil, err
	}
	b := outer[bIdx]
	rotatedHole := rotateFrom(hole.Vertices, hIdx)

	result := make([]mathx.Point2, 0, len(outer)+len(hole.Vertices)+2)
	result = append(result, outer[:bIdx+1]...)
	result = append(result, rotatedHole...)
	result = append(result, h, b)
	result = append(result, outer[bIdx+1:]...)
	return result, nil
}

func rightmostIndex(pts []mathx.Point2) int {
	best := 0
	for i, p := range pts {
		if p.X > pts[best].X {
			best = i
		}
	}
	return best
}

func rotateFrom(pts []mathx.Point2, start int) []mathx.Point2 {
	n := len(pts)
	out := make([]mathx.Point2, n)
	for i := 0; i < n; i++ {
		out[i] = pts[(start+i)%n]
	}
	return out
}

// findBridgeVertex casts a ray from h toward +X, finds the nearest outer
// edge it crosses, and scores the two candidate endpoints of that edge by
// dx + 0.1*|dy|; falls back to the closest visible outer vertex overall if
// the ray-cast winner turns out not to be visible from h.
func findBridgeVertex(outer []mathx.Point2, h mathx.Point2) (int, error) {
	n := len(outer)
	bestDist := math.Inf(1)
	bestEdge := -1
	for i := 0; i < n; i++ {
		a, b := outer[i], outer[(i+1)%n]
		if a.Y == b.Y {
			continue
		}
		loY, hiY := a.Y, b.Y
		if loY > hiY {
			loY, hiY = hiY, loY
		}
		if h.Y < loY || h.Y > hiY {
			continue
		}
		t := (h.Y - a.Y) / (b.Y - a.Y)
		x := a.X + t*(b.X-a.X)
		if x < h.X {
			continue
		}
		d := x - h.X
		if d < bestDist {
			bestDist, bestEdge = d, i
		}
	}
	if bestEdge == -1 {
		return 0, ErrNoBridgeVertex
	}

	a, b := outer[bestEdge], outer[(bestEdge+1)%n]
	candidate := bestEdge
	if weightedDist(h, b) < weightedDist(h, a) {
		candidate = (bestEdge + 1) % n
	}
	if isVisible(outer, h, outer[candidate]) {
		return candidate, nil
	}

	type cand struct {
		idx int
		d   float64
	}
	all := make([]cand, n)
	for i, v := range outer {
		all[i] = cand{i, weightedDist(h, v)}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].d < all[j].d })
	for _, c := range all {
		if isVisible(outer, h, outer[c.idx]) {
			return c.idx, nil
		}
	}
	return 0, ErrNoBridgeVertex
}

func weightedDist(h, v mathx.Point2) float64 {
	return math.Abs(v.X-h.X) + 0.1*math.Abs(v.Y-h.Y)
}

// isVisible reports whether segment (from, to) properly crosses no outer
// edge other than the ones incident to from or to.
func isVisible(outer []mathx.Point2, from, to mathx.Point2) bool {
	n := len(outer)
	for i := 0; i < n; i++ {
		a, b := outer[i], outer[(i+1)%n]
		if a == from || a == to || b == from || b == to {
			continue
		}
		if mathx.SegmentsProperlyIntersect(from, to, a, b) {
			return false
		}
	}
	return true
}
