package mesh

import "github.com/pensaer/geokernel/mathx"

// Triangulate ear-clips a simple polygon, returning one `[3]int` per
// triangle indexing poly.Vertices. A CW input is traversed in reverse so
// every emitted triangle is consistently wound; the returned indices still
// refer to poly's original vertex order. A safety counter of n^2 bounds the
// number of ear-search rounds (spec §4.I); exhaustion returns
// ErrTriangulationFailed.
func Triangulate(poly mathx.Polygon2) ([][3]int, error) {
	n := poly.N()
	if n < 3 {
		return nil, mathx.ErrInsufficientVertices
	}
	if n == 3 {
		return [][3]int{{0, 1, 2}}, nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if !poly.IsCCW() {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	var triangles [][3]int
	safety := n * n
	for iter := 0; len(order) > 3 && iter < safety; iter++ {
		m := len(order)
		earIdx := -1
		for k := 0; k < m; k++ {
			prevIdx, currIdx, nextIdx := order[(k-1+m)%m], order[k], order[(k+1)%m]
			a, b, c := poly.At(prevIdx), poly.At(currIdx), poly.At(nextIdx)
			if !mathx.IsConvexVertex(a, b, c) {
				continue
			}
			if isEar(poly, order, prevIdx, currIdx, nextIdx, a, b, c) {
				earIdx = k
				break
			}
		}
		if earIdx == -1 {
			return nil, ErrTriangulationFailed
		}
		m = len(order)
		prevIdx, currIdx, nextIdx := order[(earIdx-1+m)%m], order[earIdx], order[(earIdx+1)%m]
		triangles = append(triangles, [3]int{prevIdx, currIdx, nextIdx})
		order = append(order[:earIdx], order[earIdx+1:]...)
	}
	if len(order) == 3 {
		triangles = append(triangles, [3]int{order[0], order[1], order[2]})
	}
	return triangles, nil
}

func isEar(poly mathx.Polygon2, order []int, prevIdx, currIdx, nextIdx int, a, b, c mathx.Point2) bool {
	for _, idx := range order {
		if idx == prevIdx || idx == currIdx || idx == nextIdx {
			continue
		}
		p := poly.At(idx)
		if coincidesWithCorner(p, a, b, c) {
			continue
		}
		if mathx.PointInTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

// coincidesWithCorner reports whether p is exactly one of the triangle's
// own corners — needed so bridge-duplicate vertices (introduced by hole
// stitching) don't falsely disqualify an ear.
func coincidesWithCorner(p, a, b, c mathx.Point2) bool {
	const exact = 0
	return p.Equal(a, exact) || p.Equal(b, exact) || p.Equal(c, exact)
}
