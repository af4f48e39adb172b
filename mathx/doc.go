// Package mathx is the exact-arithmetic geometry foundation the rest of this
// module builds on: points, vectors, segments, bounding boxes, polygons,
// affine transforms, and the robust predicates (orientation, segment
// intersection, point-in-triangle, incircle) every higher layer calls
// instead of comparing floats directly.
//
// What:
//
//   - 2D/3D value types (Point2/3, Vector2/3, Segment2/3, BBox2/3, Polygon2).
//   - Robust predicates with an adaptive-precision fallback: a fast float64
//     determinant path, and an exact math/big.Float recomputation whenever
//     the fast path's result lands within its own a-priori error bound of
//     zero. The returned answer is always the mathematically correct one
//     for the given double-precision inputs.
//   - The canonical tolerance hierarchy: UiSnap > GeomTol > SnapMerge >
//     Quantize, plus the Epsilon used by Normalize's zero-length guard.
//
// Why:
//
//   - Planar topology healing (snap-merge, crossing-split) only terminates
//     and stays correct if "do these segments cross" never flips between
//     calls on the same inputs — ordinary float orientation tests flip sign
//     near the boundary and break that guarantee.
//
// Errors:
//
//	ErrZeroLengthVector     - Normalize called on a vector shorter than Epsilon.
//	ErrInsufficientVertices - a Polygon2 was built with fewer than 3 vertices.
//	ErrSelfIntersecting     - a Polygon2 failed IsSimple where simplicity is required.
//	ErrSingularTransform    - a Transform2/3 has no inverse.
//	ErrParallelLines        - two lines requested to intersect are parallel.
//	ErrDegenerateGeometry   - catch-all for zero-area / zero-length degeneracies.
package mathx
