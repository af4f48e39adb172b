package mathx

import "errors"

// Sentinel errors for geometric degeneracy, per spec §7 "Geometric degeneracy".
// Callers branch on these with errors.Is; they are never wrapped with
// formatted context at the definition site.
var (
	// ErrZeroLengthVector indicates Normalize was called on a vector whose
	// magnitude is below Epsilon.
	ErrZeroLengthVector = errors.New("mathx: zero-length vector")

	// ErrInsufficientVertices indicates a polygon was built with fewer than
	// three vertices.
	ErrInsufficientVertices = errors.New("mathx: polygon needs at least 3 vertices")

	// ErrSelfIntersecting indicates a polygon failed IsSimple where
	// simplicity is a precondition (triangulation, containment).
	ErrSelfIntersecting = errors.New("mathx: polygon is self-intersecting")

	// ErrSingularTransform indicates a Transform2/Transform3 has no inverse.
	ErrSingularTransform = errors.New("mathx: transform is singular")

	// ErrParallelLines indicates two lines requested to intersect never meet.
	ErrParallelLines = errors.New("mathx: lines are parallel")

	// ErrDegenerateGeometry is the catch-all for zero-area / zero-length
	// degeneracies not covered by a more specific sentinel.
	ErrDegenerateGeometry = errors.New("mathx: degenerate geometry")
)
