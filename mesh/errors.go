package mesh

import "errors"

// ErrTriangulationFailed indicates ear-clipping exhausted its safety
// counter (n^2 iterations) without reducing the polygon to a single
// triangle — the input is self-intersecting or otherwise not simple.
var ErrTriangulationFailed = errors.New("mesh: triangulation failed")

// ErrNonPositiveHeight indicates an extrusion was asked to build a solid of
// zero or negative height.
var ErrNonPositiveHeight = errors.New("mesh: extrusion height must be positive")

// ErrNoBridgeVertex indicates a hole could not be connected to the outer
// boundary by a visible bridge segment.
var ErrNoBridgeVertex = errors.New("mesh: no visible bridge vertex found for hole")

// ErrNonPositiveThickness indicates a wall was asked to extrude with zero
// or negative thickness.
var ErrNonPositiveThickness = errors.New("mesh: wall thickness must be positive")

// ErrDegenerateWallBaseline indicates a wall's start and end point coincide.
var ErrDegenerateWallBaseline = errors.New("mesh: wall baseline has zero length")
