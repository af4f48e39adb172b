// Package element adapts the planar graph in topology and the meshing
// operations in mesh into typed BIM elements: walls, floors, roofs, rooms,
// doors, and windows, each identified, bounded, and renderable the same way
// regardless of kind.
//
// Grounded on pensaer-geometry/src/element.rs (the Element trait and
// ElementType enum) and elements/{wall,floor,roof,room}.rs, adapted from a
// trait-object design to a plain Go interface satisfied by value types.
package element

import "errors"

// ErrEmptyBoundary is returned when an element has no vertices to bound.
var ErrEmptyBoundary = errors.New("element: boundary has no vertices")
