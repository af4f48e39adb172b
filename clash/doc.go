// Package clash detects clashes between elements' axis-aligned bounding
// boxes: an R-tree broad phase over pairs or two sets, narrowed into
// Duplicate / Hard / Clearance classifications with filter options for
// same-type suppression and allowed-type lists per side (spec §4.K).
//
// Grounded on `spatial`'s rtreego-backed broad-phase pattern, generalized
// from 2D edges to 3D boxes; classification itself is pure arithmetic over
// mathx.BBox3, exercised only at the interface to the topology/element
// model (a caller hands in id/type/AABB triples, never a live graph
// reference).
package clash
