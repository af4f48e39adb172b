// Package mesh turns 2D polygons (room floors, wall footprints) into 3D
// triangle meshes and writes them out as OBJ.
//
// What: Triangulate ear-clips a simple CCW polygon (auto-reversing a CW
// one), using the robust is_convex_vertex / point_in_triangle predicates
// from mathx so near-degenerate ears are classified correctly.
// TriangulateWithHoles bridges each hole into the outer boundary
// rightmost-first before triangulating. Extrude produces a closed solid
// from a 2D footprint and a height. ExtrudeWallWithOpenings builds a wall
// slab over a baseline and thickness, cutting each RectOpening all the way
// through (ε-shrinking any opening edge flush with the panel boundary) and
// closing the outer perimeter and every opening reveal with quads.
// WriteOBJ serializes a Mesh as `v`/`vn`/`f` lines.
//
// Why: the topology graph and its healing passes (package topology) only
// ever reason about the 2D plan; everything 3D — what a renderer or
// exporter actually draws — is produced on demand from that plan by this
// package, kept independent of topology so it can be exercised directly
// from tests or a future IFC/OBJ export path without touching the graph.
package mesh
