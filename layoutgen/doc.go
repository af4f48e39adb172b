// Package layoutgen generates starter topology.Graph floor plans from
// builder's abstract structural generators (Cycle, Path, Star, Wheel,
// Complete, CompleteBipartite, Grid).
//
// builder only knows abstract vertices and edges; layoutgen assigns each
// abstract vertex a 2D position under a layout rule matched to the shape
// (grid cells on an orthogonal lattice, ring vertices on a circle, a hub at
// the origin with leaves around it, ...) and replays the abstract edges as
// topology wall edges between those positions, letting topology's own node
// snapping merge any positions shared by more than one edge.
//
// Each FloorPlan function fixes builder's vertex-ID scheme (the default
// decimal scheme, or Grid's/CompleteBipartite's own fixed schemes) because
// position assignment keys off those IDs; callers who need a different ID
// scheme should call builder and topology directly.
package layoutgen
