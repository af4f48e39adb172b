// Package joins detects where walls meet and computes the miter profile
// geometry a renderer needs to close the gap cleanly.
//
// What: DetectJoins takes a flat list of wall baselines (id, endpoints,
// thickness) and a distance/angle tolerance pair, and returns one
// JoinGeometry per detected join: endpoint-endpoint (classified Butt,
// LJoin, or Miter by the angle between the two wall directions), T-join
// (one wall's endpoint lands in the interior of another's baseline), and
// Cross (two baselines properly cross). Each JoinGeometry carries one
// WallProfile per participating wall — the four corners (inner/outer,
// near/far) a mesher needs to trim the wall's extruded end.
//
// Why: wall extrusion (package mesh) produces square-cut ends; without a
// join resolver, two walls meeting at an angle leave a visible gap or
// overlap at the corner. This package is purely geometric — it does not
// touch the topology graph and has no side effects, so it can be called
// from a read path (e.g. a `solve_joins` command that recomputes joins for
// rendering without mutating the model).
package joins
