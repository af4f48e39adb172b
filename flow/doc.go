// Package flow implements Dinic's maximum-flow algorithm on graphs represented
// by *core.Graph. Circulation routing uses it to measure the narrowest doorway
// chain between a room and an exterior exit — the bottleneck capacity of the
// egress path, not just its existence.
//
//   - Method: level graph construction + blocking-flow via DFS.
//   - Time:   O(E · √V) on unit-capacity networks (general networks often near O(E·√V)).
//   - Memory: O(V + E) for level map, adjacency slices, and recursion state.
//
// # Graph Support
//
// Dinic operates on *core.Graph, respecting its configuration flags:
//
//	– Directed or undirected edges (with per-edge mixed direction support).
//	– Weighted edges (capacity values).
//	– Optional multi-edges (parallel edges aggregated).
//	– Optional loops (ignored for augmenting-path search).
//
// Capacities are represented as int64, but an Epsilon threshold (float64)
// filters very small weights when aggregating parallel edges.
//
// # API
//
// FlowOptions configures the solver:
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // for cancellation / timeouts
//	    Epsilon              float64         // ignore capacities ≤ Epsilon during build
//	    Verbose              bool            // log each augmentation step
//	    LevelRebuildInterval int             // rebuild level graph every N pushes (0=never)
//	}
//
// Use DefaultOptions() to obtain production-safe defaults:
//
//	opts := flow.DefaultOptions()
//	// opts.Ctx = context.Background()
//	// opts.Epsilon = 1e-9
//
//	func Dinic(
//	    g *core.Graph,
//	    source, sink string,
//	    opts FlowOptions,
//	) (maxFlow float64, residual *core.Graph, err error)
//
// Dinic returns the computed maximum flow value and a **residual graph** that
// preserves all original configuration flags (directedness, weighting, loops,
// multi-edges, mixed-edges). The residual graph's edges correspond to
// remaining forward capacity and newly created reverse edges.
//
// # Errors
//
//	ErrSourceNotFound - if the source vertex is missing in the input graph.
//	ErrSinkNotFound   - if the sink vertex is missing.
//	EdgeError         - if a negative capacity (beyond Epsilon) is encountered.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
//
// # Integration
//
//   - Relies on github.com/pensaer/geokernel/core for graph storage and iteration.
package flow
