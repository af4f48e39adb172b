// Package tsp provides a Traveling Salesman Problem solver over distance matrices, used by
// circulation routing to turn a set of reachable rooms into a single walkable tour. The API is
// a consistent dispatcher with strict sentinel errors, deterministic behavior, and stable cost
// rounding (1e-9).
//
// # What & Why
//
// Given an n×n distance matrix dist, tsp computes a Hamiltonian cycle (tour)
// visiting all vertices once and returning to the start.
//
//   - Approximation (symmetric metric): Christofides 1.5-approx (Christofides).
//
// # Algorithm & Complexity
//
//	Christofides (1.5-approx) — symmetric metric TSP only
//	  Pipeline: MST → minimum perfect matching (Blossom when available; else Greedy) →
//	            Eulerian circuit → shortcut to tour.
//	  Time:   typically O(n²) on dense metric instances.
//
// # Determinism & Stability
//
//   - No randomness anywhere in the pipeline; matching and Eulerian traversal are deterministic.
//   - Tie-breaks use indices. Costs are rounded to 1e-9 (round1e9) to avoid FP drift.
//   - CanonicalizeOrientationInPlace fixes tour direction under a fixed start vertex.
//
// # Input Requirements
//
//	dist must be a square n×n matrix, n≥2.  Diagonal ≈ 0 (|a_ii| ≤ 1e-12).  No negatives.
//	NaN is invalid.  +Inf denotes “missing edge” (allowed only with RunMetricClosure).
//
//	Symmetry (dist[i][j]==dist[j][i]) is required when opts.Algo == Christofides
//	or opts.Symmetric == true (explicit user request).
//
//	If opts.RunMetricClosure==false the validator rejects +Inf off-diagonal entries.
//	Otherwise, matrix-level metric closure (Floyd–Warshall) is applied upstream in matrix.
//
// # Options
//
//	type Options struct {
//	    StartVertex      int          // start/end vertex [0..n-1] (default 0)
//	    Algo             Algorithm    // only Christofides is wired
//	    Symmetric        bool         // require symmetry where needed (true by default)
//	    MatchingAlgo     MatchingAlgo // GreedyMatch or BlossomMatch (fallback to Greedy on sentinel)
//	    RunMetricClosure bool         // allow solving partially connected graphs via closure
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrNegativeWeight, ErrAsymmetry, ErrNonZeroDiagonal,
//	ErrIncompleteGraph, ErrDimensionMismatch, ErrStartOutOfRange,
//	ErrMatchingNotImplemented, ErrUnsupportedAlgorithm, ErrATSPNotSupportedByAlgo.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type TSResult struct {
//	    Tour []int    // len==n+1, Tour[0]==Tour[n]==StartVertex, each 0..n-1 appears once
//	    Cost float64  // rounded to 1e-9
//	}
package tsp
