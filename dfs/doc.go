// Package dfs implements cycle detection and topological sort on a
// core.Graph using depth-first search with three-color vertex marking.
//
// DetectCycles enumerates all simple cycles in directed or undirected graphs
// using vertex coloring (White, Gray, Black) with back-edge recording and
// canonical signature deduplication, so a cycle and its rotation/reversal are
// only reported once.
//
// TopologicalSort computes a linear ordering of vertices in a directed graph
// such that for every directed edge u→v, u appears before v. If the graph
// contains a cycle, ErrCycleDetected is returned.
//
// Circulation sequencing uses TopologicalSort to order construction work over
// the element dependency graph (floors, walls, hosted openings), and
// DetectCycles to diagnose why an ordering is impossible when one is found.
//
// Complexity:
//
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V+L_max)
//     (C=#cycles, L=avg cycle length)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  cycle discovered during TopologicalSort
package dfs
