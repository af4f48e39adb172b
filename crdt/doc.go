// Package crdt implements the conflict-free replicated state a
// multi-session model needs to merge concurrent edits without a central
// lock: a vector clock for causal ordering, a last-writer-wins register
// for single-value conflict resolution, and an operation log that
// deduplicates and causally orders a replicated edit history (spec §4.L).
//
// Ported from `original_source/kernel/pensaer-crdt/src/lib.rs`, which the
// distilled spec only specifies at the interface (vector clock + LWW
// register + operation log, see SPEC_FULL.md's supplemented-features
// list) — the saturating-add, point-wise-max merge, and replica-id
// tiebreak rules below follow that source exactly, re-expressed as Go
// value types with pointer-receiver mutators instead of Rust's &mut self.
package crdt
