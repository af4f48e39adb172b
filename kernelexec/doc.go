// Package kernelexec is the command executor: the single write path
// through which a topology.Graph is ever mutated.
//
// What: Execute takes a method name and raw JSON params, quantizes the
// params (package quantize), dispatches to a handler that performs exactly
// one structural mutation and returns the touched node set, runs the four
// healing passes over that mutation while still holding the graph's write
// lock, and returns a canonicalized Response — success with a delta, or
// failure with an error message. No other code path in this module calls a
// topology.Graph mutator.
//
// Why: spec §4.H requires every mutation to go through quantize -> dispatch
// -> heal -> canonicalize as one atomic sequence; centralizing it here
// means every handler is a small, auditable function and the locking
// discipline (Lock once, call *Locked methods) lives in one place.
package kernelexec
