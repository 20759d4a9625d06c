// Package align decodes a linear compact lattice into word-level timing:
// for every arc, the word label, the frame where it begins, and how many
// frames it lasts.
//
// The input must be linear — a single chain of arcs from the start state to
// one final state, as produced by shortest-path extraction. Any branching
// (a state with more than one outgoing arc, or a final state that still has
// arcs) is reported through the warning hook and decoding fails with
// cleared outputs. Word labels of zero are emitted like any other; the
// caller decides what epsilon means.
//
// A final weight that still carries frames is reported as approximate (the
// lattice was probably not word-aligned) but decoding succeeds.
//
// The three output slices always have equal length; on failure they are
// empty.
package align
