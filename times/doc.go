// Package times assigns each lattice state its frame index: the number of
// frames consumed along any path from the start state.
//
// What
//
//   - LatticeTimes: on an arc-labeled lattice, every non-epsilon input
//     label advances time by one frame; epsilon arcs keep it unchanged.
//     Returns the utterance length (the maximum state time) and the
//     per-state times.
//   - CompactLatticeTimes: on a compact lattice, every arc advances time by
//     the length of its frame string. The utterance length is the state
//     time plus the final weight's frame-string length, taken over final
//     states.
//
// Invariants
//
//	The input must be topologically sorted with start state 0. Every path
//	from the start to a given state must consume the same number of frames;
//	a violation on an arc-labeled lattice is a caller bug and returns
//	ErrInconsistentTimes. On a compact lattice, final states that disagree
//	about the total utterance length are reported through the warning hook
//	and the maximum is adopted; a compact lattice with no final state is
//	reported likewise and gets length 0.
//
// States that are not reachable from the start keep time −1; arcs leaving
// them do not propagate.
//
// Errors
//
//   - lattice.ErrNilFst        — nil input.
//   - lattice.ErrNotTopSorted  — input is not topologically sorted.
//   - lattice.ErrBadStart      — start state missing or not state 0.
//   - ErrInconsistentTimes     — two paths assign different times to a state.
package times
