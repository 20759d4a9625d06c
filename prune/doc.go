// Package prune removes lattice arcs and final weights whose best complete
// path exceeds the lattice's best final cost by more than a beam.
//
// What
//
//	Prune computes Viterbi forward costs (min-plus, positive costs), finds
//	the best final cost, and sets the cutoff at best + beam. A backward
//	sweep then:
//
//	  - clears the final weight of any final state whose forward+final cost
//	    exceeds the cutoff,
//	  - redirects any arc whose full-path cost (forward[s] + arc cost +
//	    backward[next]) exceeds the cutoff to a freshly allocated sentinel
//	    state.
//
//	The sentinel state is never final, so Connect purges it together with
//	everything that only survived through pruned arcs. An arc survives iff
//	its full-path cost is ≤ the cutoff, so the best path itself survives
//	for any beam ≥ 0 and every surviving arc lies on some path within the
//	beam.
//
// Works on both lattice kinds: the frame strings of compact weights play
// no role in the costs.
//
// Inputs that are not topologically sorted are sorted first; a cycle is
// reported through the warning hook and Prune returns false without
// touching the lattice further (a cyclic lattice is a decoder bug, but the
// caller may want to skip the utterance rather than crash).
//
// Complexity: O((V + E) log V) when a sort is needed, O(V + E) otherwise;
// O(V) scratch.
//
// Errors
//
//   - ErrBadBeam        — beam is not positive.
//   - lattice.ErrNilFst — nil input.
package prune
