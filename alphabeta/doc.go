// Package alphabeta computes forward (alpha) and backward (beta) scores
// over a topologically sorted lattice of either kind.
//
// What
//
//	Compute walks the states once forward and once backward, accumulating
//	negated-cost log-likelihoods per state:
//
//	  alpha[s] — score from the start state to s
//	  beta[s]  — score from s to any final state
//
//	under one of two combine rules, selected by the viterbi flag:
//
//	  viterbi=true  — max        (best single path)
//	  viterbi=false — LogAdd     (sum over all paths, log semiring)
//
//	The return value is the total lattice score: the forward and backward
//	totals averaged. The two totals agree up to floating-point
//	associativity; a relative disagreement beyond 1e-8 is reported through
//	the warning hook and both are still averaged.
//
// Why
//
//	Alphas and betas are the raw material of beam pruning, depth limiting
//	and posterior computation: an arc's best-path score through the lattice
//	is alpha[source] + arc-log-likelihood + beta[destination].
//
// Complexity: O(V + E) time, O(V) space for the two score arrays, which the
// caller owns on return.
//
// Errors
//
//   - lattice.ErrNilFst        — nil input.
//   - lattice.ErrNotTopSorted  — input must be sorted; Compute never sorts.
//   - lattice.ErrBadStart      — start state missing or not state 0.
package alphabeta
