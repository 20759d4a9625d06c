// Package depth measures and limits how many arcs of a compact lattice
// cross each frame.
//
// What
//
//   - Limit caps the per-frame arc count: arcs are scored by their best
//     complete-path score (Viterbi alpha[s] + beta[next] − arc cost,
//     relative to the lattice best), each arc is entered into every frame
//     it spans, and frames holding more than the cap keep only their
//     best-scoring arcs. Dropped arcs are redirected to a dead sentinel
//     state and purged by Connect; the result is re-sorted if needed.
//   - Mean returns the average number of arc frames per frame of the
//     utterance — Σ frame-string lengths (arcs and final weights) divided
//     by the utterance length — together with that length. An empty or
//     zero-length lattice has depth 1.
//   - PerFrame returns, per frame, the count of arcs and final-weight
//     strings covering it.
//
// Why
//
//	Deep lattices blow up downstream rescoring; limiting depth frame by
//	frame removes overlapping hypotheses while keeping the globally
//	best-scoring arcs. Applying Limit twice with the same cap equals
//	applying it once: the survivors of the first pass already satisfy the
//	cap everywhere.
//
// Mean and PerFrame require a topologically sorted input and never sort;
// Limit sorts when needed (a cycle is a fatal caller bug).
//
// Errors
//
//   - ErrBadDepth            — depth cap below one.
//   - ErrScoreMismatch       — an arc scored above the lattice best, which
//     means the lattice violated its structural contract.
//   - lattice.ErrNilFst / lattice.ErrNotTopSorted / lattice.ErrCycle, and
//     the times package's errors, passed through wrapped.
package depth
