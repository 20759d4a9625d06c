// Package compose intersects a compact lattice with a deterministic
// on-demand FST — typically a language model wrapped as a transducer whose
// arcs are produced lazily, one query at a time.
//
// What
//
//	CompactLattice runs a breadth-first product construction over pairs
//	(lattice state, FST state). For every lattice arc with a word label,
//	the FST is asked for its single matching arc (determinism guarantees at
//	most one); the composed arc adds the FST arc's weight to the graph cost
//	and keeps the acoustic cost and frame string unchanged. Epsilon lattice
//	arcs advance the lattice side only. Newly discovered pairs are queued
//	and mapped to fresh output states; the result is trimmed with Connect.
//
// Why
//
//	A path survives composition iff its word sequence is accepted by both
//	sides, with the weights of both multiplied in — which is exactly
//	lattice rescoring against a new language model. Because the FST is
//	consulted only for labels the lattice actually carries, the FST may be
//	unboundedly large (an on-the-fly LM) at no extra cost: the construction
//	is lazy in the FST and eager in the lattice.
//
// Complexity: O(product states + product arcs) time and space; each
// lattice arc triggers at most one GetArc query per discovered FST state.
//
// Errors
//
//   - ErrNilDetFst       — nil oracle.
//   - lattice.ErrNilFst  — nil lattice.
package compose
