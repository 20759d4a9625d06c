// Package latbuild constructs deterministic lattice fixtures for tests,
// examples and benchmarks.
//
// Design contract (strict):
//   - Determinism: same constructor, options and seed ⇒ identical lattices.
//   - Safety: never panic; constructors validate parameters early and
//     return sentinel errors.
//   - Every constructor returns a topologically sorted lattice whose start
//     state is 0 and whose states are all accessible and coaccessible.
//
// Constructors:
//
//   - LinearCompact — a single-path compact lattice: one arc per word, each
//     spanning the requested number of frames.
//   - LinearLattice — a single-path arc-labeled lattice: one frame-consuming
//     arc per label.
//   - RandomCompact — a random acyclic compact lattice with the requested
//     number of states, seeded via WithSeed.
//   - RandomLattice — the arc-labeled counterpart.
//
// Randomized constructors draw arc targets, labels, frame lengths and costs
// from a rand.Rand owned by the call; WithSeed freezes the stream. Random
// lattices are built so that every state lies on some start-to-final path,
// which the scoring and pruning tests rely on.
package latbuild
