// Package lattice provides the mutable container every algorithm in this
// module operates on: a weighted finite-state transducer stored as dense,
// integer-identified states with slice-backed arc lists.
//
// What
//
//   - Fst[W]: a generic mutable FST whose arc and final weights are any
//     semiring weight type (Weight[W] capability set).
//   - Lattice: Fst over semiring.LatticeWeight — arc-labeled lattices where
//     each non-epsilon input label consumes one frame.
//   - CompactLattice: Fst over semiring.CompactLatticeWeight — acceptors
//     whose arc weights carry frame strings; an arc spans len(String) frames.
//   - Structure maintenance: IsTopSorted, TopSort (Kahn, deterministic),
//     TopSortIfNeeded, Connect (trim non-accessible and non-coaccessible
//     states), Clone.
//
// Why
//
//	The lattice algorithms (pruning, forward/backward, depth limiting,
//	shortest path, composition) all exploit the same two structural facts:
//	the graph is acyclic, and after TopSort every arc leads from a lower to
//	a strictly higher state id with the start state at id 0. This package
//	owns those facts so the algorithm packages can assume them.
//
// State ids
//
//	State ids are dense indices handed out by AddState in increasing order.
//	Passing an id that was never returned by AddState is a programmer error
//	and fails the slice bounds check. NoStateID (-1) marks "no state", e.g.
//	the start of an empty FST.
//
// Arc iteration
//
//	Arcs(s) returns the state's arc slice itself, not a copy. Reading it is
//	the immutable arc iterator of the FST contract; assigning to its
//	elements is the mutable one. The slice is invalidated by AddArc,
//	Connect, TopSort and DeleteStates.
//
// Concurrency
//
//	An Fst is not safe for concurrent mutation. Read-only operations may
//	share an Fst across goroutines; any mutating call requires exclusive
//	access for its whole duration.
//
// Errors
//
//   - ErrCycle         — topological sort found a cycle.
//   - ErrNotTopSorted  — an operation required a topologically sorted input.
//   - ErrBadStart      — the start state is missing or not state 0.
//   - ErrNilFst        — a nil *Fst was passed.
//
// These sentinels are shared by the algorithm packages, which wrap them
// with their own context via %w; branch with errors.Is.
package lattice
