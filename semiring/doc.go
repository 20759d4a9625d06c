// Package semiring defines the weight types carried by lattice arcs and the
// log-space arithmetic shared by every lattice algorithm.
//
// What
//
//   - LatticeWeight: a pair of tropical costs (graph/LM cost, acoustic cost).
//     The semiring product adds componentwise; the semiring sum picks the
//     pair with the smaller total cost.
//   - CompactLatticeWeight: a LatticeWeight plus a frame string — the
//     sequence of frame-level symbol ids an arc spans. The product
//     concatenates strings; an arc's duration is the string length.
//   - TropicalWeight: a single tropical cost, used by the deterministic
//     on-demand FSTs that compact lattices compose with.
//   - LogAdd / LogAddOrMax: numerically stable log-space accumulation for
//     the forward/backward engine, with a Viterbi (max) switch.
//
// Why
//
//	Every algorithm in this module reduces a weight to an additive float64
//	cost (+Inf for the semiring zero) and combines path scores either
//	tropically (min/max) or in log space. Centralizing that arithmetic keeps
//	the graph algorithms free of numeric concerns.
//
// Conventions
//
//   - Costs are non-negative; log-likelihoods are negated costs.
//   - A LatticeWeight with either component infinite is the semiring zero:
//     its cost is +Inf and no path through it can be extended. This also
//     makes componentwise products against a zero collaborator weight
//     collapse to zero, which composition relies on.
//   - Weight types are small values; all methods are value receivers and no
//     method mutates its receiver (Times and Plus return fresh values).
//
// Numerical stability
//
//	LogAdd(a, b) computes max + log1p(exp(min−max)) and never overflows;
//	for Viterbi accumulation a plain max suffices.
package semiring
