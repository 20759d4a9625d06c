// Package shortest extracts the single best path from a compact lattice and
// measures the longest sentence a lattice contains.
//
// What
//
//   - Path: dynamic programming over the topological order with a
//     (cost, predecessor) table and a virtual super-final entry. The
//     predecessor chain is walked back from the super-final to state 0 and
//     re-emitted as a fresh linear compact lattice; between consecutive
//     path states the cheapest of the parallel arcs is taken, first
//     encountered winning ties so results are reproducible.
//   - LongestSentenceLength / CompactLongestSentenceLength: the DAG longest
//     path counting word-bearing arcs — output labels on arc-labeled
//     lattices, input labels on compact lattices (acceptors may carry
//     epsilons if a caller has zeroed labels out).
//
// Both operations accept unsorted inputs by sorting a private copy; the
// original is never modified. A cycle is a caller bug and comes back as
// lattice.ErrCycle.
//
// A lattice with no start state yields an empty path (and length 0). A
// predecessor chain that breaks before reaching the start — possible only
// when every complete path has infinite cost — is reported through the
// warning hook and yields an empty path.
//
// Complexity: O(V + E) time past the optional sort, O(V) scratch.
package shortest
