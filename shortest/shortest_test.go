// Package shortest_test covers 1-best extraction (optimality, tie-breaks,
// unsorted inputs, degenerate lattices) and longest-sentence counting.
package shortest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emoryjianghang/eesen/alphabeta"
	"github.com/emoryjianghang/eesen/latbuild"
	"github.com/emoryjianghang/eesen/lattice"
	"github.com/emoryjianghang/eesen/semiring"
	"github.com/emoryjianghang/eesen/shortest"
)

func clw(g, a float32, str ...int32) semiring.CompactLatticeWeight {
	return semiring.NewCompactLatticeWeight(semiring.NewLatticeWeight(g, a), str)
}

func TestPath_PicksCheaperParallelArc(t *testing.T) {
	// Parallel arcs 0→1 with weights (1,0) and (2,0); the (1,0) arc wins.
	clat := lattice.NewCompactLattice()
	s0, s1 := clat.AddState(), clat.AddState()
	clat.SetStart(s0)
	clat.AddArc(s0, lattice.CompactLatticeArc{ILabel: 7, OLabel: 7, Weight: clw(2, 0, 1), Next: s1})
	clat.AddArc(s0, lattice.CompactLatticeArc{ILabel: 7, OLabel: 7, Weight: clw(1, 0, 1), Next: s1})
	clat.SetFinal(s1, clw(0, 0))

	best, err := shortest.Path(clat)
	require.NoError(t, err)
	require.Equal(t, lattice.StateID(2), best.NumStates())
	require.Equal(t, 1, best.NumArcs(0))
	require.Equal(t, float32(1), best.Arcs(0)[0].Weight.Weight.Graph)
	require.False(t, best.Final(1).IsZero())
}

func TestPath_TieKeepsFirstArc(t *testing.T) {
	// Equal-cost parallel arcs: the first added must win.
	clat := lattice.NewCompactLattice()
	s0, s1 := clat.AddState(), clat.AddState()
	clat.SetStart(s0)
	clat.AddArc(s0, lattice.CompactLatticeArc{ILabel: 1, OLabel: 1, Weight: clw(1, 0, 1), Next: s1})
	clat.AddArc(s0, lattice.CompactLatticeArc{ILabel: 2, OLabel: 2, Weight: clw(0, 1, 1), Next: s1})
	clat.SetFinal(s1, clw(0, 0))

	best, err := shortest.Path(clat)
	require.NoError(t, err)
	require.Equal(t, int32(1), best.Arcs(0)[0].ILabel)
}

func TestPath_Optimality_Random(t *testing.T) {
	for _, seed := range []int64{1, 5, 17} {
		clat, err := latbuild.RandomCompact(60, latbuild.WithSeed(seed))
		require.NoError(t, err)

		best, err := shortest.Path(clat)
		require.NoError(t, err)

		// The path's cost must equal the Viterbi best of the input.
		wantBest, _, _, err := alphabeta.Compute(clat, true)
		require.NoError(t, err)
		gotBest, _, _, err := alphabeta.Compute(best, true)
		require.NoError(t, err)
		require.InDelta(t, wantBest, gotBest, 1e-9, "seed %d", seed)

		// And the output must be linear.
		for s := lattice.StateID(0); s < best.NumStates(); s++ {
			require.LessOrEqual(t, best.NumArcs(s), 1)
		}
	}
}

func TestPath_UnsortedInputLeftIntact(t *testing.T) {
	// 0 → 2 → 1(final) by state id: unsorted, but a valid DAG.
	clat := lattice.NewCompactLattice()
	s0, s1, s2 := clat.AddState(), clat.AddState(), clat.AddState()
	clat.SetStart(s0)
	clat.AddArc(s0, lattice.CompactLatticeArc{ILabel: 1, OLabel: 1, Weight: clw(1, 0, 1), Next: s2})
	clat.AddArc(s2, lattice.CompactLatticeArc{ILabel: 2, OLabel: 2, Weight: clw(1, 0, 2), Next: s1})
	clat.SetFinal(s1, clw(0, 0))

	best, err := shortest.Path(clat)
	require.NoError(t, err)
	require.Equal(t, lattice.StateID(3), best.NumStates())
	require.False(t, clat.IsTopSorted(), "input must not be sorted in place")
}

func TestPath_StartOnlyLattice(t *testing.T) {
	clat := lattice.NewCompactLattice()
	s0 := clat.AddState()
	clat.SetStart(s0)
	clat.SetFinal(s0, clw(0.5, 0))

	best, err := shortest.Path(clat)
	require.NoError(t, err)
	require.Equal(t, lattice.StateID(1), best.NumStates())
	require.InDelta(t, 0.5, best.Final(0).Cost(), 1e-9)
}

func TestPath_Empty(t *testing.T) {
	best, err := shortest.Path(lattice.NewCompactLattice())
	require.NoError(t, err)
	require.Equal(t, lattice.StateID(0), best.NumStates())
}

func TestPath_InfiniteCostsWarnAndEmpty(t *testing.T) {
	// The only final weight is the semiring zero: no finishable path.
	clat := lattice.NewCompactLattice()
	s0, s1 := clat.AddState(), clat.AddState()
	clat.SetStart(s0)
	clat.AddArc(s0, lattice.CompactLatticeArc{ILabel: 1, OLabel: 1, Weight: clw(1, 0, 1), Next: s1})

	var warned bool
	best, err := shortest.Path(clat, shortest.WithOnWarn(func(string) { warned = true }))
	require.NoError(t, err)
	require.True(t, warned)
	require.Equal(t, lattice.StateID(0), best.NumStates())
}

func TestPath_CycleFails(t *testing.T) {
	clat := lattice.NewCompactLattice()
	s0, s1 := clat.AddState(), clat.AddState()
	clat.SetStart(s0)
	clat.AddArc(s0, lattice.CompactLatticeArc{Weight: clw(0, 0), Next: s1})
	clat.AddArc(s1, lattice.CompactLatticeArc{Weight: clw(0, 0), Next: s0})

	_, err := shortest.Path(clat)
	require.ErrorIs(t, err, lattice.ErrCycle)
}

func TestLongestSentenceLength(t *testing.T) {
	// Two paths: three words vs. one word plus epsilons.
	lat := lattice.NewLattice()
	for i := 0; i < 5; i++ {
		lat.AddState()
	}
	one := semiring.LatticeWeight{}.One()
	lat.SetStart(0)
	lat.AddArc(0, lattice.LatticeArc{ILabel: 1, OLabel: 1, Weight: one, Next: 1})
	lat.AddArc(1, lattice.LatticeArc{ILabel: 2, OLabel: 2, Weight: one, Next: 2})
	lat.AddArc(2, lattice.LatticeArc{ILabel: 3, OLabel: 3, Weight: one, Next: 4})
	lat.AddArc(0, lattice.LatticeArc{ILabel: 4, OLabel: 4, Weight: one, Next: 3})
	lat.AddArc(3, lattice.LatticeArc{ILabel: 5, OLabel: 0, Weight: one, Next: 4})
	lat.SetFinal(4, one)

	n, err := shortest.LongestSentenceLength(lat)
	require.NoError(t, err)
	require.Equal(t, int32(3), n)
}

func TestCompactLongestSentenceLength(t *testing.T) {
	clat, err := latbuild.LinearCompact([]int32{10, 0, 20}, []int32{1, 1, 1})
	require.NoError(t, err)

	// The zero-labeled middle arc must not count.
	n, err := shortest.CompactLongestSentenceLength(clat)
	require.NoError(t, err)
	require.Equal(t, int32(2), n)
}

func TestLongestSentenceLength_Empty(t *testing.T) {
	n, err := shortest.LongestSentenceLength(lattice.NewLattice())
	require.NoError(t, err)
	require.Equal(t, int32(0), n)
}
