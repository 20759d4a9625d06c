package latbuild_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emoryjianghang/eesen/latbuild"
	"github.com/emoryjianghang/eesen/lattice"
)

func TestLinearCompact(t *testing.T) {
	clat, err := latbuild.LinearCompact([]int32{10, 20}, []int32{3, 2})
	require.NoError(t, err)
	require.Equal(t, lattice.StateID(3), clat.NumStates())
	require.Equal(t, lattice.StateID(0), clat.Start())
	require.True(t, clat.IsTopSorted())

	a := clat.Arcs(0)[0]
	require.Equal(t, int32(10), a.ILabel)
	require.Equal(t, []int32{1, 2, 3}, a.Weight.String)
	b := clat.Arcs(1)[0]
	require.Equal(t, []int32{4, 5}, b.Weight.String)
	require.False(t, clat.Final(2).IsZero())
}

func TestLinearCompact_Validation(t *testing.T) {
	_, err := latbuild.LinearCompact([]int32{1}, []int32{1, 2})
	require.ErrorIs(t, err, latbuild.ErrLengthMismatch)

	_, err = latbuild.LinearCompact([]int32{1}, []int32{-1})
	require.ErrorIs(t, err, latbuild.ErrBadFrameLen)
}

func TestLinearLattice(t *testing.T) {
	lat := latbuild.LinearLattice([]int32{5, 0, 6})
	require.Equal(t, lattice.StateID(4), lat.NumStates())
	require.Equal(t, lattice.Epsilon, lat.Arcs(1)[0].ILabel)
	require.False(t, lat.Final(3).IsZero())
}

func TestRandomCompact_Deterministic(t *testing.T) {
	a, err := latbuild.RandomCompact(30, latbuild.WithSeed(7))
	require.NoError(t, err)
	b, err := latbuild.RandomCompact(30, latbuild.WithSeed(7))
	require.NoError(t, err)

	require.Equal(t, a.NumStates(), b.NumStates())
	for s := lattice.StateID(0); s < a.NumStates(); s++ {
		require.Equal(t, a.Arcs(s), b.Arcs(s), "state %d", s)
	}
}

func TestRandomCompact_Structure(t *testing.T) {
	clat, err := latbuild.RandomCompact(50, latbuild.WithSeed(3))
	require.NoError(t, err)
	require.True(t, clat.IsTopSorted())
	require.Equal(t, lattice.StateID(0), clat.Start())

	// Connect must be a no-op: every state already lies on a full path.
	before := clat.NumStates()
	clat.Connect()
	require.Equal(t, before, clat.NumStates())
}

func TestRandomLattice_FrameGaps(t *testing.T) {
	lat, err := latbuild.RandomLattice(40, latbuild.WithSeed(11), latbuild.WithEpsilonProb(0.3))
	require.NoError(t, err)
	require.True(t, lat.IsTopSorted())

	sawEpsilon := false
	for s := lattice.StateID(0); s < lat.NumStates(); s++ {
		for _, a := range lat.Arcs(s) {
			if a.ILabel == lattice.Epsilon {
				sawEpsilon = true
			}
		}
	}
	require.True(t, sawEpsilon, "epsilon probability 0.3 should produce epsilon arcs")
}

func TestRandom_TooFewStates(t *testing.T) {
	_, err := latbuild.RandomCompact(1)
	require.ErrorIs(t, err, latbuild.ErrTooFewStates)
	_, err = latbuild.RandomLattice(0)
	require.ErrorIs(t, err, latbuild.ErrTooFewStates)
}
