// Package align_test checks linear-lattice word alignment: timing output,
// the non-linear failure modes, and the approximate-alignment warning.
package align_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emoryjianghang/eesen/align"
	"github.com/emoryjianghang/eesen/latbuild"
	"github.com/emoryjianghang/eesen/lattice"
	"github.com/emoryjianghang/eesen/semiring"
)

const (
	hello int32 = 1
	world int32 = 2
)

func TestWordAlignment_Linear(t *testing.T) {
	// 0 ─HELLO/"aaa"─ 1 ─WORLD/"bb"─ 2(final).
	clat := lattice.NewCompactLattice()
	for i := 0; i < 3; i++ {
		clat.AddState()
	}
	clat.SetStart(0)
	clat.AddArc(0, lattice.CompactLatticeArc{
		ILabel: hello, OLabel: hello,
		Weight: semiring.NewCompactLatticeWeight(semiring.NewLatticeWeight(1.0, 0.5), []int32{3, 3, 3}),
		Next:   1,
	})
	clat.AddArc(1, lattice.CompactLatticeArc{
		ILabel: world, OLabel: world,
		Weight: semiring.NewCompactLatticeWeight(semiring.NewLatticeWeight(2.0, 0.0), []int32{4, 4}),
		Next:   2,
	})
	clat.SetFinal(2, semiring.CompactLatticeWeight{}.One())

	words, begins, lengths, ok := align.WordAlignment(clat)
	require.True(t, ok)
	require.Equal(t, []int32{hello, world}, words)
	require.Equal(t, []int32{0, 3}, begins)
	require.Equal(t, []int32{3, 2}, lengths)
}

func TestWordAlignment_EmptyLinear(t *testing.T) {
	// A lone final start state aligns to nothing, successfully.
	clat := lattice.NewCompactLattice()
	s0 := clat.AddState()
	clat.SetStart(s0)
	clat.SetFinal(s0, semiring.CompactLatticeWeight{}.One())

	words, begins, lengths, ok := align.WordAlignment(clat)
	require.True(t, ok)
	require.Empty(t, words)
	require.Empty(t, begins)
	require.Empty(t, lengths)
}

func TestWordAlignment_EmptyLattice(t *testing.T) {
	var warned bool
	_, _, _, ok := align.WordAlignment(lattice.NewCompactLattice(),
		align.WithOnWarn(func(string) { warned = true }))
	require.False(t, ok)
	require.True(t, warned)
}

func TestWordAlignment_Branchy(t *testing.T) {
	clat := lattice.NewCompactLattice()
	for i := 0; i < 3; i++ {
		clat.AddState()
	}
	clat.SetStart(0)
	one := semiring.CompactLatticeWeight{}.One()
	clat.AddArc(0, lattice.CompactLatticeArc{ILabel: 1, OLabel: 1, Weight: one, Next: 1})
	clat.AddArc(0, lattice.CompactLatticeArc{ILabel: 2, OLabel: 2, Weight: one, Next: 2})
	clat.SetFinal(1, one)
	clat.SetFinal(2, one)

	var msg string
	words, _, _, ok := align.WordAlignment(clat, align.WithOnWarn(func(m string) { msg = m }))
	require.False(t, ok)
	require.Empty(t, words)
	require.True(t, strings.Contains(msg, "not linear"))
}

func TestWordAlignment_FinalWithArcs(t *testing.T) {
	clat, err := latbuild.LinearCompact([]int32{1}, []int32{2})
	require.NoError(t, err)
	// Make the start of the chain final as well.
	clat.SetFinal(0, semiring.CompactLatticeWeight{}.One())

	_, _, _, ok := align.WordAlignment(clat)
	require.False(t, ok)
}

func TestWordAlignment_FinalStringIsApproximate(t *testing.T) {
	clat, err := latbuild.LinearCompact([]int32{1}, []int32{2})
	require.NoError(t, err)
	clat.SetFinal(1, semiring.NewCompactLatticeWeight(semiring.LatticeWeight{}.One(), []int32{9}))

	var msg string
	words, _, lengths, ok := align.WordAlignment(clat, align.WithOnWarn(func(m string) { msg = m }))
	require.True(t, ok, "a final-weight string is approximate, not fatal")
	require.Equal(t, []int32{1}, words)
	require.Equal(t, []int32{2}, lengths)
	require.True(t, strings.Contains(msg, "approximate"))
}

func TestWordAlignment_EmitsZeroLabels(t *testing.T) {
	clat, err := latbuild.LinearCompact([]int32{0, 5}, []int32{1, 1})
	require.NoError(t, err)

	words, _, _, ok := align.WordAlignment(clat)
	require.True(t, ok)
	require.Equal(t, []int32{0, 5}, words)
}
