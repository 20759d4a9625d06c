// Package semiring_test validates the weight semirings and the log-space
// arithmetic they share: zero/one identities, cost projection, products,
// sums, and the stability of LogAdd.
package semiring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emoryjianghang/eesen/semiring"
)

func TestLatticeWeight_ZeroAndCost(t *testing.T) {
	zero := semiring.LatticeWeight{}.Zero()
	require.True(t, zero.IsZero())
	require.True(t, math.IsInf(zero.Cost(), 1))

	w := semiring.NewLatticeWeight(1.0, 0.5)
	require.False(t, w.IsZero())
	require.InDelta(t, 1.5, w.Cost(), 1e-9)
}

func TestLatticeWeight_MixedInfinityIsZero(t *testing.T) {
	// A weight with one infinite component cannot lie on any finishable
	// path; it must behave as the semiring zero.
	w := semiring.NewLatticeWeight(float32(math.Inf(1)), 2.0)
	require.True(t, w.IsZero())
	require.True(t, math.IsInf(w.Cost(), 1))
	require.True(t, w.Equal(semiring.LatticeWeight{}.Zero()))
}

func TestLatticeWeight_TimesAddsComponents(t *testing.T) {
	a := semiring.NewLatticeWeight(1.0, 2.0)
	b := semiring.NewLatticeWeight(0.5, 0.25)
	p := a.Times(b)
	require.Equal(t, float32(1.5), p.Graph)
	require.Equal(t, float32(2.25), p.Acoustic)

	// Zero absorbs.
	require.True(t, a.Times(a.Zero()).IsZero())
}

func TestLatticeWeight_PlusPicksCheaper(t *testing.T) {
	a := semiring.NewLatticeWeight(1.0, 0.0)
	b := semiring.NewLatticeWeight(2.0, 0.0)
	require.True(t, a.Plus(b).Equal(a))
	require.True(t, b.Plus(a).Equal(a))

	// Equal totals keep the receiver: different component split, same cost.
	c := semiring.NewLatticeWeight(0.0, 1.0)
	require.Equal(t, float32(1.0), a.Plus(c).Graph)
}

func TestCompactLatticeWeight_TimesConcatenatesStrings(t *testing.T) {
	a := semiring.NewCompactLatticeWeight(semiring.NewLatticeWeight(1, 0), []int32{7, 8})
	b := semiring.NewCompactLatticeWeight(semiring.NewLatticeWeight(0, 2), []int32{9})
	p := a.Times(b)
	require.Equal(t, []int32{7, 8, 9}, p.String)
	require.InDelta(t, 3.0, p.Cost(), 1e-9)
	require.Equal(t, int32(3), p.NumFrames())
}

func TestCompactLatticeWeight_ZeroIgnoresString(t *testing.T) {
	z := semiring.CompactLatticeWeight{
		Weight: semiring.LatticeWeight{}.Zero(),
		String: []int32{1, 2, 3},
	}
	require.True(t, z.IsZero())
	require.True(t, z.Equal(semiring.CompactLatticeWeight{}.Zero()))
}

func TestTropicalWeight(t *testing.T) {
	var w semiring.TropicalWeight
	require.True(t, w.Zero().IsZero())
	require.Equal(t, 0.0, w.One().Cost())
	require.Equal(t, 2.5, semiring.TropicalWeight(2.5).Cost())
}

func TestLogAdd_Stability(t *testing.T) {
	// Identity element passes through.
	require.Equal(t, -3.0, semiring.LogAdd(semiring.LogZero, -3.0))
	require.Equal(t, -3.0, semiring.LogAdd(-3.0, semiring.LogZero))

	// log(e^0 + e^0) = log 2.
	require.InDelta(t, math.Log(2), semiring.LogAdd(0, 0), 1e-12)

	// A huge gap must not overflow: result ≈ the larger operand.
	require.InDelta(t, 0.0, semiring.LogAdd(0, -1e6), 1e-12)
	require.InDelta(t, -1000.0, semiring.LogAdd(-1000, -2000), 1e-9)
}

func TestLogAddOrMax(t *testing.T) {
	require.Equal(t, -1.0, semiring.LogAddOrMax(true, -1.0, -2.0))
	require.InDelta(t, semiring.LogAdd(-1.0, -2.0), semiring.LogAddOrMax(false, -1.0, -2.0), 1e-12)
}

func TestApproxEqual(t *testing.T) {
	require.True(t, semiring.ApproxEqual(1.0, 1.0, 0))
	require.True(t, semiring.ApproxEqual(1.0, 1.0+1e-12, 1e-8))
	require.False(t, semiring.ApproxEqual(1.0, 1.1, 1e-8))
	require.True(t, semiring.ApproxEqual(semiring.LogZero, semiring.LogZero, 1e-8))
}
