package latbuild

import (
	"math/rand"

	"github.com/emoryjianghang/eesen/lattice"
	"github.com/emoryjianghang/eesen/semiring"
)

// LinearCompact builds a single-path compact lattice: one arc per word,
// where arc i carries words[i] and spans frameLens[i] frames. Frame symbols
// are consecutive ids starting at 1, so the concatenation over the whole
// path is 1, 2, 3, ... All arc weights are the semiring one; the last state
// is final with the semiring one and an empty frame string.
func LinearCompact(words []int32, frameLens []int32) (*lattice.CompactLattice, error) {
	if len(words) != len(frameLens) {
		return nil, ErrLengthMismatch
	}
	for _, l := range frameLens {
		if l < 0 {
			return nil, ErrBadFrameLen
		}
	}

	clat := lattice.NewCompactLattice()
	cur := clat.AddState()
	clat.SetStart(cur)
	var nextSym int32 = 1
	for i, word := range words {
		next := clat.AddState()
		str := make([]int32, frameLens[i])
		for j := range str {
			str[j] = nextSym
			nextSym++
		}
		clat.AddArc(cur, lattice.CompactLatticeArc{
			ILabel: word,
			OLabel: word,
			Weight: semiring.NewCompactLatticeWeight(semiring.LatticeWeight{}.One(), str),
			Next:   next,
		})
		cur = next
	}
	clat.SetFinal(cur, semiring.CompactLatticeWeight{}.One())

	return clat, nil
}

// LinearLattice builds a single-path arc-labeled lattice with one
// frame-consuming arc per label (epsilon labels consume nothing). Weights
// are the semiring one; the last state is final.
func LinearLattice(labels []int32) *lattice.Lattice {
	lat := lattice.NewLattice()
	cur := lat.AddState()
	lat.SetStart(cur)
	for _, label := range labels {
		next := lat.AddState()
		lat.AddArc(cur, lattice.LatticeArc{
			ILabel: label,
			OLabel: label,
			Weight: semiring.LatticeWeight{}.One(),
			Next:   next,
		})
		cur = next
	}
	lat.SetFinal(cur, semiring.LatticeWeight{}.One())

	return lat
}

// RandomCompact builds a random acyclic compact lattice with numStates
// states. Each state is assigned a monotone frame time; every arc's frame
// string spans exactly the time gap between its endpoints, so state times
// are consistent by construction. State 0 is the start, the last state the
// only final, and every state lies on a start-to-final path.
func RandomCompact(numStates int, opts ...Option) (*lattice.CompactLattice, error) {
	if numStates < 2 {
		return nil, ErrTooFewStates
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	// Monotone state times; increments of zero produce epsilon-duration arcs.
	times := make([]int32, numStates)
	var sym int32 = 1
	for s := 1; s < numStates; s++ {
		times[s] = times[s-1] + int32(rng.Intn(cfg.MaxFrameLen+1))
	}

	clat := lattice.NewCompactLattice()
	for s := 0; s < numStates; s++ {
		clat.AddState()
	}
	clat.SetStart(0)

	addArc := func(from, to lattice.StateID) {
		str := make([]int32, times[to]-times[from])
		for j := range str {
			str[j] = sym
			sym++
		}
		label := 1 + rng.Int31n(cfg.NumSymbols)
		clat.AddArc(from, lattice.CompactLatticeArc{
			ILabel: label,
			OLabel: label, // acceptor
			Weight: semiring.NewCompactLatticeWeight(randWeight(rng), str),
			Next:   to,
		})
	}

	// Backbone: an inbound arc for every non-start state keeps everything
	// accessible, and chains every state toward the final.
	for s := 1; s < numStates; s++ {
		addArc(lattice.StateID(s-1), lattice.StateID(s))
	}
	// Extra arcs for depth.
	for s := 0; s < numStates-1; s++ {
		for k := rng.Intn(cfg.MaxArcsPerState); k > 0; k-- {
			to := s + 1 + rng.Intn(numStates-1-s)
			addArc(lattice.StateID(s), lattice.StateID(to))
		}
	}
	clat.SetFinal(lattice.StateID(numStates-1), semiring.CompactLatticeWeight{}.One())

	return clat, nil
}

// RandomLattice builds a random acyclic arc-labeled lattice with numStates
// states. State times increase by zero or one per backbone step; arcs only
// connect states at most one frame apart, carrying an epsilon label across
// zero-frame gaps. EpsilonProb sets the share of zero-frame steps.
func RandomLattice(numStates int, opts ...Option) (*lattice.Lattice, error) {
	if numStates < 2 {
		return nil, ErrTooFewStates
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	times := make([]int32, numStates)
	for s := 1; s < numStates; s++ {
		incr := int32(1)
		if rng.Float64() < cfg.EpsilonProb {
			incr = 0
		}
		times[s] = times[s-1] + incr
	}

	lat := lattice.NewLattice()
	for s := 0; s < numStates; s++ {
		lat.AddState()
	}
	lat.SetStart(0)

	addArc := func(from, to lattice.StateID) {
		label := lattice.Epsilon
		if times[to] > times[from] {
			label = 1 + rng.Int31n(cfg.NumSymbols)
		}
		lat.AddArc(from, lattice.LatticeArc{
			ILabel: label,
			OLabel: label,
			Weight: randWeight(rng),
			Next:   to,
		})
	}

	for s := 1; s < numStates; s++ {
		addArc(lattice.StateID(s-1), lattice.StateID(s))
	}
	for s := 0; s < numStates-1; s++ {
		for k := rng.Intn(cfg.MaxArcsPerState); k > 0; k-- {
			to := s + 1 + rng.Intn(numStates-1-s)
			// An arc may only bridge a gap of zero or one frame.
			if times[to]-times[s] > 1 {
				continue
			}
			addArc(lattice.StateID(s), lattice.StateID(to))
		}
	}
	lat.SetFinal(lattice.StateID(numStates-1), semiring.LatticeWeight{}.One())

	return lat, nil
}

// randWeight draws graph and acoustic costs uniformly from [0, 5).
func randWeight(rng *rand.Rand) semiring.LatticeWeight {
	return semiring.NewLatticeWeight(rng.Float32()*5, rng.Float32()*5)
}
