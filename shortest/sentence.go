package shortest

import (
	"fmt"

	"github.com/emoryjianghang/eesen/lattice"
)

// LongestSentenceLength returns the largest number of word-bearing arcs —
// arcs with a non-epsilon output label — on any complete path of lat.
// Unsorted inputs are sorted on a private copy; a cycle returns
// lattice.ErrCycle.
func LongestSentenceLength(lat *lattice.Lattice) (int32, error) {
	return longest(lat, func(arc lattice.LatticeArc) bool {
		return arc.OLabel != lattice.Epsilon
	})
}

// CompactLongestSentenceLength is LongestSentenceLength for compact
// lattices, counting non-epsilon input labels (input and output labels
// coincide on an acceptor, but callers sometimes zero labels out and such
// arcs must not count).
func CompactLongestSentenceLength(clat *lattice.CompactLattice) (int32, error) {
	return longest(clat, func(arc lattice.CompactLatticeArc) bool {
		return arc.ILabel != lattice.Epsilon
	})
}

// longest is the shared DAG longest-path relaxation counting arcs selected
// by hasWord.
func longest[W lattice.Weight[W]](f *lattice.Fst[W], hasWord func(lattice.Arc[W]) bool) (int32, error) {
	if f == nil {
		return 0, fmt.Errorf("shortest: %w", lattice.ErrNilFst)
	}
	if f.Start() == lattice.NoStateID {
		return 0, nil
	}
	if !f.IsTopSorted() {
		sorted := f.Clone()
		if err := sorted.TopSort(); err != nil {
			return 0, fmt.Errorf("shortest: %w", err)
		}
		f = sorted
	}

	numStates := f.NumStates()
	maxLength := make([]int32, numStates)
	var latticeMax int32
	for s := lattice.StateID(0); s < numStates; s++ {
		thisMax := maxLength[s]
		for _, arc := range f.Arcs(s) {
			length := thisMax
			if hasWord(arc) {
				length++
			}
			if length > maxLength[arc.Next] {
				maxLength[arc.Next] = length
			}
		}
		if !f.Final(s).IsZero() && thisMax > latticeMax {
			latticeMax = thisMax
		}
	}

	return latticeMax, nil
}
