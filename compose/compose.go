package compose

import (
	"errors"
	"fmt"

	"github.com/emoryjianghang/eesen/lattice"
	"github.com/emoryjianghang/eesen/semiring"
)

// ErrNilDetFst indicates a nil deterministic on-demand FST.
var ErrNilDetFst = errors.New("compose: deterministic fst is nil")

// StdArc is an arc of a tropical-weight FST: the weight is a single cost.
type StdArc struct {
	ILabel int32
	OLabel int32
	Weight semiring.TropicalWeight
	Next   lattice.StateID
}

// DeterministicOnDemandFst is an FST that materializes arcs one query at a
// time and has at most one arc per (state, input label) pair. Implementers
// are typically language models; GetArc is expected to be cheap and pure.
type DeterministicOnDemandFst interface {
	// Start returns the initial state.
	Start() lattice.StateID

	// Final returns the final weight of s; the tropical zero for non-final
	// states.
	Final(s lattice.StateID) semiring.TropicalWeight

	// GetArc returns the unique arc leaving s with the given input label,
	// or false if there is none.
	GetArc(s lattice.StateID, label int32) (StdArc, bool)
}

// statePair is one product state: a lattice state and an FST state.
type statePair struct {
	s1 lattice.StateID
	s2 lattice.StateID
}

// CompactLattice composes clat with det and returns the trimmed product as
// a fresh compact lattice. The input lattice is not modified.
func CompactLattice(clat *lattice.CompactLattice, det DeterministicOnDemandFst) (*lattice.CompactLattice, error) {
	if clat == nil {
		return nil, fmt.Errorf("compose: %w", lattice.ErrNilFst)
	}
	if det == nil {
		return nil, ErrNilDetFst
	}

	composed := lattice.NewCompactLattice()
	if clat.Start() == lattice.NoStateID {
		return composed, nil
	}

	stateMap := make(map[statePair]lattice.StateID)
	startPair := statePair{s1: clat.Start(), s2: det.Start()}
	queue := []statePair{startPair}
	stateMap[startPair] = composed.AddState()
	composed.SetStart(stateMap[startPair])

	for len(queue) > 0 {
		pair := queue[0]
		queue = queue[1:]
		from := stateMap[pair]

		// Product of the two final weights, computed componentwise: the
		// FST cost lands on the graph component. Either side being
		// non-final makes the product zero and the state non-final.
		clFinal := clat.Final(pair.s1)
		finalWeight := semiring.CompactLatticeWeight{
			Weight: semiring.LatticeWeight{
				Graph:    clFinal.Weight.Graph + float32(det.Final(pair.s2)),
				Acoustic: clFinal.Weight.Acoustic,
			},
			String: clFinal.String,
		}
		if !finalWeight.IsZero() {
			composed.SetFinal(from, finalWeight)
		}

		for _, arc1 := range clat.Arcs(pair.s1) {
			var (
				next   statePair
				newArc lattice.CompactLatticeArc
			)
			if arc1.OLabel == lattice.Epsilon {
				// Epsilon advances the lattice side only; the FST stays put
				// and contributes nothing.
				next = statePair{s1: arc1.Next, s2: pair.s2}
				newArc = lattice.CompactLatticeArc{Weight: arc1.Weight}
			} else {
				arc2, ok := det.GetArc(pair.s2, arc1.OLabel)
				if !ok {
					continue // the FST rejects this word here
				}
				next = statePair{s1: arc1.Next, s2: arc2.Next}
				newArc = lattice.CompactLatticeArc{
					ILabel: arc1.ILabel,
					OLabel: arc1.OLabel,
					Weight: semiring.CompactLatticeWeight{
						Weight: semiring.LatticeWeight{
							Graph:    arc1.Weight.Weight.Graph + float32(arc2.Weight),
							Acoustic: arc1.Weight.Weight.Acoustic,
						},
						String: arc1.Weight.String,
					},
				}
			}

			to, seen := stateMap[next]
			if !seen {
				to = composed.AddState()
				stateMap[next] = to
				queue = append(queue, next)
			}
			newArc.Next = to
			composed.AddArc(from, newArc)
		}
	}

	composed.Connect()

	return composed, nil
}
