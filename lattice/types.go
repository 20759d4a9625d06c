package lattice

import (
	"errors"

	"github.com/emoryjianghang/eesen/semiring"
)

// Sentinel errors shared by the container and the algorithm packages.
var (
	// ErrCycle indicates that a topological sort failed because the FST
	// contains a cycle. Lattices are acyclic by contract, so this is a
	// caller bug.
	ErrCycle = errors.New("lattice: cycle detected")

	// ErrNotTopSorted indicates that an operation requiring a topologically
	// sorted input was handed an unsorted FST.
	ErrNotTopSorted = errors.New("lattice: not topologically sorted")

	// ErrBadStart indicates that the FST has no start state, or that the
	// start state is not state 0 where an algorithm requires it.
	ErrBadStart = errors.New("lattice: missing or non-zero start state")

	// ErrNilFst indicates a nil *Fst argument.
	ErrNilFst = errors.New("lattice: fst is nil")
)

// StateID identifies a state within one Fst.
type StateID int32

// NoStateID marks the absence of a state, e.g. the start of an empty Fst.
const NoStateID StateID = -1

// Epsilon is the label of arcs that consume no frame and carry no word.
const Epsilon int32 = 0

// Weight is the capability set a semiring weight must offer to be stored in
// an Fst. The self-referential Zero keeps the zero element typed.
type Weight[W any] interface {
	// Cost projects the weight onto an additive float64 cost; +Inf for zero.
	Cost() float64

	// IsZero reports whether the weight is the semiring zero.
	IsZero() bool

	// Zero returns the semiring zero element.
	Zero() W
}

// Arc is a single transition: input label, output label, weight, and the
// destination state. ILabel == Epsilon consumes no frame.
type Arc[W Weight[W]] struct {
	ILabel int32
	OLabel int32
	Weight W
	Next   StateID
}

// Lattice is an arc-labeled lattice: a transducer over LatticeWeight where
// every non-epsilon input label accounts for exactly one frame.
type Lattice = Fst[semiring.LatticeWeight]

// CompactLattice is an acceptor over CompactLatticeWeight; arc durations are
// the lengths of the weights' frame strings.
type CompactLattice = Fst[semiring.CompactLatticeWeight]

// LatticeArc is an arc of a Lattice.
type LatticeArc = Arc[semiring.LatticeWeight]

// CompactLatticeArc is an arc of a CompactLattice.
type CompactLatticeArc = Arc[semiring.CompactLatticeWeight]

// NewLattice returns an empty arc-labeled lattice.
func NewLattice() *Lattice {
	return New[semiring.LatticeWeight]()
}

// NewCompactLattice returns an empty compact lattice.
func NewCompactLattice() *CompactLattice {
	return New[semiring.CompactLatticeWeight]()
}
