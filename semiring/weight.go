package semiring

import "math"

// infinity32 is the float32 additive absorbing cost.
var infinity32 = float32(math.Inf(1))

// LatticeWeight is a pair of tropical costs: the graph (grammar/LM) cost and
// the acoustic cost. The total cost of an arc is their sum.
//
// The semiring zero is the pair (+Inf, +Inf); any weight with an infinite
// component behaves as zero (see IsZero).
type LatticeWeight struct {
	// Graph is the grammar / language-model cost component.
	Graph float32

	// Acoustic is the acoustic-likelihood cost component.
	Acoustic float32
}

// NewLatticeWeight returns the weight (graph, acoustic).
func NewLatticeWeight(graph, acoustic float32) LatticeWeight {
	return LatticeWeight{Graph: graph, Acoustic: acoustic}
}

// Zero returns the semiring zero (+Inf, +Inf): the weight of an impossible
// path, and the final weight of a non-final state.
func (LatticeWeight) Zero() LatticeWeight {
	return LatticeWeight{Graph: infinity32, Acoustic: infinity32}
}

// One returns the multiplicative identity (0, 0).
func (LatticeWeight) One() LatticeWeight {
	return LatticeWeight{}
}

// IsZero reports whether w behaves as the semiring zero. Any infinite
// component makes the total cost infinite, so mixed-infinity pairs are
// folded into zero rather than left undefined.
func (w LatticeWeight) IsZero() bool {
	return w.Graph == infinity32 || w.Acoustic == infinity32
}

// Cost projects w onto a single additive float64 cost: Graph + Acoustic,
// or +Inf for the zero element.
func (w LatticeWeight) Cost() float64 {
	if w.IsZero() {
		return math.Inf(1)
	}

	return float64(w.Graph) + float64(w.Acoustic)
}

// Times is the semiring product: componentwise addition. A zero operand
// absorbs.
func (w LatticeWeight) Times(o LatticeWeight) LatticeWeight {
	if w.IsZero() || o.IsZero() {
		return w.Zero()
	}

	return LatticeWeight{Graph: w.Graph + o.Graph, Acoustic: w.Acoustic + o.Acoustic}
}

// Plus is the semiring sum: the operand with the smaller total cost wins.
// Ties keep the receiver, so accumulation order is deterministic.
func (w LatticeWeight) Plus(o LatticeWeight) LatticeWeight {
	if o.Cost() < w.Cost() {
		return o
	}

	return w
}

// Equal reports component equality; all zero representations compare equal.
func (w LatticeWeight) Equal(o LatticeWeight) bool {
	if w.IsZero() || o.IsZero() {
		return w.IsZero() && o.IsZero()
	}

	return w.Graph == o.Graph && w.Acoustic == o.Acoustic
}

// CompactLatticeWeight pairs a LatticeWeight with a frame string: the
// contiguous run of frame-level symbol ids the arc spans. The arc's duration
// in frames equals len(String).
type CompactLatticeWeight struct {
	// Weight carries the graph and acoustic costs.
	Weight LatticeWeight

	// String is the frame-symbol sequence; its length is the arc duration.
	String []int32
}

// NewCompactLatticeWeight returns the weight (w, s). The string is not
// copied; callers retain ownership.
func NewCompactLatticeWeight(w LatticeWeight, s []int32) CompactLatticeWeight {
	return CompactLatticeWeight{Weight: w, String: s}
}

// Zero returns the semiring zero: an inner zero weight and no frames.
func (CompactLatticeWeight) Zero() CompactLatticeWeight {
	return CompactLatticeWeight{Weight: LatticeWeight{}.Zero()}
}

// One returns the multiplicative identity: inner one, empty string.
func (CompactLatticeWeight) One() CompactLatticeWeight {
	return CompactLatticeWeight{}
}

// IsZero reports whether the inner weight is zero; the string is ignored.
func (w CompactLatticeWeight) IsZero() bool {
	return w.Weight.IsZero()
}

// Cost is the inner weight's cost; the frame string carries no cost.
func (w CompactLatticeWeight) Cost() float64 {
	return w.Weight.Cost()
}

// NumFrames is the arc duration: the length of the frame string.
func (w CompactLatticeWeight) NumFrames() int32 {
	return int32(len(w.String))
}

// Times multiplies inner weights and concatenates frame strings.
func (w CompactLatticeWeight) Times(o CompactLatticeWeight) CompactLatticeWeight {
	if w.IsZero() || o.IsZero() {
		return w.Zero()
	}
	s := make([]int32, 0, len(w.String)+len(o.String))
	s = append(s, w.String...)
	s = append(s, o.String...)

	return CompactLatticeWeight{Weight: w.Weight.Times(o.Weight), String: s}
}

// Plus picks the operand with the smaller cost; ties keep the receiver.
func (w CompactLatticeWeight) Plus(o CompactLatticeWeight) CompactLatticeWeight {
	if o.Cost() < w.Cost() {
		return o
	}

	return w
}

// Equal compares inner weights and frame strings; zeros compare equal
// regardless of string content.
func (w CompactLatticeWeight) Equal(o CompactLatticeWeight) bool {
	if w.IsZero() || o.IsZero() {
		return w.IsZero() && o.IsZero()
	}
	if !w.Weight.Equal(o.Weight) || len(w.String) != len(o.String) {
		return false
	}
	for i := range w.String {
		if w.String[i] != o.String[i] {
			return false
		}
	}

	return true
}

// TropicalWeight is a single tropical cost, the weight type of the
// deterministic on-demand FSTs used in composition.
type TropicalWeight float64

// Zero returns the tropical zero (+Inf).
func (TropicalWeight) Zero() TropicalWeight {
	return TropicalWeight(math.Inf(1))
}

// One returns the tropical one (0).
func (TropicalWeight) One() TropicalWeight {
	return 0
}

// IsZero reports whether w is the tropical zero.
func (w TropicalWeight) IsZero() bool {
	return math.IsInf(float64(w), 1)
}

// Cost returns w as an additive float64 cost.
func (w TropicalWeight) Cost() float64 {
	return float64(w)
}
