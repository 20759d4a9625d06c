package shortest

import (
	"errors"
	"fmt"
	"math"

	"github.com/emoryjianghang/eesen/lattice"
)

// ErrNoArc indicates that two consecutive states on the recovered best path
// have no connecting arc; a consistent predecessor table cannot produce
// this.
var ErrNoArc = errors.New("shortest: no arc between consecutive best-path states")

// Options configures warning delivery for Path.
type Options struct {
	// OnWarn receives a report when the predecessor chain breaks (all
	// complete paths have infinite cost). Nil means silent.
	OnWarn func(msg string)
}

// Option is a functional option for Path.
type Option func(*Options)

// WithOnWarn installs a hook for recoverable warnings.
func WithOnWarn(fn func(msg string)) Option {
	return func(o *Options) { o.OnWarn = fn }
}

// Path returns the minimum-cost complete path of clat as a fresh linear
// compact lattice. The input is not modified; unsorted inputs are sorted on
// a private copy. An empty input, or one whose complete paths all cost
// +Inf, yields an empty output.
func Path(clat *lattice.CompactLattice, opts ...Option) (*lattice.CompactLattice, error) {
	if clat == nil {
		return nil, fmt.Errorf("shortest: %w", lattice.ErrNilFst)
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if !clat.IsTopSorted() {
		sorted := clat.Clone()
		if err := sorted.TopSort(); err != nil {
			return nil, fmt.Errorf("shortest: %w", err)
		}
		clat = sorted
	}

	out := lattice.NewCompactLattice()
	if clat.Start() == lattice.NoStateID {
		return out, nil
	}
	if clat.Start() != 0 {
		return nil, fmt.Errorf("shortest: %w", lattice.ErrBadStart)
	}

	numStates := clat.NumStates()
	superFinal := numStates
	cost := make([]float64, numStates+1)
	pred := make([]lattice.StateID, numStates+1)
	for i := range cost {
		cost[i] = math.Inf(1)
		pred[i] = lattice.NoStateID
	}
	cost[0] = 0

	for s := lattice.StateID(0); s < numStates; s++ {
		myCost := cost[s]
		for _, arc := range clat.Arcs(s) {
			if next := myCost + arc.Weight.Cost(); next < cost[arc.Next] {
				cost[arc.Next] = next
				pred[arc.Next] = s
			}
		}
		if totFinal := myCost + clat.Final(s).Cost(); totFinal < cost[superFinal] {
			cost[superFinal] = totFinal
			pred[superFinal] = s
		}
	}

	// Walk the predecessor chain back to the start.
	var pathStates []lattice.StateID
	cur := superFinal
	for cur != 0 {
		prev := pred[cur]
		if prev == lattice.NoStateID {
			if cfg.OnWarn != nil {
				cfg.OnWarn("shortest: failure in best-path algorithm for lattice (infinite costs?)")
			}

			return lattice.NewCompactLattice(), nil
		}
		pathStates = append(pathStates, prev)
		cur = prev
	}
	for i, j := 0, len(pathStates)-1; i < j; i, j = i+1, j-1 {
		pathStates[i], pathStates[j] = pathStates[j], pathStates[i]
	}

	for range pathStates {
		out.AddState()
	}
	for i, orig := range pathStates {
		s := lattice.StateID(i)
		if i == 0 {
			out.SetStart(s)
		}
		if i+1 < len(pathStates) {
			// Cheapest of the parallel arcs toward the next path state;
			// the first encountered wins ties.
			var best lattice.CompactLatticeArc
			haveArc := false
			for _, arc := range clat.Arcs(orig) {
				if arc.Next != pathStates[i+1] {
					continue
				}
				if !haveArc || arc.Weight.Cost() < best.Weight.Cost() {
					best = arc
					haveArc = true
				}
			}
			if !haveArc {
				return nil, fmt.Errorf("%w: states %d and %d", ErrNoArc, orig, pathStates[i+1])
			}
			best.Next = s + 1
			out.AddArc(s, best)
		} else {
			out.SetFinal(s, clat.Final(orig))
		}
	}

	return out, nil
}
