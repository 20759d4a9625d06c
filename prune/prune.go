package prune

import (
	"errors"
	"fmt"
	"math"

	"github.com/emoryjianghang/eesen/lattice"
)

// ErrBadBeam indicates a non-positive pruning beam.
var ErrBadBeam = errors.New("prune: beam must be positive")

// Options configures warning delivery for Prune.
type Options struct {
	// OnWarn receives a report when the input lattice turns out to be
	// cyclic. Nil means silent.
	OnWarn func(msg string)
}

// Option is a functional option for Prune.
type Option func(*Options)

// WithOnWarn installs a hook for recoverable warnings.
func WithOnWarn(fn func(msg string)) Option {
	return func(o *Options) { o.OnWarn = fn }
}

// Prune beam-prunes f in place and reports whether any state survived.
// Arcs and final weights whose best complete path costs more than
// best-final-cost + beam are removed; the lattice is then trimmed.
//
// The lattice is sorted topologically first if needed; a cycle makes Prune
// return false with the lattice unchanged apart from the attempted sort.
func Prune[W lattice.Weight[W]](beam float64, f *lattice.Fst[W], opts ...Option) (bool, error) {
	if beam <= 0 {
		return false, fmt.Errorf("%w: %v", ErrBadBeam, beam)
	}
	if f == nil {
		return false, fmt.Errorf("prune: %w", lattice.ErrNilFst)
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	if !f.IsTopSorted() {
		if err := f.TopSort(); err != nil {
			if cfg.OnWarn != nil {
				cfg.OnWarn("prune: cycles detected in lattice")
			}

			return false, nil
		}
	}
	numStates := f.NumStates()
	if numStates == 0 {
		return false, nil
	}
	start := f.Start()

	inf := math.Inf(1)
	forward := make([]float64, numStates)
	for i := range forward {
		forward[i] = inf
	}
	forward[start] = 0 // acyclic, so no path back below zero

	bestFinalCost := inf
	for s := lattice.StateID(0); s < numStates; s++ {
		thisForward := forward[s]
		for _, arc := range f.Arcs(s) {
			if next := thisForward + arc.Weight.Cost(); next < forward[arc.Next] {
				forward[arc.Next] = next
			}
		}
		if thisFinal := thisForward + f.Final(s).Cost(); thisFinal < bestFinalCost {
			bestFinalCost = thisFinal
		}
	}

	badState := f.AddState() // non-final sentinel; Connect purges it
	cutoff := bestFinalCost + beam

	// Backward sweep: compute min cost-to-final per state, dropping final
	// weights and redirecting arcs that cannot stay within the cutoff.
	backward := make([]float64, numStates)
	for s := numStates - 1; s >= 0; s-- {
		thisForward := forward[s]
		thisBackward := f.Final(s).Cost()
		if thisBackward+thisForward > cutoff && thisBackward != inf {
			var zero W
			f.SetFinal(s, zero.Zero())
		}
		arcs := f.Arcs(s)
		for i := range arcs {
			arcBackward := arcs[i].Weight.Cost() + backward[arcs[i].Next]
			if arcBackward < thisBackward {
				thisBackward = arcBackward
			}
			if thisForward+arcBackward > cutoff {
				arcs[i].Next = badState
			}
		}
		backward[s] = thisBackward
	}

	f.Connect()

	return f.NumStates() > 0, nil
}
