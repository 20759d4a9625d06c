package align

import (
	"fmt"

	"github.com/emoryjianghang/eesen/lattice"
)

// Options configures warning delivery for WordAlignment.
type Options struct {
	// OnWarn receives reports of non-linear or empty inputs and of
	// approximate alignments. Nil means silent.
	OnWarn func(msg string)
}

// Option is a functional option for WordAlignment.
type Option func(*Options)

// WithOnWarn installs a hook for recoverable warnings.
func WithOnWarn(fn func(msg string)) Option {
	return func(o *Options) { o.OnWarn = fn }
}

// WordAlignment walks the linear compact lattice clat and returns, arc by
// arc, the word label, the frame it begins on, and its length in frames.
// ok is false — with empty outputs — when the lattice is empty or not
// linear.
func WordAlignment(clat *lattice.CompactLattice, opts ...Option) (words, begins, lengths []int32, ok bool) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	warn := func(msg string) {
		if cfg.OnWarn != nil {
			cfg.OnWarn(msg)
		}
	}

	if clat == nil || clat.Start() == lattice.NoStateID {
		warn("align: empty lattice")

		return nil, nil, nil, false
	}

	state := clat.Start()
	var curTime int32
	// A linear lattice visits each state at most once; more steps than
	// states means a cycle, which is as non-linear as it gets.
	for steps := lattice.StateID(0); steps <= clat.NumStates(); steps++ {
		final := clat.Final(state)
		numArcs := clat.NumArcs(state)
		if !final.IsZero() {
			if numArcs != 0 {
				warn("align: lattice is not linear")

				return nil, nil, nil, false
			}
			if len(final.String) != 0 {
				warn("align: lattice has alignments on final weight: probably " +
					"was not word-aligned (alignments will be approximate)")
			}

			return words, begins, lengths, true
		}
		if numArcs != 1 {
			warn(fmt.Sprintf("align: lattice is not linear: num-arcs = %d", numArcs))

			return nil, nil, nil, false
		}
		arc := clat.Arcs(state)[0]
		// ILabel == OLabel on an acceptor; zero labels are emitted too.
		words = append(words, arc.ILabel)
		begins = append(begins, curTime)
		lengths = append(lengths, arc.Weight.NumFrames())
		curTime += arc.Weight.NumFrames()
		state = arc.Next
	}
	warn("align: lattice is not linear")

	return nil, nil, nil, false
}
