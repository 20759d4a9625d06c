package rescore

import (
	"fmt"

	"github.com/emoryjianghang/eesen/lattice"
	"github.com/emoryjianghang/eesen/times"
)

// Decodable is the frame-indexed likelihood oracle, normally an acoustic
// model over a feature matrix. Tokens are whatever the lattice's input
// labels denote — typically transition ids.
type Decodable interface {
	// LogLikelihood returns the log-likelihood of the token at the frame.
	LogLikelihood(frame, token int32) float32

	// IsLastFrame reports whether frame is the last one available.
	IsLastFrame(frame int32) bool
}

// Options configures warning delivery for Lattice.
type Options struct {
	// OnWarn receives reports of empty input, cycles, and feature streams
	// shorter than the lattice. Nil means silent.
	OnWarn func(msg string)
}

// Option is a functional option for Lattice.
type Option func(*Options)

// WithOnWarn installs a hook for recoverable warnings.
func WithOnWarn(fn func(msg string)) Option {
	return func(o *Options) { o.OnWarn = fn }
}

// Lattice rescores lat in place against the oracle: the acoustic component
// of every frame-consuming arc at frame t becomes
// acoustic − LogLikelihood(t, ILabel). Reports whether rescoring ran to
// completion; false with a warning when the lattice is empty, cyclic, or
// longer than the feature stream (in which case it may be partially
// rewritten and should be discarded).
func Lattice(dec Decodable, lat *lattice.Lattice, opts ...Option) (bool, error) {
	if lat == nil {
		return false, fmt.Errorf("rescore: %w", lattice.ErrNilFst)
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	warn := func(msg string) {
		if cfg.OnWarn != nil {
			cfg.OnWarn(msg)
		}
	}

	if lat.NumStates() == 0 {
		warn("rescore: rescoring empty lattice")

		return false, nil
	}
	if !lat.IsTopSorted() {
		if err := lat.TopSort(); err != nil {
			warn("rescore: cycles detected in lattice")

			return false, nil
		}
	}

	uttLen, stateTimes, err := times.LatticeTimes(lat)
	if err != nil {
		return false, fmt.Errorf("rescore: %w", err)
	}

	timeToState := make([][]lattice.StateID, uttLen)
	for s := lattice.StateID(0); s < lat.NumStates(); s++ {
		// Unreachable states carry time −1; final states sit at uttLen and
		// have no frame to score.
		if t := stateTimes[s]; t >= 0 && t < uttLen {
			timeToState[t] = append(timeToState[t], s)
		}
	}

	for t := int32(0); t < uttLen; t++ {
		if t < uttLen-1 && dec.IsLastFrame(t) {
			warn(fmt.Sprintf("rescore: features are too short for lattice: utt-len is %d, %d is last frame",
				uttLen, t))

			return false, nil
		}
		for _, s := range timeToState[t] {
			arcs := lat.Arcs(s)
			for i := range arcs {
				if arcs[i].ILabel == lattice.Epsilon {
					continue
				}
				logLike := dec.LogLikelihood(t, arcs[i].ILabel)
				arcs[i].Weight.Acoustic += -logLike
			}
		}
	}

	return true, nil
}

// AddWordInsPenalty adds penalty to the graph cost of every word-bearing
// arc of lat (arcs with a non-epsilon input label), in place.
func AddWordInsPenalty(penalty float32, lat *lattice.Lattice) {
	if lat == nil {
		return
	}
	for s := lattice.StateID(0); s < lat.NumStates(); s++ {
		arcs := lat.Arcs(s)
		for i := range arcs {
			if arcs[i].ILabel != lattice.Epsilon {
				arcs[i].Weight.Graph += penalty
			}
		}
	}
}

// AddCompactWordInsPenalty is AddWordInsPenalty for compact lattices: the
// penalty lands on the graph component of the inner weight.
func AddCompactWordInsPenalty(penalty float32, clat *lattice.CompactLattice) {
	if clat == nil {
		return
	}
	for s := lattice.StateID(0); s < clat.NumStates(); s++ {
		arcs := clat.Arcs(s)
		for i := range arcs {
			if arcs[i].ILabel != lattice.Epsilon {
				arcs[i].Weight.Weight.Graph += penalty
			}
		}
	}
}
