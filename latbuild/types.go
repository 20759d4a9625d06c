package latbuild

import "errors"

// Sentinel errors for fixture construction. Branch with errors.Is.
var (
	// ErrTooFewStates indicates a random lattice was requested with fewer
	// than two states.
	ErrTooFewStates = errors.New("latbuild: need at least two states")

	// ErrLengthMismatch indicates parallel parameter slices of unequal length.
	ErrLengthMismatch = errors.New("latbuild: parameter slices must have equal length")

	// ErrBadFrameLen indicates a negative frame length.
	ErrBadFrameLen = errors.New("latbuild: frame lengths must be non-negative")
)

// Options aggregates the knobs of the randomized constructors.
//
// Seed            – RNG seed; the default 1 keeps fixtures reproducible.
// MaxArcsPerState – extra arcs per state are drawn from [0, MaxArcsPerState−1] (≥ 1).
// MaxFrameLen     – upper bound on frames between consecutive compact states (≥ 1).
// NumSymbols      – label alphabet size; labels are drawn from [1, NumSymbols].
// EpsilonProb     – probability that an arc-labeled backbone step spans zero frames.
//
// An extra compact arc that skips states spans the sum of the gaps it
// covers, so its frame string may exceed MaxFrameLen; every arc-labeled arc
// across a zero-frame gap is epsilon.
type Options struct {
	Seed            int64
	MaxArcsPerState int
	MaxFrameLen     int
	NumSymbols      int32
	EpsilonProb     float64
}

// Option is a functional option for the randomized constructors.
type Option func(*Options)

// WithSeed freezes the RNG stream; equal seeds yield equal lattices.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxArcsPerState bounds how many extra arcs each state may grow: fewer
// than n. Values below 1 are clamped to 1, which adds no extra arcs.
func WithMaxArcsPerState(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.MaxArcsPerState = n
	}
}

// WithMaxFrameLen bounds the time gap between consecutive states of random
// compact lattices, and so the frame-string length of their backbone arcs.
// Values below 1 are clamped to 1.
func WithMaxFrameLen(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.MaxFrameLen = n
	}
}

// WithNumSymbols sets the label alphabet size (clamped to ≥ 1).
func WithNumSymbols(n int32) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.NumSymbols = n
	}
}

// WithEpsilonProb sets the chance that a backbone step of an arc-labeled
// lattice spans zero frames (clamped into [0, 1]).
func WithEpsilonProb(p float64) Option {
	return func(o *Options) {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		o.EpsilonProb = p
	}
}

// DefaultOptions returns the deterministic defaults: seed 1, at most two
// extra arcs per state, up to four frames between consecutive states, a
// 40-symbol alphabet, and no epsilon arcs.
func DefaultOptions() Options {
	return Options{
		Seed:            1,
		MaxArcsPerState: 3,
		MaxFrameLen:     4,
		NumSymbols:      40,
		EpsilonProb:     0,
	}
}
