package times

import "errors"

// ErrInconsistentTimes indicates that two paths from the start state assign
// different frame times to the same state, which violates the lattice
// contract.
var ErrInconsistentTimes = errors.New("times: inconsistent state times")

// Options configures the soft-failure reporting of CompactLatticeTimes.
type Options struct {
	// OnWarn receives human-readable reports of recoverable conditions
	// (inconsistent final lengths, missing final state). Nil means silent
	// recovery.
	OnWarn func(msg string)
}

// Option is a functional option for CompactLatticeTimes.
type Option func(*Options)

// WithOnWarn installs a hook for recoverable warnings.
func WithOnWarn(fn func(msg string)) Option {
	return func(o *Options) { o.OnWarn = fn }
}

// DefaultOptions returns the defaults: silent recovery.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) warn(msg string) {
	if o.OnWarn != nil {
		o.OnWarn(msg)
	}
}
