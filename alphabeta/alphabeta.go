package alphabeta

import (
	"fmt"

	"github.com/emoryjianghang/eesen/lattice"
	"github.com/emoryjianghang/eesen/semiring"
)

// relTolerance is the relative disagreement between the forward and
// backward totals above which a warning is reported.
const relTolerance = 1e-8

// Options configures warning delivery for Compute.
type Options struct {
	// OnWarn receives a report when the forward and backward totals
	// disagree beyond the tolerance. Nil means silent.
	OnWarn func(msg string)
}

// Option is a functional option for Compute.
type Option func(*Options)

// WithOnWarn installs a hook for numeric-inconsistency warnings.
func WithOnWarn(fn func(msg string)) Option {
	return func(o *Options) { o.OnWarn = fn }
}

// Compute returns the total lattice score together with the alpha and beta
// arrays, all as negated costs (log-likelihoods). The combine rule is max
// when viterbi is true, LogAdd otherwise. The input must be topologically
// sorted with start state 0 and is not modified.
func Compute[W lattice.Weight[W]](f *lattice.Fst[W], viterbi bool, opts ...Option) (float64, []float64, []float64, error) {
	if f == nil {
		return 0, nil, nil, fmt.Errorf("alphabeta: %w", lattice.ErrNilFst)
	}
	if !f.IsTopSorted() {
		return 0, nil, nil, fmt.Errorf("alphabeta: %w", lattice.ErrNotTopSorted)
	}
	if f.Start() != 0 {
		return 0, nil, nil, fmt.Errorf("alphabeta: %w", lattice.ErrBadStart)
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	numStates := f.NumStates()
	alpha := make([]float64, numStates)
	beta := make([]float64, numStates)
	for i := range alpha {
		alpha[i] = semiring.LogZero
		beta[i] = semiring.LogZero
	}

	totForward := semiring.LogZero
	alpha[0] = 0.0
	for s := lattice.StateID(0); s < numStates; s++ {
		thisAlpha := alpha[s]
		for _, arc := range f.Arcs(s) {
			arcLike := -arc.Weight.Cost()
			alpha[arc.Next] = semiring.LogAddOrMax(viterbi, alpha[arc.Next], thisAlpha+arcLike)
		}
		if final := f.Final(s); !final.IsZero() {
			totForward = semiring.LogAddOrMax(viterbi, totForward, thisAlpha-final.Cost())
		}
	}

	for s := numStates - 1; s >= 0; s-- {
		thisBeta := -f.Final(s).Cost()
		for _, arc := range f.Arcs(s) {
			arcBeta := beta[arc.Next] - arc.Weight.Cost()
			thisBeta = semiring.LogAddOrMax(viterbi, thisBeta, arcBeta)
		}
		beta[s] = thisBeta
	}

	totBackward := beta[0]
	if !semiring.ApproxEqual(totForward, totBackward, relTolerance) && cfg.OnWarn != nil {
		cfg.OnWarn(fmt.Sprintf("alphabeta: total forward probability %v differs from total backward probability %v",
			totForward, totBackward))
	}

	// Split the difference: the totals should agree.
	return 0.5 * (totForward + totBackward), alpha, beta, nil
}
