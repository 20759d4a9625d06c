package depth

import (
	"errors"
	"fmt"
	"sort"

	"github.com/emoryjianghang/eesen/alphabeta"
	"github.com/emoryjianghang/eesen/lattice"
	"github.com/emoryjianghang/eesen/times"
)

// Sentinel errors of the depth package.
var (
	// ErrBadDepth indicates a per-frame depth cap below one.
	ErrBadDepth = errors.New("depth: max depth per frame must be at least 1")

	// ErrScoreMismatch indicates an arc whose best-path score exceeds the
	// lattice best, which a consistent lattice cannot produce.
	ErrScoreMismatch = errors.New("depth: arc score exceeds lattice best")
)

// Options configures warning delivery for Limit.
type Options struct {
	// OnWarn receives recoverable reports (empty lattice, inconsistent
	// final lengths from the state-time pass). Nil means silent.
	OnWarn func(msg string)
}

// Option is a functional option for Limit.
type Option func(*Options)

// WithOnWarn installs a hook for recoverable warnings.
func WithOnWarn(fn func(msg string)) Option {
	return func(o *Options) { o.OnWarn = fn }
}

// arcRecord identifies one arc together with its best-path score relative
// to the lattice best (≤ 0).
type arcRecord struct {
	logprob float64
	state   lattice.StateID
	arc     int // arc index within the state
}

// Limit caps the number of arcs crossing any frame of clat at
// maxDepthPerFrame, in place. Frames over the cap keep their best-scoring
// arcs; the rest are removed and the lattice is trimmed and re-sorted.
func Limit(maxDepthPerFrame int, clat *lattice.CompactLattice, opts ...Option) error {
	if maxDepthPerFrame < 1 {
		return fmt.Errorf("%w: %d", ErrBadDepth, maxDepthPerFrame)
	}
	if clat == nil {
		return fmt.Errorf("depth: %w", lattice.ErrNilFst)
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if clat.Start() == lattice.NoStateID {
		if cfg.OnWarn != nil {
			cfg.OnWarn("depth: limiting depth of empty lattice")
		}

		return nil
	}
	if err := clat.TopSortIfNeeded(); err != nil {
		return fmt.Errorf("depth: %w", err)
	}

	var timeOpts []times.Option
	if cfg.OnWarn != nil {
		timeOpts = append(timeOpts, times.WithOnWarn(cfg.OnWarn))
	}
	totalFrames, stateTimes, err := times.CompactLatticeTimes(clat, timeOpts...)
	if err != nil {
		return fmt.Errorf("depth: %w", err)
	}

	bestProb, alpha, beta, err := alphabeta.Compute(clat, true)
	if err != nil {
		return fmt.Errorf("depth: %w", err)
	}

	frameRecords := make([][]arcRecord, totalFrames)
	numStates := clat.NumStates()
	for s := lattice.StateID(0); s < numStates; s++ {
		startT := stateTimes[s]
		if startT < 0 {
			continue // unreachable; Connect will drop it anyway
		}
		for i, arc := range clat.Arcs(s) {
			record := arcRecord{
				state:   s,
				arc:     i,
				logprob: alpha[s] + beta[arc.Next] - arc.Weight.Cost() - bestProb,
			}
			if record.logprob >= 0.1 {
				return fmt.Errorf("%w: arc %d of state %d scores %v above best",
					ErrScoreMismatch, i, s, record.logprob)
			}
			for t := startT; t < startT+arc.Weight.NumFrames(); t++ {
				frameRecords[t] = append(frameRecords[t], record)
			}
		}
	}

	deadState := clat.AddState() // non-coaccessible; arcs redirected here die
	for t := int32(0); t < totalFrames; t++ {
		records := frameRecords[t]
		if len(records) <= maxDepthPerFrame {
			continue
		}
		// Worst first; ties resolve by position so the outcome is
		// deterministic.
		sort.Slice(records, func(i, j int) bool {
			if records[i].logprob != records[j].logprob {
				return records[i].logprob < records[j].logprob
			}
			if records[i].state != records[j].state {
				return records[i].state < records[j].state
			}

			return records[i].arc < records[j].arc
		})
		cut := len(records) - maxDepthPerFrame
		for _, record := range records[:cut] {
			// An arc spanning several over-full frames may be killed twice;
			// the second redirect is harmless.
			clat.Arcs(record.state)[record.arc].Next = deadState
		}
	}

	clat.Connect()

	if err := clat.TopSortIfNeeded(); err != nil {
		return fmt.Errorf("depth: %w", err)
	}

	return nil
}

// Mean returns the average number of arc frames crossing a frame of clat —
// Σ frame-string lengths over arcs and final weights, divided by the
// utterance length — together with the utterance length. An empty or
// zero-length lattice has depth 1. The input must be topologically sorted.
func Mean(clat *lattice.CompactLattice) (float64, int32, error) {
	if clat == nil {
		return 0, 0, fmt.Errorf("depth: %w", lattice.ErrNilFst)
	}
	if !clat.IsTopSorted() {
		return 0, 0, fmt.Errorf("depth: %w", lattice.ErrNotTopSorted)
	}
	if clat.Start() == lattice.NoStateID {
		return 1.0, 0, nil
	}

	totalFrames, _, err := times.CompactLatticeTimes(clat)
	if err != nil {
		return 0, 0, fmt.Errorf("depth: %w", err)
	}
	if totalFrames <= 0 {
		return 1.0, 0, nil
	}

	var numArcFrames int64
	for s := lattice.StateID(0); s < clat.NumStates(); s++ {
		for _, arc := range clat.Arcs(s) {
			numArcFrames += int64(arc.Weight.NumFrames())
		}
		numArcFrames += int64(len(clat.Final(s).String))
	}

	return float64(numArcFrames) / float64(totalFrames), totalFrames, nil
}

// PerFrame returns, per frame, how many arcs and final-weight frame strings
// cover it. An empty or zero-length lattice yields nil. The input must be
// topologically sorted.
func PerFrame(clat *lattice.CompactLattice) ([]int32, error) {
	if clat == nil {
		return nil, fmt.Errorf("depth: %w", lattice.ErrNilFst)
	}
	if !clat.IsTopSorted() {
		return nil, fmt.Errorf("depth: %w", lattice.ErrNotTopSorted)
	}
	if clat.Start() == lattice.NoStateID {
		return nil, nil
	}

	totalFrames, stateTimes, err := times.CompactLatticeTimes(clat)
	if err != nil {
		return nil, fmt.Errorf("depth: %w", err)
	}
	if totalFrames <= 0 {
		return nil, nil
	}

	perFrame := make([]int32, totalFrames)
	for s := lattice.StateID(0); s < clat.NumStates(); s++ {
		startT := stateTimes[s]
		if startT < 0 {
			continue
		}
		for _, arc := range clat.Arcs(s) {
			for t := startT; t < startT+arc.Weight.NumFrames(); t++ {
				perFrame[t]++
			}
		}
		for t := startT; t < startT+int32(len(clat.Final(s).String)); t++ {
			perFrame[t]++
		}
	}

	return perFrame, nil
}
