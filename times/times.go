package times

import (
	"fmt"

	"github.com/emoryjianghang/eesen/lattice"
)

// LatticeTimes labels every state of lat with its frame index and returns
// the utterance length (the largest state time) together with the per-state
// times. Unreachable states keep time −1.
//
// Complexity: O(V + E) time, O(V) space.
func LatticeTimes(lat *lattice.Lattice) (int32, []int32, error) {
	if lat == nil {
		return 0, nil, fmt.Errorf("times: %w", lattice.ErrNilFst)
	}
	if !lat.IsTopSorted() {
		return 0, nil, fmt.Errorf("times: %w", lattice.ErrNotTopSorted)
	}
	if lat.Start() != 0 {
		return 0, nil, fmt.Errorf("times: %w", lattice.ErrBadStart)
	}

	numStates := lat.NumStates()
	stateTimes := make([]int32, numStates)
	for i := range stateTimes {
		stateTimes[i] = -1
	}
	stateTimes[0] = 0

	var uttLen int32
	for s := lattice.StateID(0); s < numStates; s++ {
		curTime := stateTimes[s]
		if curTime < 0 {
			continue // not reachable from the start
		}
		for _, arc := range lat.Arcs(s) {
			nextTime := curTime
			if arc.ILabel != lattice.Epsilon {
				nextTime++
			}
			if stateTimes[arc.Next] == -1 {
				stateTimes[arc.Next] = nextTime
			} else if stateTimes[arc.Next] != nextTime {
				return 0, nil, fmt.Errorf("times: state %d reached at frames %d and %d: %w",
					arc.Next, stateTimes[arc.Next], nextTime, ErrInconsistentTimes)
			}
		}
		if curTime > uttLen {
			uttLen = curTime
		}
	}

	return uttLen, stateTimes, nil
}

// CompactLatticeTimes labels every state of clat with its frame index (the
// cumulative frame-string length from the start) and returns the utterance
// length: the state time plus the final frame-string length over final
// states. Final states that disagree are reported through the warning hook
// and the maximum is adopted; a lattice with no final state is reported and
// gets length 0.
//
// Complexity: O(V + E) time, O(V) space.
func CompactLatticeTimes(clat *lattice.CompactLattice, opts ...Option) (int32, []int32, error) {
	if clat == nil {
		return 0, nil, fmt.Errorf("times: %w", lattice.ErrNilFst)
	}
	if !clat.IsTopSorted() {
		return 0, nil, fmt.Errorf("times: %w", lattice.ErrNotTopSorted)
	}
	if clat.Start() != 0 {
		return 0, nil, fmt.Errorf("times: %w", lattice.ErrBadStart)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	numStates := clat.NumStates()
	stateTimes := make([]int32, numStates)
	for i := range stateTimes {
		stateTimes[i] = -1
	}
	stateTimes[0] = 0

	uttLen := int32(-1)
	for s := lattice.StateID(0); s < numStates; s++ {
		curTime := stateTimes[s]
		if curTime < 0 {
			continue
		}
		for _, arc := range clat.Arcs(s) {
			nextTime := curTime + arc.Weight.NumFrames()
			if stateTimes[arc.Next] == -1 {
				stateTimes[arc.Next] = nextTime
			} else if stateTimes[arc.Next] != nextTime {
				return 0, nil, fmt.Errorf("times: state %d reached at frames %d and %d: %w",
					arc.Next, stateTimes[arc.Next], nextTime, ErrInconsistentTimes)
			}
		}
		if final := clat.Final(s); !final.IsZero() {
			thisLen := curTime + int32(len(final.String))
			switch {
			case uttLen == -1:
				uttLen = thisLen
			case thisLen != uttLen:
				cfg.warn(fmt.Sprintf("times: utterance does not have a consistent length (%d vs %d)", uttLen, thisLen))
				if thisLen > uttLen {
					uttLen = thisLen
				}
			}
		}
	}
	if uttLen == -1 {
		cfg.warn("times: utterance does not have a final state")

		return 0, stateTimes, nil
	}

	return uttLen, stateTimes, nil
}
