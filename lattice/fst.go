package lattice

// state bundles a state's outgoing arcs with its final weight. A zero final
// weight marks a non-final state.
type state[W Weight[W]] struct {
	arcs  []Arc[W]
	final W
}

// Fst is a mutable weighted FST with dense integer state ids.
//
// The zero value is not usable; construct with New (or the NewLattice /
// NewCompactLattice helpers in this package).
type Fst[W Weight[W]] struct {
	start  StateID
	states []state[W]
}

// New returns an empty Fst with no start state.
func New[W Weight[W]]() *Fst[W] {
	return &Fst[W]{start: NoStateID}
}

// NumStates returns the number of states.
func (f *Fst[W]) NumStates() StateID {
	return StateID(len(f.states))
}

// AddState allocates a fresh non-final state with no arcs and returns its id.
// Ids are handed out densely in increasing order.
func (f *Fst[W]) AddState() StateID {
	var zero W
	f.states = append(f.states, state[W]{final: zero.Zero()})

	return StateID(len(f.states) - 1)
}

// Start returns the start state, or NoStateID if none is set.
func (f *Fst[W]) Start() StateID {
	return f.start
}

// SetStart marks s as the start state.
func (f *Fst[W]) SetStart(s StateID) {
	f.start = s
}

// Final returns the final weight of s; the semiring zero for non-final states.
func (f *Fst[W]) Final(s StateID) W {
	return f.states[s].final
}

// SetFinal sets the final weight of s. Setting the semiring zero makes s
// non-final.
func (f *Fst[W]) SetFinal(s StateID, w W) {
	f.states[s].final = w
}

// AddArc appends an arc leaving s. Arc order is preserved; parallel arcs are
// allowed.
func (f *Fst[W]) AddArc(s StateID, a Arc[W]) {
	f.states[s].arcs = append(f.states[s].arcs, a)
}

// NumArcs returns the number of arcs leaving s.
func (f *Fst[W]) NumArcs(s StateID) int {
	return len(f.states[s].arcs)
}

// Arcs returns the arc slice of s, borrowed, in insertion order. Assigning
// to its elements rewrites the arcs in place; the slice is invalidated by
// any structural mutation of f.
func (f *Fst[W]) Arcs(s StateID) []Arc[W] {
	return f.states[s].arcs
}

// DeleteStates removes every state and clears the start state.
func (f *Fst[W]) DeleteStates() {
	f.states = nil
	f.start = NoStateID
}

// Clone returns a deep copy of f. Arc slices are copied; weight values are
// copied as values (frame strings inside compact weights are shared and
// must be treated as immutable, which every algorithm in this module does).
func (f *Fst[W]) Clone() *Fst[W] {
	c := &Fst[W]{start: f.start, states: make([]state[W], len(f.states))}
	for i, st := range f.states {
		var arcs []Arc[W]
		if st.arcs != nil {
			arcs = make([]Arc[W], len(st.arcs))
			copy(arcs, st.arcs)
		}
		c.states[i] = state[W]{arcs: arcs, final: st.final}
	}

	return c
}
