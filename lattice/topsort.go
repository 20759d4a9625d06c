package lattice

import "container/heap"

// IsTopSorted reports whether every arc leads to a strictly higher state id.
// All algorithms in this module require this ordering (with the start state
// at id 0) before they run.
func (f *Fst[W]) IsTopSorted() bool {
	for s := range f.states {
		for _, a := range f.states[s].arcs {
			if a.Next <= StateID(s) {
				return false
			}
		}
	}

	return true
}

// TopSort renumbers the states of f into topological order using Kahn's
// algorithm, so that every arc leads from a lower to a strictly higher id
// and the start state (if it has no incoming arcs) becomes state 0.
//
// Ties between simultaneously ready states resolve to the smallest original
// id, start first, so the result is deterministic. On a cycle f is left
// unchanged and ErrCycle is returned.
//
// Complexity: O((V + E) log V) time, O(V) extra space.
func (f *Fst[W]) TopSort() error {
	if f == nil {
		return ErrNilFst
	}
	n := len(f.states)
	if n == 0 {
		return nil
	}

	indegree := make([]int32, n)
	for s := range f.states {
		for _, a := range f.states[s].arcs {
			indegree[a.Next]++
		}
	}

	ready := &stateHeap{start: f.start}
	for s := 0; s < n; s++ {
		if indegree[s] == 0 {
			heap.Push(ready, StateID(s))
		}
	}

	order := make([]StateID, 0, n)
	for ready.Len() > 0 {
		s := heap.Pop(ready).(StateID)
		order = append(order, s)
		for _, a := range f.states[s].arcs {
			indegree[a.Next]--
			if indegree[a.Next] == 0 {
				heap.Push(ready, a.Next)
			}
		}
	}
	if len(order) != n {
		return ErrCycle
	}

	// Renumber only after the sort is known to succeed.
	newID := make([]StateID, n)
	for pos, s := range order {
		newID[s] = StateID(pos)
	}
	states := make([]state[W], n)
	for pos, s := range order {
		st := f.states[s]
		for i := range st.arcs {
			st.arcs[i].Next = newID[st.arcs[i].Next]
		}
		states[pos] = st
	}
	f.states = states
	if f.start != NoStateID {
		f.start = newID[f.start]
	}

	return nil
}

// TopSortIfNeeded sorts f topologically unless it already is.
func (f *Fst[W]) TopSortIfNeeded() error {
	if f == nil {
		return ErrNilFst
	}
	if f.IsTopSorted() {
		return nil
	}

	return f.TopSort()
}

// Connect removes every state that is not both accessible from the start
// state and coaccessible to some final state, renumbering the survivors
// while preserving their relative order. A topologically sorted input stays
// topologically sorted. If nothing survives (or there is no start state)
// the Fst becomes empty.
//
// Complexity: O(V + E) time and space.
func (f *Fst[W]) Connect() {
	n := len(f.states)
	if n == 0 {
		return
	}
	if f.start == NoStateID {
		f.DeleteStates()

		return
	}

	// Forward reachability from the start state.
	accessible := make([]bool, n)
	stack := []StateID{f.start}
	accessible[f.start] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range f.states[s].arcs {
			if !accessible[a.Next] {
				accessible[a.Next] = true
				stack = append(stack, a.Next)
			}
		}
	}

	// Backward reachability from the final states, over reversed arcs.
	reverse := make([][]StateID, n)
	for s := range f.states {
		for _, a := range f.states[s].arcs {
			reverse[a.Next] = append(reverse[a.Next], StateID(s))
		}
	}
	coaccessible := make([]bool, n)
	for s := range f.states {
		if !f.states[s].final.IsZero() {
			coaccessible[s] = true
			stack = append(stack, StateID(s))
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range reverse[s] {
			if !coaccessible[p] {
				coaccessible[p] = true
				stack = append(stack, p)
			}
		}
	}

	if !coaccessible[f.start] {
		f.DeleteStates()

		return
	}

	newID := make([]StateID, n)
	kept := 0
	for s := 0; s < n; s++ {
		if accessible[s] && coaccessible[s] {
			newID[s] = StateID(kept)
			kept++
		} else {
			newID[s] = NoStateID
		}
	}

	states := make([]state[W], 0, kept)
	for s := 0; s < n; s++ {
		if newID[s] == NoStateID {
			continue
		}
		st := f.states[s]
		arcs := st.arcs[:0]
		for _, a := range st.arcs {
			if newID[a.Next] != NoStateID {
				a.Next = newID[a.Next]
				arcs = append(arcs, a)
			}
		}
		st.arcs = arcs
		states = append(states, st)
	}
	f.states = states
	f.start = newID[f.start]
}

// stateHeap is a min-heap of state ids that always surfaces the start state
// first, then ascending ids, giving TopSort its deterministic order.
type stateHeap struct {
	ids   []StateID
	start StateID
}

func (h *stateHeap) Len() int { return len(h.ids) }

func (h *stateHeap) Less(i, j int) bool {
	if h.ids[i] == h.start {
		return true
	}
	if h.ids[j] == h.start {
		return false
	}

	return h.ids[i] < h.ids[j]
}

func (h *stateHeap) Swap(i, j int) { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }

func (h *stateHeap) Push(x interface{}) { h.ids = append(h.ids, x.(StateID)) }

func (h *stateHeap) Pop() interface{} {
	old := h.ids
	n := len(old)
	item := old[n-1]
	h.ids = old[:n-1]

	return item
}
