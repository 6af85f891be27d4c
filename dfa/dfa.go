package dfa

import "fmt"

// ErrInvalidState is returned by AddTransition when an endpoint label is
// out of range, per spec section 7's "add_transition returning a no-such
// -state signal".
var ErrInvalidState = fmt.Errorf("dfa: invalid state")

// TransitionError reports an AddTransition call referencing an endpoint
// state label that does not exist yet, grounded on coregx/nfa/error.go's
// BuildError (sentinel var + typed struct carrying the offending id).
type TransitionError struct {
	From, To StateLabel
	Total    StateLabel
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("dfa: invalid transition %d -> %d (total_states=%d)", e.From, e.To, e.Total)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidState
}

// DFA is the deterministic finite automaton from spec section 3: an
// initial state, a total state count, a set of final states, and a
// transition table.
type DFA[T Label] struct {
	initial      StateLabel
	totalStates  StateLabel
	finalStates  map[StateLabel]bool
	table        *Table[T]
}

// New returns a fresh DFA: initial_state=0, total_states=1, no final
// states, empty table (spec section 4.2 "Construction").
func New[T Label]() *DFA[T] {
	return &DFA[T]{
		initial:     0,
		totalStates: 1,
		finalStates: make(map[StateLabel]bool),
		table:       NewTable[T](),
	}
}

// AddState allocates a fresh state label and returns it, marking it final
// iff isFinal.
func (d *DFA[T]) AddState(isFinal bool) StateLabel {
	id := d.totalStates
	d.totalStates++
	if isFinal {
		d.finalStates[id] = true
	}
	return id
}

// AddTransition writes table[from][transition] = to. Fails with
// TransitionError if either endpoint is not yet allocated.
func (d *DFA[T]) AddTransition(from, to StateLabel, transition Transition[T]) error {
	if from >= d.totalStates || to >= d.totalStates {
		return &TransitionError{From: from, To: to, Total: d.totalStates}
	}
	d.table.Set(from, transition, to)
	return nil
}

// TransitionsOn returns the row view for state.
func (d *DFA[T]) TransitionsOn(state StateLabel) Row[T] {
	return d.table.GetRow(state)
}

// IsFinalState reports whether state is in the DFA's final-state set.
func (d *DFA[T]) IsFinalState(state StateLabel) bool {
	return d.finalStates[state]
}

// InitialState returns the DFA's initial state (always 0, per spec
// section 3).
func (d *DFA[T]) InitialState() StateLabel {
	return d.initial
}

// TotalStates returns the number of allocated states.
func (d *DFA[T]) TotalStates() StateLabel {
	return d.totalStates
}

// MarkFinal marks an already-allocated state as final. Builders that
// discover a state's finality only after allocating it — determinize's
// pre-allocated initial state 0 chief among them — use this instead of
// threading finality through AddState.
func (d *DFA[T]) MarkFinal(state StateLabel) {
	d.finalStates[state] = true
}

// Step looks up the outgoing transition from state s that matches input
// symbol x (spec section 4.2, "Execution — step function"). Returns the
// target state, whether a transition fired, and whether the target is
// final.
func (d *DFA[T]) Step(s StateLabel, x rune) (next StateLabel, ok bool, isFinal bool) {
	for _, e := range d.TransitionsOn(s) {
		if e.Transition.Value.Matches(x) {
			return e.To, true, d.IsFinalState(e.To)
		}
	}
	return 0, false, false
}
