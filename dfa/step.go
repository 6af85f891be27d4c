package dfa

// StepResult is one element of the stepping iterator: the state reached,
// the symbol consumed to reach it, and whether that state is final.
type StepResult struct {
	State    StateLabel
	Symbol   rune
	IsFinal  bool
}

// Iter is the lazy, finite stepping iterator from spec section 4.2: it
// yields one StepResult per input symbol until the input is exhausted or
// no transition applies from the current state. Spec.md distinguishes a
// "borrowed-DFA" and an "owned-DFA" iterator with identical semantics;
// since Go has no ownership system, Iter plays both roles — it holds a
// pointer to the DFA but never mutates it (DFA execution is read-only,
// spec section 5).
type Iter[T Label] struct {
	d       *DFA[T]
	input   []rune
	pos     int
	current StateLabel
	done    bool
}

// NewIter returns a stepping iterator starting at the DFA's initial state,
// consuming input left to right.
func NewIter[T Label](d *DFA[T], input []rune) *Iter[T] {
	return &Iter[T]{d: d, input: input, current: d.InitialState()}
}

// Next advances the iterator by one input symbol, returning (result, true)
// if a transition fired, or (zero, false) once input is exhausted or no
// transition applies (matching the "halt" condition in spec section 4.2).
func (it *Iter[T]) Next() (StepResult, bool) {
	if it.done || it.pos >= len(it.input) {
		it.done = true
		return StepResult{}, false
	}
	sym := it.input[it.pos]
	next, ok, isFinal := it.d.Step(it.current, sym)
	if !ok {
		it.done = true
		return StepResult{}, false
	}
	it.pos++
	it.current = next
	return StepResult{State: next, Symbol: sym, IsFinal: isFinal}, true
}

// Consumed returns the number of input symbols successfully stepped over
// so far.
func (it *Iter[T]) Consumed() int {
	return it.pos
}
