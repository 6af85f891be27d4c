package dfa

// IsMatch runs the stepping iterator to completion and reports whether
// the last yielded step was final (spec section 4.2). An empty input
// matches iff the initial state is final. This is exactly "step until
// dead, did the last successful step land on a final state", with no
// separate full-consumption requirement: a dead end right after a final
// step still counts as a match, matching the last-yielded-flag semantics
// of original_source/automata/src/dfa.rs's iter_on(input).last(). Unlike
// FindAt, a final state passed earlier in the walk does not count once a
// later step lands on a non-final state.
func (d *DFA[T]) IsMatch(input []rune) bool {
	if len(input) == 0 {
		return d.IsFinalState(d.InitialState())
	}

	it := NewIter(d, input)
	var last StepResult
	for {
		res, ok := it.Next()
		if !ok {
			break
		}
		last = res
	}
	return last.IsFinal
}

// Result pairs a Match with the DFA state the search ended in.
type Result[T Label] struct {
	Match    Match
	EndState StateLabel
}

// FindAt performs a leftmost search from position start (spec section
// 4.2): start input symbols are skipped without stepping, then the
// stepping iterator is walked, recording the last final state reached.
// When shortest is true, the search returns as soon as any final state is
// reached (including immediately, if the initial state is already
// final). Otherwise this implements leftmost-longest: the last final
// state reached before the automaton dies wins.
//
// Returns nil if no final state is ever reached (and the initial state,
// after skipping, is not final).
func (d *DFA[T]) FindAt(input []rune, start int, shortest bool) *Result[T] {
	if start < 0 || start > len(input) {
		return nil
	}
	sub := input[start:]

	var lastMatch *Match
	endState := d.InitialState()

	if d.IsFinalState(d.InitialState()) {
		lastMatch = &Match{Start: start, End: start, Span: nil}
	}
	if shortest && lastMatch != nil {
		return &Result[T]{Match: *lastMatch, EndState: d.InitialState()}
	}

	it := NewIter(d, sub)
	span := make([]rune, 0, len(sub))
	for i := 0; ; i++ {
		res, ok := it.Next()
		if !ok {
			break
		}
		span = append(span, res.Symbol)
		endState = res.State
		if res.IsFinal {
			snapshot := make([]rune, len(span))
			copy(snapshot, span)
			lastMatch = &Match{Start: start, End: start + i + 1, Span: snapshot}
			if shortest {
				break
			}
		}
	}

	if lastMatch == nil {
		return nil
	}
	return &Result[T]{Match: *lastMatch, EndState: endState}
}

// Find is FindAt(input, 0, false): leftmost-longest search from the
// start of input.
func (d *DFA[T]) Find(input []rune) *Result[T] {
	return d.FindAt(input, 0, false)
}

// FindShortest is FindAt(input, 0, true): leftmost-shortest search from
// the start of input.
func (d *DFA[T]) FindShortest(input []rune) *Result[T] {
	return d.FindAt(input, 0, true)
}

// FindShortestAt is FindAt(input, start, true).
func (d *DFA[T]) FindShortestAt(input []rune, start int) *Result[T] {
	return d.FindAt(input, start, true)
}
