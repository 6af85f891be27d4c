package nfa

import "github.com/coregx/regexcore/charclass"

// FromChar returns a two-state fragment: a non-final start with a single
// labeled edge to a final accepting state (spec section 4.5, "handle_char
// (c): new NFA with one start state and one accepting state connected by
// a single transition labeled c").
func FromChar(c *charclass.Class) *NFA {
	n := New()
	start := n.AddState(false)
	accept := n.AddState(true)
	n.start = start
	// AddTransition cannot fail here: both endpoints were just allocated.
	_ = n.AddTransition(start, accept, NewTransition(c))
	return n
}

// KleeneStar returns the Kleene closure of a: zero or more repetitions.
// Classic Thompson construction collapses the accept-and-loop decision
// into a single new start state that is itself final (zero repetitions)
// and epsilon-splits to a's start (one more repetition); each of a's
// original final states gains an epsilon back to that hub, closing the
// loop.
func KleeneStar(a *NFA) *NFA {
	out := New()
	base := out.appendStates(a)
	hub := out.AddState(true)
	_ = out.AddEpsilonEdge(hub, a.start+base)
	for i, st := range a.states {
		if st.final {
			_ = out.AddEpsilonEdge(StateID(i)+base, hub)
		}
	}
	out.start = hub
	return out
}

// Concatenation returns a followed by b: a's final states stop being
// final and instead epsilon-transition to b's start.
func Concatenation(a, b *NFA) *NFA {
	out := New()
	baseA := out.appendStates(a)
	baseB := out.appendStates(b)
	for i, st := range a.states {
		if st.final {
			id := StateID(i) + baseA
			out.states[id].final = false
			_ = out.AddEpsilonEdge(id, b.start+baseB)
		}
	}
	out.start = a.start + baseA
	return out
}

// Union returns the alternation of a and b: a fresh non-final hub state
// epsilon-splits to both fragments' starts.
func Union(a, b *NFA) *NFA {
	out := New()
	baseA := out.appendStates(a)
	baseB := out.appendStates(b)
	hub := out.AddState(false)
	_ = out.AddEpsilonEdge(hub, a.start+baseA)
	_ = out.AddEpsilonEdge(hub, b.start+baseB)
	out.start = hub
	return out
}
