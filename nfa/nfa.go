// Package nfa implements the NFA Builder API external contract from spec
// sections 3 and 6: state allocation, epsilon and labeled edges, and the
// combinators (kleene_star, concatenation, union) the parser's NFA
// Builder drives.
//
// Grounded on coregx/nfa/nfa.go's StateID/State/StateIter shape
// (compact integer state ids, a tagged state representation, a simple
// forward iterator) and coregx/nfa/builder.go's AddX-style incremental
// construction API. coregx builds one flat Thompson NFA per pattern by
// patching forward references into a shared state array; spec.md's
// contract instead composes whole NFA fragments via union/concat/star,
// the classic McNaughton-Yamada-Thompson construction, so each *NFA
// value here is a complete, self-numbered fragment and the combinators
// copy-and-renumber their operands' states into a fresh result.
package nfa

import (
	"fmt"

	"github.com/coregx/regexcore/charclass"
	"github.com/coregx/regexcore/dfa"
)

// StateID identifies a state within a single NFA fragment.
type StateID uint32

// InvalidState is returned where no valid state id applies.
const InvalidState StateID = 0xFFFFFFFF

// Transition is the NFA's edge label: a character class, convertible
// from CharClass per spec section 6's "Conversion to Transition<T> for
// NFA use".
type Transition = dfa.Transition[*charclass.Class]

// NewTransition wraps a CharClass as an NFA edge label.
func NewTransition(c *charclass.Class) Transition {
	return Transition{Value: c}
}

type edge struct {
	label Transition
	to    StateID
}

type state struct {
	final    bool
	epsilons []StateID
	edges    []edge
}

// NFA is a single Thompson-construction fragment: a set of states and a
// distinguished start state.
type NFA struct {
	states []state
	start  StateID
}

// New returns an empty NFA fragment with no states. Callers build it up
// with AddState/AddTransition, or use the combinators below.
func New() *NFA {
	return &NFA{start: InvalidState}
}

// NewEpsilon returns the epsilon NFA: a single state that is
// simultaneously initial and accepting, matching exactly the empty
// string (spec glossary, "Epsilon NFA").
func NewEpsilon() *NFA {
	n := New()
	s := n.AddState(true)
	n.start = s
	return n
}

// AddState allocates a fresh state, marking it final iff isFinal, and
// returns its id.
func (n *NFA) AddState(isFinal bool) StateID {
	id := StateID(len(n.states))
	n.states = append(n.states, state{final: isFinal})
	return id
}

// AddTransition adds a labeled edge from -> to. Fails with BuildError if
// either endpoint is out of range.
func (n *NFA) AddTransition(from, to StateID, t Transition) error {
	if int(from) >= len(n.states) || int(to) >= len(n.states) {
		return &BuildError{Message: "state id out of range", From: from, To: to}
	}
	n.states[from].edges = append(n.states[from].edges, edge{label: t, to: to})
	return nil
}

// AddEpsilonEdge adds an unlabeled (epsilon) edge from -> to. Used by the
// combinators to wire fragments together; not part of the minimal
// external contract in spec section 6, but squarely within the NFA
// Builder API's stated responsibility ("state allocation, epsilon/labeled
// edges, combinators").
func (n *NFA) AddEpsilonEdge(from, to StateID) error {
	if int(from) >= len(n.states) || int(to) >= len(n.states) {
		return &BuildError{Message: "state id out of range", From: from, To: to}
	}
	n.states[from].epsilons = append(n.states[from].epsilons, to)
	return nil
}

// StartState returns the fragment's start state.
func (n *NFA) StartState() StateID {
	return n.start
}

// States returns the number of states in the fragment.
func (n *NFA) States() int {
	return len(n.states)
}

// IsFinal reports whether id is an accepting state.
func (n *NFA) IsFinal(id StateID) bool {
	return n.states[id].final
}

// Epsilons returns the epsilon targets leaving id.
func (n *NFA) Epsilons(id StateID) []StateID {
	return n.states[id].epsilons
}

// Edges returns the labeled edges leaving id.
func (n *NFA) Edges(id StateID) []EdgeView {
	es := n.states[id].edges
	out := make([]EdgeView, len(es))
	for i, e := range es {
		out[i] = EdgeView{Label: e.label, To: e.to}
	}
	return out
}

// EdgeView exposes a labeled edge for consumers like determinize.
type EdgeView struct {
	Label Transition
	To    StateID
}

// appendStates copies src's states into n, shifting all internal ids by
// the returned offset. Used by the combinators to merge fragments.
func (n *NFA) appendStates(src *NFA) StateID {
	offset := StateID(len(n.states))
	for _, st := range src.states {
		ns := state{final: st.final}
		for _, eps := range st.epsilons {
			ns.epsilons = append(ns.epsilons, eps+offset)
		}
		for _, e := range st.edges {
			ns.edges = append(ns.edges, edge{label: e.label, to: e.to + offset})
		}
		n.states = append(n.states, ns)
	}
	return offset
}

// BuildError reports an NFA construction error, grounded on
// coregx/nfa/error.go's BuildError (message + offending state id).
type BuildError struct {
	Message  string
	From, To StateID
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: %s (from=%d, to=%d)", e.Message, e.From, e.To)
}
