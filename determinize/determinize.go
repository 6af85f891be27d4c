// Package determinize implements NFA-to-DFA subset construction (spec
// glossary, "Subset construction"): the external collaborator spec.md
// assumes is available to turn an nfa.NFA into the dfa.DFA the execution
// engine actually runs.
//
// Grounded on coregx/nfa/composite_dfa.go's on-the-fly subset
// construction (epsilon-closure over a worklist of NFA-state subsets,
// each subset becoming one DFA state) and internal/stateset for the
// closure's membership test, adapted from coregx's byte-oriented
// alphabet (256 fixed symbols) to spec.md's CharClass-range alphabet:
// instead of iterating 256 bytes per subset, we split the union of
// outgoing edge ranges into the minimal set of disjoint sub-ranges that
// have a constant set of reachable targets, and emit one DFA transition
// per sub-range.
package determinize

import (
	"sort"

	"github.com/coregx/regexcore/charclass"
	"github.com/coregx/regexcore/dfa"
	"github.com/coregx/regexcore/internal/conv"
	"github.com/coregx/regexcore/internal/stateset"
	"github.com/coregx/regexcore/nfa"
)

// Build runs subset construction over n and returns an equivalent DFA.
func Build(n *nfa.NFA) *dfa.DFA[*charclass.Class] {
	d := dfa.New[*charclass.Class]()
	if n.States() == 0 {
		return d
	}

	closures := map[string]*stateset.Set{}
	labels := map[string]dfa.StateLabel{}
	order := []string{}

	initial := epsilonClosure(n, []nfa.StateID{n.StartState()})
	initKey := initial.Key()
	closures[initKey] = initial
	labels[initKey] = d.InitialState()
	if containsFinal(n, initial) {
		d.MarkFinal(d.InitialState())
	}
	order = append(order, initKey)

	for i := 0; i < len(order); i++ {
		key := order[i]
		from := labels[key]
		set := closures[key]

		for _, part := range splitTransitions(n, set) {
			targetClosure := epsilonClosure(n, part.targets)
			tkey := targetClosure.Key()
			to, seen := labels[tkey]
			if !seen {
				to = d.AddState(containsFinal(n, targetClosure))
				labels[tkey] = to
				closures[tkey] = targetClosure
				order = append(order, tkey)
			}
			// AddTransition cannot fail here: both `from` and `to` were
			// allocated through d.AddState/d's own initial state.
			_ = d.AddTransition(from, to, dfa.Transition[*charclass.Class]{
				Value: charclass.NewRanges(part.ranges...),
			})
		}
	}

	return d
}

// epsilonClosure returns the set of states reachable from seed via zero
// or more epsilon edges, seed included.
func epsilonClosure(n *nfa.NFA, seed []nfa.StateID) *stateset.Set {
	set := stateset.New(conv.IntToUint32(n.States()))
	stack := make([]nfa.StateID, 0, len(seed))
	for _, s := range seed {
		set.Insert(uint32(s))
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, eps := range n.Epsilons(s) {
			if !set.Contains(uint32(eps)) {
				set.Insert(uint32(eps))
				stack = append(stack, eps)
			}
		}
	}
	return set
}

// containsFinal reports whether any state in set is an NFA final state.
func containsFinal(n *nfa.NFA, set *stateset.Set) bool {
	for _, v := range set.Values() {
		if n.IsFinal(nfa.StateID(v)) {
			return true
		}
	}
	return false
}

// transitionPart groups every NFA state reachable on a contiguous span
// of runes.
type transitionPart struct {
	ranges  []charclass.Range
	targets []nfa.StateID
}

// splitTransitions collects every labeled edge leaving any state in set
// and partitions the rune alphabet into the minimal disjoint sub-ranges
// over which the set of reachable targets is constant. This is what
// makes subset construction correct for a range-labeled alphabet: a DFA
// row's transitions must be pairwise disjoint (dfa.DFA.Step takes the
// first match), so overlapping NFA edge ranges have to be split at their
// boundaries before becoming DFA transitions.
func splitTransitions(n *nfa.NFA, set *stateset.Set) []transitionPart {
	type edgeRange struct {
		lo, hi rune
		to     nfa.StateID
	}
	var edges []edgeRange
	for _, v := range set.Values() {
		for _, e := range n.Edges(nfa.StateID(v)) {
			for _, r := range e.Label.Value.Ranges() {
				edges = append(edges, edgeRange{lo: r.Lo, hi: r.Hi, to: e.To})
			}
		}
	}
	if len(edges) == 0 {
		return nil
	}

	boundarySet := map[rune]bool{}
	for _, e := range edges {
		boundarySet[e.lo] = true
		if e.hi < charclass.MaxRune {
			boundarySet[e.hi+1] = true
		}
	}
	points := make([]rune, 0, len(boundarySet))
	for p := range boundarySet {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })

	var parts []transitionPart
	for i, lo := range points {
		hi := rune(charclass.MaxRune)
		if i+1 < len(points) {
			hi = points[i+1] - 1
		}
		if lo > hi {
			continue
		}
		var targets []nfa.StateID
		for _, e := range edges {
			if e.lo <= lo && hi <= e.hi {
				targets = append(targets, e.to)
			}
		}
		if len(targets) == 0 {
			continue
		}
		parts = append(parts, transitionPart{
			ranges:  []charclass.Range{{Lo: lo, Hi: hi}},
			targets: targets,
		})
	}
	return mergeAdjacent(parts)
}

// mergeAdjacent folds adjacent parts whose target sets are identical
// into a single wider-ranged transition, keeping DFA rows compact.
func mergeAdjacent(parts []transitionPart) []transitionPart {
	if len(parts) == 0 {
		return parts
	}
	out := parts[:1]
	for _, p := range parts[1:] {
		last := &out[len(out)-1]
		if sameTargets(last.targets, p.targets) && last.ranges[0].Hi+1 == p.ranges[0].Lo {
			last.ranges[0].Hi = p.ranges[0].Hi
			continue
		}
		out = append(out, p)
	}
	return out
}

func sameTargets(a, b []nfa.StateID) bool {
	if len(a) != len(b) {
		return false
	}
	ac := append([]nfa.StateID(nil), a...)
	bc := append([]nfa.StateID(nil), b...)
	sort.Slice(ac, func(i, j int) bool { return ac[i] < ac[j] })
	sort.Slice(bc, func(i, j int) bool { return bc[i] < bc[j] })
	for i := range ac {
		if ac[i] != bc[i] {
			return false
		}
	}
	return true
}
