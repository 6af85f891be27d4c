package nfa

import (
	"testing"

	"github.com/coregx/regexcore/charclass"
)

// accepts runs a plain breadth-first epsilon-closure simulation over n,
// independent of the dfa/determinize packages, so combinator tests can
// check accepted languages without depending on subset construction.
func accepts(n *NFA, input string) bool {
	current := closure(n, map[StateID]bool{n.start: true})
	for _, r := range input {
		next := map[StateID]bool{}
		for id := range current {
			for _, e := range n.Edges(id) {
				if e.Label.Value.Matches(r) {
					next[e.To] = true
				}
			}
		}
		current = closure(n, next)
	}
	for id := range current {
		if n.IsFinal(id) {
			return true
		}
	}
	return false
}

func closure(n *NFA, seed map[StateID]bool) map[StateID]bool {
	stack := make([]StateID, 0, len(seed))
	for id := range seed {
		stack = append(stack, id)
	}
	out := map[StateID]bool{}
	for id := range seed {
		out[id] = true
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, eps := range n.Epsilons(id) {
			if !out[eps] {
				out[eps] = true
				stack = append(stack, eps)
			}
		}
	}
	return out
}

func TestFromCharAcceptsOnlyThatChar(t *testing.T) {
	n := FromChar(charclass.NewChar('a'))
	if !accepts(n, "a") {
		t.Fatalf("expected FromChar('a') to accept \"a\"")
	}
	if accepts(n, "b") {
		t.Fatalf("expected FromChar('a') to reject \"b\"")
	}
	if accepts(n, "") {
		t.Fatalf("expected FromChar('a') to reject empty string")
	}
	if accepts(n, "aa") {
		t.Fatalf("expected FromChar('a') to reject \"aa\"")
	}
}

func TestKleeneStarAcceptsEmptyAndRepetitions(t *testing.T) {
	n := KleeneStar(FromChar(charclass.NewChar('a')))
	for _, s := range []string{"", "a", "aa", "aaaa"} {
		if !accepts(n, s) {
			t.Errorf("expected a* to accept %q", s)
		}
	}
	if accepts(n, "b") {
		t.Fatalf("expected a* to reject \"b\"")
	}
	if accepts(n, "aab") {
		t.Fatalf("expected a* to reject \"aab\"")
	}
}

func TestConcatenationAcceptsSequence(t *testing.T) {
	n := Concatenation(FromChar(charclass.NewChar('a')), FromChar(charclass.NewChar('b')))
	if !accepts(n, "ab") {
		t.Fatalf("expected ab to accept \"ab\"")
	}
	for _, s := range []string{"", "a", "b", "ba", "abc"} {
		if accepts(n, s) {
			t.Errorf("expected ab to reject %q", s)
		}
	}
}

func TestUnionAcceptsEither(t *testing.T) {
	n := Union(FromChar(charclass.NewChar('a')), FromChar(charclass.NewChar('b')))
	if !accepts(n, "a") || !accepts(n, "b") {
		t.Fatalf("expected a|b to accept both branches")
	}
	for _, s := range []string{"", "c", "ab"} {
		if accepts(n, s) {
			t.Errorf("expected a|b to reject %q", s)
		}
	}
}

func TestPlusDesugaringShape(t *testing.T) {
	// handle_plus(r) = concat(star(clone(r)), r): zero-or-more of r
	// followed by one more r, i.e. one-or-more overall.
	base := func() *NFA { return FromChar(charclass.NewChar('a')) }
	n := Concatenation(KleeneStar(base()), base())
	if accepts(n, "") {
		t.Fatalf("expected a+ to reject empty string")
	}
	for _, s := range []string{"a", "aa", "aaa"} {
		if !accepts(n, s) {
			t.Errorf("expected a+ to accept %q", s)
		}
	}
	if accepts(n, "b") {
		t.Fatalf("expected a+ to reject \"b\"")
	}
}

func TestUnionOfConcatenations(t *testing.T) {
	ab := Concatenation(FromChar(charclass.NewChar('a')), FromChar(charclass.NewChar('b')))
	cd := Concatenation(FromChar(charclass.NewChar('c')), FromChar(charclass.NewChar('d')))
	n := Union(ab, cd)
	if !accepts(n, "ab") || !accepts(n, "cd") {
		t.Fatalf("expected ab|cd to accept both branches")
	}
	if accepts(n, "ac") || accepts(n, "bd") {
		t.Fatalf("expected ab|cd to reject cross combinations")
	}
}
