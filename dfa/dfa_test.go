package dfa

import "testing"

// charLabel is the simplest possible Label: matches exactly one rune.
// Used to build hand-rolled DFAs for unit tests without depending on the
// charclass or determinize packages.
type charLabel rune

func (c charLabel) Matches(sym rune) bool { return rune(c) == sym }
func (c charLabel) Key() string           { return string(rune(c)) }

func tr(r rune) Transition[charLabel] {
	return Transition[charLabel]{Value: charLabel(r)}
}

func TestFreshDFAShape(t *testing.T) {
	d := New[charLabel]()
	if d.InitialState() != 0 {
		t.Fatalf("expected initial state 0, got %d", d.InitialState())
	}
	if d.TotalStates() != 1 {
		t.Fatalf("expected total_states 1, got %d", d.TotalStates())
	}
	if d.IsFinalState(0) {
		t.Fatalf("fresh DFA's state 0 should not be final")
	}
}

func TestMarkFinal(t *testing.T) {
	d := New[charLabel]()
	if d.IsFinalState(0) {
		t.Fatalf("state 0 should start non-final")
	}
	d.MarkFinal(0)
	if !d.IsFinalState(0) {
		t.Fatalf("expected state 0 final after MarkFinal")
	}
}

func TestAddTransitionInvalidState(t *testing.T) {
	d := New[charLabel]()
	err := d.AddTransition(0, 5, tr('a'))
	if err == nil {
		t.Fatalf("expected error adding transition to nonexistent state")
	}
	var te *TransitionError
	if !asTransitionError(err, &te) {
		t.Fatalf("expected *TransitionError, got %T", err)
	}
}

func asTransitionError(err error, out **TransitionError) bool {
	te, ok := err.(*TransitionError)
	if ok {
		*out = te
	}
	return ok
}

// buildAStar builds the DFA for the language a* by hand: state 0 is
// initial and final, with a self-loop on 'a'.
func buildAStar() *DFA[charLabel] {
	d := New[charLabel]()
	d.finalStates[0] = true
	_ = d.AddTransition(0, 0, tr('a'))
	return d
}

func TestIsMatchEmptyLaw(t *testing.T) {
	d := buildAStar()
	if !d.IsMatch(nil) {
		t.Fatalf("a* should match empty input")
	}

	d2 := New[charLabel]()
	s1 := d2.AddState(true)
	_ = d2.AddTransition(0, s1, tr('a'))
	if d2.IsMatch(nil) {
		t.Fatalf("non-final-initial DFA should not match empty input")
	}
}

// buildAB builds the DFA for the exact literal "ab": state 0 --a--> 1
// --b--> 2(final), with no transitions defined past state 2.
func buildAB() *DFA[charLabel] {
	d := New[charLabel]()
	s1 := d.AddState(false)
	s2 := d.AddState(true)
	_ = d.AddTransition(0, s1, tr('a'))
	_ = d.AddTransition(s1, s2, tr('b'))
	return d
}

func TestIsMatchLastYieldedFlagWins(t *testing.T) {
	// IsMatch follows the stepping iterator's last yielded final flag
	// (spec section 4.2), with no separate full-consumption requirement:
	// trailing input the DFA can't step on doesn't erase an already
	// -reached match.
	d := buildAStar()
	if !d.IsMatch([]rune("aaa")) {
		t.Fatalf("a* should match 'aaa'")
	}
	if !d.IsMatch([]rune("aab")) {
		t.Fatalf("expected 'aab' to match: the last successful step (second 'a') was final, even though 'b' then killed the walk")
	}

	ab := buildAB()
	if !ab.IsMatch([]rune("abc")) {
		t.Fatalf("expected 'abc' to match \"ab\": the walk dies on trailing 'c', but the last yielded step (matching 'b') was final")
	}
	if ab.IsMatch([]rune("a")) {
		t.Fatalf("expected 'a' alone not to match \"ab\": the last yielded step (matching 'a') is not final")
	}
}

func TestFindALeftmostLongest(t *testing.T) {
	d := buildAStar()
	r := d.Find([]rune(""))
	if r == nil || r.Match.Start != 0 || r.Match.End != 0 || len(r.Match.Span) != 0 {
		t.Fatalf("expected empty match at 0,0 got %+v", r)
	}

	r = d.Find([]rune("aaa"))
	if r == nil || r.Match.Start != 0 || r.Match.End != 3 || string(r.Match.Span) != "aaa" {
		t.Fatalf("expected match 0,3,'aaa' got %+v", r)
	}
}

func TestFindShortestSeedsAtInitialFinal(t *testing.T) {
	d := buildAStar()
	r := d.FindShortest([]rune("aaa"))
	if r == nil || r.Match.Start != 0 || r.Match.End != 0 || len(r.Match.Span) != 0 {
		t.Fatalf("expected shortest match to be empty at 0, got %+v", r)
	}
}

func TestFindAtSkipsPrefix(t *testing.T) {
	// Build a tiny DFA for [0-9]+ manually: state0 --digit--> state1 (final),
	// state1 --digit--> state1 (final, loop).
	d := New[digitLabel]()
	s1 := d.AddState(true)
	_ = d.AddTransition(0, s1, Transition[digitLabel]{Value: digitLabel{}})
	_ = d.AddTransition(s1, s1, Transition[digitLabel]{Value: digitLabel{}})

	input := []rune("abc123def")
	r := d.FindAt(input, 3, false)
	if r == nil {
		t.Fatalf("expected a match")
	}
	if r.Match.Start != 3 || r.Match.End != 6 || string(r.Match.Span) != "123" {
		t.Fatalf("expected Match(3,6,'123'), got %+v", r.Match)
	}
}

func TestFindNoMatch(t *testing.T) {
	d := New[charLabel]()
	s1 := d.AddState(true)
	_ = d.AddTransition(0, s1, tr('a'))
	r := d.Find([]rune("bbb"))
	if r != nil {
		t.Fatalf("expected no match, got %+v", r)
	}
}

// digitLabel matches any ASCII digit.
type digitLabel struct{}

func (digitLabel) Matches(sym rune) bool { return sym >= '0' && sym <= '9' }
func (digitLabel) Key() string           { return "digit" }
