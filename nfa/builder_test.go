package nfa

import (
	"testing"

	"github.com/coregx/regexcore/charclass"
)

func TestBuilderHandleCharAndWildcard(t *testing.T) {
	b := NewBuilder()
	n := b.HandleChar(charclass.NewChar('a'))
	if !accepts(n, "a") || accepts(n, "b") {
		t.Fatalf("handle_char('a') language wrong")
	}
	w := b.HandleWildcard()
	if accepts(w, "\n") || !accepts(w, "x") {
		t.Fatalf("handle_wildcard must exclude newline, match anything else")
	}
}

func TestBuilderHandleStarAndOptional(t *testing.T) {
	b := NewBuilder()
	star := b.HandleStar(b.HandleChar(charclass.NewChar('a')))
	for _, s := range []string{"", "a", "aaa"} {
		if !accepts(star, s) {
			t.Errorf("expected a* to accept %q", s)
		}
	}

	opt := b.HandleOptional(b.HandleChar(charclass.NewChar('a')))
	if !accepts(opt, "") || !accepts(opt, "a") {
		t.Fatalf("expected a? to accept \"\" and \"a\"")
	}
	if accepts(opt, "aa") {
		t.Fatalf("expected a? to reject \"aa\"")
	}
}

func TestBuilderHandlePlus(t *testing.T) {
	b := NewBuilder()
	plus := b.HandlePlus(b.HandleChar(charclass.NewChar('a')))
	if accepts(plus, "") {
		t.Fatalf("expected a+ to reject empty string")
	}
	for _, s := range []string{"a", "aaaa"} {
		if !accepts(plus, s) {
			t.Errorf("expected a+ to accept %q", s)
		}
	}
}

func TestBuilderHandleConcatAndAlternate(t *testing.T) {
	b := NewBuilder()
	ab := b.HandleConcat(b.HandleChar(charclass.NewChar('a')), b.HandleChar(charclass.NewChar('b')))
	if !accepts(ab, "ab") || accepts(ab, "a") || accepts(ab, "ba") {
		t.Fatalf("handle_concat language wrong")
	}

	alt := b.HandleAlternate(b.HandleChar(charclass.NewChar('a')), b.HandleChar(charclass.NewChar('b')))
	if !accepts(alt, "a") || !accepts(alt, "b") || accepts(alt, "ab") {
		t.Fatalf("handle_alternate language wrong")
	}
}
