// Package prefilter implements the literal-alternation fast path from
// spec section 4.5.2: detecting that a parsed pattern is nothing but a
// flat alternation of single-character literals (`a|b|c`; alternations
// with longer or repeated arms such as `ab|cd` are not recognized) and
// answering find_at queries with an Aho-Corasick
// automaton instead of walking the DFA.
//
// Grounded on coregx/meta/compile.go's `buildStrategyEngines`
// (`ahocorasick.NewBuilder()` / `AddPattern` / `Build()`). spec.md's
// find_at is anchored exactly at the given start position (section
// 4.2), not a free scan forward through the haystack, so this prefilter
// checks membership of the single rune at that position rather than
// calling the automaton's own (unanchored) Find — unlike coregx's
// findAhoCorasick, which answers coregex's conventional "search
// anywhere" Find and can hand the automaton the whole remaining
// haystack.
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/regexcore/ast"
	"github.com/coregx/regexcore/dfa"
)

// Literal is a ready-to-use prefilter over a flat alternation of
// single-character literals.
type Literal struct {
	auto *ahocorasick.Automaton
}

// Build inspects root and returns a usable *Literal if it is a pure
// alternation of single-character Atoms, or nil if the pattern doesn't
// have that shape (including: any Unary node, any Concat, any
// multi-character class such as \d or [a-z]).
func Build(root ast.Node) *Literal {
	var runes []rune
	if !collectAtomAlternation(root, &runes) || len(runes) == 0 {
		return nil
	}

	b := ahocorasick.NewBuilder()
	for _, r := range runes {
		b.AddPattern([]byte(string(r)))
	}
	auto, err := b.Build()
	if err != nil {
		return nil
	}
	return &Literal{auto: auto}
}

func collectAtomAlternation(n ast.Node, out *[]rune) bool {
	switch v := n.(type) {
	case *ast.Atom:
		if !v.Class.IsSingle() {
			return false
		}
		*out = append(*out, v.Class.Ranges()[0].Lo)
		return true
	case *ast.Binary:
		if v.Op != ast.Alternate {
			return false
		}
		return collectAtomAlternation(v.Left, out) && collectAtomAlternation(v.Right, out)
	default:
		return false
	}
}

// FindAt reports whether the rune at index at in input belongs to the
// literal set, mirroring dfa.DFA.FindAt's anchored-at-start contract for
// the narrow single-rune-alternation case this prefilter handles.
func (l *Literal) FindAt(input []rune, at int) *dfa.Match {
	if at < 0 || at >= len(input) {
		return nil
	}
	r := input[at]
	if !l.auto.IsMatch([]byte(string(r))) {
		return nil
	}
	return &dfa.Match{Start: at, End: at + 1, Span: []rune{r}}
}
