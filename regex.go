// Package regexcore compiles a small regular expression grammar
// (literals, `.`, `[...]` classes, `\d\D\s\S\w\W\n` escapes, `*+?`,
// concatenation, `|`) into a deterministic finite automaton and matches
// strings against it, guaranteeing worst-case O(n*m) execution with no
// backtracking.
//
// Basic usage:
//
//	re, err := regexcore.Compile(`[a-z]+@[a-z]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.Match("user@example") {
//	    fmt.Println("matched")
//	}
package regexcore

import (
	"fmt"

	"github.com/coregx/regexcore/ast"
	"github.com/coregx/regexcore/asciiscan"
	"github.com/coregx/regexcore/charclass"
	"github.com/coregx/regexcore/determinize"
	"github.com/coregx/regexcore/dfa"
	"github.com/coregx/regexcore/nfa"
	"github.com/coregx/regexcore/parser"
	"github.com/coregx/regexcore/prefilter"
)

// Regex is a compiled pattern. A *Regex is safe for concurrent use: the
// DFA and prefilter automaton it holds are built once at Compile time
// and never mutated afterward.
type Regex struct {
	automaton *dfa.DFA[*charclass.Class]
	lit       *prefilter.Literal
	pattern   string
	cpu       asciiscan.Features
}

// Compile compiles pattern using DefaultConfig().
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexcore: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern under a caller-supplied Config.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("regexcore: compile %q: %w", pattern, err)
	}
	if n := len([]rune(pattern)); n > cfg.MaxPatternLength {
		return nil, fmt.Errorf("regexcore: compile %q: %w", pattern,
			&LimitError{Err: ErrPatternTooLong, Limit: cfg.MaxPatternLength, Got: n})
	}

	astParser := parser.New[ast.Node](ast.NewBuilder())
	root, err := astParser.Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("regexcore: compile %q: %w", pattern, err)
	}

	nfaParser := parser.New[*nfa.NFA](nfa.NewBuilder())
	frag, err := nfaParser.Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("regexcore: compile %q: %w", pattern, err)
	}

	automaton := determinize.Build(frag)
	if n := int(automaton.TotalStates()); n > cfg.DeterminizationLimit {
		return nil, fmt.Errorf("regexcore: compile %q: %w", pattern,
			&LimitError{Err: ErrTooManyStates, Limit: cfg.DeterminizationLimit, Got: n})
	}

	var lit *prefilter.Literal
	if cfg.EnablePrefilter {
		lit = prefilter.Build(root)
	}

	return &Regex{automaton: automaton, lit: lit, pattern: pattern, cpu: cfg.CPUFeatures}, nil
}

// Match reports whether the last step of the automaton's stepping
// iterator, run over s from position 0 until it runs out of input or
// transitions, lands on a final state (spec section 4.2's is_match:
// anchored at the start, last-yielded-flag semantics, not full
// consumption — "ab" matches "abc" since the walk's last step reaches
// ab's final state before dying on the trailing 'c'). Callers that need the match to additionally span the whole
// string should check Find(s) for m.End == len(s) instead.
func (r *Regex) Match(s string) bool {
	return r.automaton.IsMatch(toRunes(s))
}

// Find is FindAt(s, 0, false): the leftmost-longest match anchored at
// the start of s, or nil if the pattern does not match a prefix of s.
func (r *Regex) Find(s string) *dfa.Match {
	return r.FindAt(s, 0, false)
}

// FindShortest is FindAt(s, 0, true).
func (r *Regex) FindShortest(s string) *dfa.Match {
	return r.FindAt(s, 0, true)
}

// FindAt performs an anchored search starting exactly at the start'th
// rune of s (spec section 4.2's find_at; there is no scan across other
// start positions here — that is a different, higher-level operation
// than this module implements). When the prefilter is active it answers
// the query directly (the prefilter tests only the single rune at start,
// so it is exactly as anchored as the DFA, and both are compiled from
// the same alternation); otherwise the DFA is walked.
func (r *Regex) FindAt(s string, start int, shortest bool) *dfa.Match {
	runes := toRunes(s)
	if r.lit != nil {
		return r.lit.FindAt(runes, start)
	}
	res := r.automaton.FindAt(runes, start, shortest)
	if res == nil {
		return nil
	}
	m := res.Match
	return &m
}

// toRunes widens s to runes, taking the ASCII fast path (spec section
// 4.5.3) when possible: an ASCII byte is already its own Unicode scalar
// value, so asciiscan.IsASCII lets us skip utf8's multi-byte decode loop
// entirely and widen byte-by-byte. Falls back to a full UTF-8 decode for
// any string containing non-ASCII bytes.
func toRunes(s string) []rune {
	b := []byte(s)
	if !asciiscan.IsASCII(b) {
		return []rune(s)
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return runes
}

// String returns the source pattern r was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// Stats reports whether the compiled Regex is using its literal fast
// path and what the host CPU could additionally accelerate.
type Stats struct {
	PrefilterActive bool
	CPUFeatures     asciiscan.Features
}

// Stats returns compile-time diagnostics for r.
func (r *Regex) Stats() Stats {
	return Stats{PrefilterActive: r.lit != nil, CPUFeatures: r.cpu}
}
