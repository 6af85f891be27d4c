// Package input implements the Parse Input cursor (spec section 4.3): a
// peekable char cursor over a regex source string, tracking positions for
// diagnostics.
//
// Grounded on mabhi256-codecrafters-grep-go/app/ast/ast_parser.go's
// Parser.peek/advance/isEOF cursor, generalized here from byte indexing to
// (byte_offset, rune) peeking with a one-slot lookahead buffer, per
// spec.md's ParseInput contract.
package input

import (
	"fmt"
	"unicode/utf8"
)

// Span is a diagnostic location in the source: a substring [Start, End)
// with its text, used to point at the cause of a parse error.
type Span struct {
	Start int
	End   int
	Text  string
}

// Rune pairs a decoded character with its byte offset in the source.
type Rune struct {
	Offset int
	Char   rune
}

// Cursor is a peekable cursor over a regex source string.
type Cursor struct {
	expr string

	// pos is the byte offset of the next undecoded byte.
	pos int

	// nextPos counts characters consumed so far.
	nextPos int

	// charPos is the byte offset of the most recently consumed character.
	charPos int

	// peeked holds a one-character lookahead, populated lazily.
	peeked    *Rune
	peekedEOF bool
}

// New returns a cursor over expr. The cursor borrows expr for its lifetime.
func New(expr string) *Cursor {
	return &Cursor{expr: expr}
}

// fill decodes the next rune from pos into the lookahead slot, if not
// already filled.
func (c *Cursor) fill() {
	if c.peeked != nil || c.peekedEOF {
		return
	}
	if c.pos >= len(c.expr) {
		c.peekedEOF = true
		return
	}
	r, size := utf8.DecodeRuneInString(c.expr[c.pos:])
	c.peeked = &Rune{Offset: c.pos, Char: r}
	_ = size
}

// Peek returns the next character without consuming it.
func (c *Cursor) Peek() (Rune, bool) {
	c.fill()
	if c.peeked == nil {
		return Rune{}, false
	}
	return *c.peeked, true
}

// PeekIs reports whether the next character, if any, equals ch.
func (c *Cursor) PeekIs(ch rune) bool {
	r, ok := c.Peek()
	return ok && r.Char == ch
}

// Next consumes and returns the next character, advancing internal
// counters. Returns ok=false at end of input.
func (c *Cursor) Next() (Rune, bool) {
	c.fill()
	if c.peeked == nil {
		return Rune{}, false
	}
	r := *c.peeked
	_, size := utf8.DecodeRuneInString(c.expr[r.Offset:])
	c.pos = r.Offset + size
	c.charPos = r.Offset
	c.nextPos++
	c.peeked = nil
	c.peekedEOF = false
	return r, true
}

// NextUnchecked consumes the next character, panicking if input is
// exhausted. Used after a successful Peek, where exhaustion would be a
// caller bug.
func (c *Cursor) NextUnchecked() Rune {
	r, ok := c.Next()
	if !ok {
		panic("input: NextUnchecked called at end of input")
	}
	return r
}

// ExpectedSet names the set of characters a caller expected, for error
// messages.
type ExpectedSet []string

// NextUnwrap consumes and returns the next character, or fails with
// *UnexpectedEOFError carrying the supplied expected set if input is
// exhausted.
func (c *Cursor) NextUnwrap(expected ExpectedSet) (Rune, error) {
	r, ok := c.Next()
	if !ok {
		return Rune{}, &UnexpectedEOFError{Span: c.CurrentEOFSpan(), Expected: expected}
	}
	return r, nil
}

// NextChecked consumes and returns the next character iff it equals ch.
// Otherwise returns UnexpectedTokenError (if a different char is present)
// or UnexpectedEOFError (if input is exhausted).
func (c *Cursor) NextChecked(ch rune, expected ExpectedSet) (Rune, error) {
	r, ok := c.Peek()
	if !ok {
		return Rune{}, &UnexpectedEOFError{Span: c.CurrentEOFSpan(), Expected: expected}
	}
	if r.Char != ch {
		return Rune{}, &UnexpectedTokenError{Span: c.spanFor(r), Token: r.Char, Expected: expected}
	}
	c.NextUnchecked()
	return r, nil
}

// CurrentSpan returns a zero-width span at the most recently consumed
// character, for diagnostics anchored to "here".
func (c *Cursor) CurrentSpan() Span {
	return Span{Start: c.charPos, End: c.charPos, Text: ""}
}

// CurrentEOFSpan returns a zero-width span at the end of input.
func (c *Cursor) CurrentEOFSpan() Span {
	return Span{Start: len(c.expr), End: len(c.expr), Text: ""}
}

// PeekSpan returns the span of the character that would be returned by
// the next call to Peek/Next, or the EOF span if input is exhausted.
func (c *Cursor) PeekSpan() Span {
	r, ok := c.Peek()
	if !ok {
		return c.CurrentEOFSpan()
	}
	return c.spanFor(r)
}

func (c *Cursor) spanFor(r Rune) Span {
	size := utf8.RuneLen(r.Char)
	return Span{Start: r.Offset, End: r.Offset + size, Text: c.expr[r.Offset : r.Offset+size]}
}

// UnexpectedTokenError reports a disallowed character at a given position.
type UnexpectedTokenError struct {
	Span     Span
	Token    rune
	Expected ExpectedSet
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %q at %d-%d (expected one of %v)", e.Token, e.Span.Start, e.Span.End, e.Expected)
}

// UnexpectedEOFError reports that input ended where more was required.
type UnexpectedEOFError struct {
	Span     Span
	Expected ExpectedSet
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input at %d (expected one of %v)", e.Span.Start, e.Expected)
}
