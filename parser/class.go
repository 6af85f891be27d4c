package parser

import (
	"github.com/coregx/regexcore/charclass"
	"github.com/coregx/regexcore/input"
)

// parseClass parses a bracketed character class, '[' ... ']', per spec
// section 4.4's "Character class parsing" algorithm. present is false
// for a class that is empty after complement is applied (e.g. "[]").
func (p *Parser[T]) parseClass(in *input.Cursor) (T, bool, error) {
	var zero T
	in.NextUnchecked() // consume '['

	negate := false
	if in.PeekIs('^') {
		in.NextUnchecked()
		negate = true
	}

	cls := charclass.New()
	for {
		r, ok := in.Peek()
		if !ok {
			return zero, false, &input.UnexpectedEOFError{Span: in.CurrentEOFSpan(), Expected: input.ExpectedSet{"]"}}
		}
		if r.Char == ']' {
			break
		}
		if err := parseClassItem(in, cls); err != nil {
			return zero, false, err
		}
	}
	in.NextUnchecked() // consume ']'

	if negate {
		cls = cls.Complement()
	}
	if cls.IsEmpty() {
		return zero, false, nil
	}
	return p.builder.HandleChar(cls), true, nil
}

// parseClassItem parses one class member starting at the cursor's
// current position (a single char or an escape-class) and an optional
// trailing "-end" range, folding the result into cls.
func parseClassItem(in *input.Cursor, cls *charclass.Class) error {
	item, err := parseOneClassAtom(in)
	if err != nil {
		return err
	}
	if !item.IsSingle() {
		cls.AddOther(item)
		return nil
	}

	if !in.PeekIs('-') {
		lo := item.Ranges()[0].Lo
		cls.AddRange(charclass.Range{Lo: lo, Hi: lo})
		return nil
	}

	in.NextUnchecked() // consume '-'
	if _, ok := in.Peek(); !ok {
		return &input.UnexpectedEOFError{Span: in.CurrentEOFSpan(), Expected: input.ExpectedSet{"]"}}
	}
	end, err := parseOneClassAtom(in)
	if err != nil {
		return err
	}
	if !end.IsSingle() {
		// Not a valid range end (e.g. "[a-\d]"): '-' was literal.
		lo := item.Ranges()[0].Lo
		cls.AddRange(charclass.Range{Lo: lo, Hi: lo})
		cls.AddRange(charclass.Range{Lo: '-', Hi: '-'})
		cls.AddOther(end)
		return nil
	}
	lo, hi := item.Ranges()[0].Lo, end.Ranges()[0].Lo
	if lo <= hi {
		cls.AddRange(charclass.Range{Lo: lo, Hi: hi})
	}
	// lo > hi (a reversed range like "[z-a]") contributes nothing.
	return nil
}

// parseOneClassAtom parses a single class member (escape-class or
// literal char) without consuming any trailing range dash.
func parseOneClassAtom(in *input.Cursor) (*charclass.Class, error) {
	r, ok := in.Peek()
	if !ok {
		return nil, &input.UnexpectedEOFError{Span: in.CurrentEOFSpan(), Expected: input.ExpectedSet{"]"}}
	}
	if r.Char == '\\' {
		in.NextUnchecked()
		return parseEscapeClass(in)
	}
	in.NextUnchecked()
	return charclass.NewChar(r.Char), nil
}
