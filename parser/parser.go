// Package parser implements the Pratt/precedence-climbing regex parser
// from spec section 4.4: a single recursive-descent loop with explicit
// binding powers for postfix repetition, concatenation, and alternation,
// driving a generic Builder to produce either an NFA or an AST.
//
// Grounded on mabhi256-codecrafters-grep-go/app/ast/ast_parser.go's
// hand-rolled recursive-descent shape (LHS dispatch switch, RHS
// continuation loop), generalized from that parser's single AST output
// type to spec.md's Builder[T]-parameterized contract so the same
// grammar drives either an nfa.NFA or an ast.Node builder.
package parser

import (
	"github.com/coregx/regexcore/charclass"
	"github.com/coregx/regexcore/input"
)

// Binding powers for the Pratt loop (spec section 4.4's "RHS loop").
const (
	bpPostfix   = 9
	bpAltLeft   = 5
	bpAltRight  = 6
	bpCatLeft   = 7
	bpCatRight  = 8
	bpTopLevel  = 0
	bpGroupBody = 0
)

// Builder is driven by Parser to assemble a value of type T (an NFA
// fragment, an AST node, or any other representation a caller defines)
// from the regex grammar's productions.
type Builder[T any] interface {
	HandleChar(c *charclass.Class) T
	HandleWildcard() T
	HandleStar(child T) T
	HandlePlus(child T) T
	HandleOptional(child T) T
	HandleConcat(l, r T) T
	HandleAlternate(l, r T) T
}

// Parser drives a Builder[T] over a pattern string per the grammar in
// spec section 4.4.
type Parser[T any] struct {
	builder Builder[T]
}

// New returns a Parser that will drive b.
func New[T any](b Builder[T]) *Parser[T] {
	return &Parser[T]{builder: b}
}

// Parse compiles src into a T, or fails with EmptyExpressionError,
// *input.UnexpectedTokenError, or *input.UnexpectedEOFError.
func (p *Parser[T]) Parse(src string) (T, error) {
	var zero T
	in := input.New(src)
	out, present, err := p.parseExpr(in, bpTopLevel, false)
	if err != nil {
		return zero, err
	}
	if !present {
		return zero, &EmptyExpressionError{Span: in.CurrentEOFSpan()}
	}
	if r, ok := in.Peek(); ok {
		return zero, &input.UnexpectedTokenError{
			Span:     in.PeekSpan(),
			Token:    r.Char,
			Expected: input.ExpectedSet{"end of input"},
		}
	}
	return out, nil
}

// parseExpr implements one level of the precedence-climbing loop: an
// LHS phase followed by an RHS loop that folds in postfix, concat, and
// alternate operators bound tighter than minBP. present is false only
// when the LHS phase found no atom without erroring (an empty group or
// class consumed all the input, or — when parenthesized — input ended
// at ')').
func (p *Parser[T]) parseExpr(in *input.Cursor, minBP int, parenthesized bool) (T, bool, error) {
	var zero T
	lhs, present, err := p.parseLHS(in, parenthesized)
	if err != nil || !present {
		return zero, present, err
	}

rhsLoop:
	for {
		r, ok := in.Peek()
		if !ok {
			break
		}
		switch r.Char {
		case ')':
			break rhsLoop
		case '*', '+', '?':
			if bpPostfix < minBP {
				break rhsLoop
			}
			in.NextUnchecked()
			switch r.Char {
			case '*':
				lhs = p.builder.HandleStar(lhs)
			case '+':
				lhs = p.builder.HandlePlus(lhs)
			case '?':
				lhs = p.builder.HandleOptional(lhs)
			}
		case '|':
			if bpAltLeft < minBP {
				break rhsLoop
			}
			in.NextUnchecked()
			rhs, rpresent, rerr := p.parseExpr(in, bpAltRight, parenthesized)
			if rerr != nil {
				return zero, false, rerr
			}
			if rpresent {
				lhs = p.builder.HandleAlternate(lhs, rhs)
			}
		default:
			if bpCatLeft < minBP {
				break rhsLoop
			}
			rhs, rpresent, rerr := p.parseExpr(in, bpCatRight, parenthesized)
			if rerr != nil {
				return zero, false, rerr
			}
			if rpresent {
				lhs = p.builder.HandleConcat(lhs, rhs)
			}
		}
	}
	return lhs, true, nil
}

// parseLHS implements the grammar's LHS phase: it loops past "empty
// group"/"empty class" productions (which consume input but yield no
// atom) until it either produces an atom, hits a structural stop
// (end-of-input, or ')' when parenthesized) with no atom produced, or
// fails.
func (p *Parser[T]) parseLHS(in *input.Cursor, parenthesized bool) (T, bool, error) {
	var zero T
	for {
		r, ok := in.Peek()
		if !ok {
			return zero, false, nil
		}
		switch r.Char {
		case '\\':
			in.NextUnchecked()
			cls, err := parseEscapeClass(in)
			if err != nil {
				return zero, false, err
			}
			return p.builder.HandleChar(cls), true, nil
		case '(':
			out, present, err := p.parseGroup(in)
			if err != nil {
				return zero, false, err
			}
			if present {
				return out, true, nil
			}
			continue
		case '[':
			out, present, err := p.parseClass(in)
			if err != nil {
				return zero, false, err
			}
			if present {
				return out, true, nil
			}
			continue
		case '.':
			in.NextUnchecked()
			return p.builder.HandleWildcard(), true, nil
		case ')':
			if !parenthesized {
				return zero, false, &input.UnexpectedTokenError{
					Span:     in.PeekSpan(),
					Token:    ')',
					Expected: input.ExpectedSet{"atom", "(", "["},
				}
			}
			return zero, false, nil
		case '*', '+', '?', '|':
			return zero, false, &input.UnexpectedTokenError{
				Span:     in.PeekSpan(),
				Token:    r.Char,
				Expected: input.ExpectedSet{"atom", "(", "["},
			}
		default:
			ch := in.NextUnchecked()
			return p.builder.HandleChar(charclass.NewChar(ch.Char)), true, nil
		}
	}
}

// parseGroup parses a parenthesized subexpression: '(' expr? ')'.
// present is false for an empty group "()".
func (p *Parser[T]) parseGroup(in *input.Cursor) (T, bool, error) {
	var zero T
	in.NextUnchecked() // consume '('
	out, present, err := p.parseExpr(in, bpGroupBody, true)
	if err != nil {
		return zero, false, err
	}
	if _, err := in.NextChecked(')', input.ExpectedSet{")"}); err != nil {
		return zero, false, err
	}
	return out, present, nil
}

// EmptyExpressionError reports a pattern that contains no atoms at all,
// e.g. "" or "()". Only Parse raises it, for the pattern as a whole; an
// empty operand inside a larger pattern (as in "a|" or "a()") is dropped
// rather than reported.
type EmptyExpressionError struct {
	Span input.Span
}

func (e *EmptyExpressionError) Error() string {
	return "empty expression"
}
