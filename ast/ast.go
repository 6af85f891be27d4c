// Package ast implements the AST expression external contract from spec
// section 3: a lossless recursive tree (Atom/Unary/Binary) over a parsed
// pattern, and the AST Builder from section 4.5 that a parser drives to
// produce one.
//
// Grounded on mabhi256-codecrafters-grep-go/app/ast/ast_parser.go's node
// types (CharNode, StarNode, ConcatNode, AlternationNode, ...), collapsed
// here to the spec's three-shape tree: every postfix/binary regex
// operator is one of two generic node kinds rather than its own bespoke
// type.
package ast

import "github.com/coregx/regexcore/charclass"

// Node is any node in a parsed expression tree.
type Node interface {
	// Clone returns a deep copy, independent of the receiver.
	Clone() Node

	node()
}

// UnaryOp names a single-child operator.
type UnaryOp int

const (
	// Star is zero-or-more repetition.
	Star UnaryOp = iota
	// Optional is zero-or-one repetition.
	Optional
)

// BinaryOp names a two-child operator.
type BinaryOp int

const (
	// Concat is sequencing: left then right.
	Concat BinaryOp = iota
	// Alternate is choice: left or right.
	Alternate
)

// Atom matches a single character drawn from Class.
type Atom struct {
	Class *charclass.Class
}

func (a *Atom) node() {}

// Clone returns a deep copy of a.
func (a *Atom) Clone() Node {
	return &Atom{Class: a.Class.Clone()}
}

// Unary applies Op to Child.
type Unary struct {
	Op    UnaryOp
	Child Node
}

func (u *Unary) node() {}

// Clone returns a deep copy of u.
func (u *Unary) Clone() Node {
	return &Unary{Op: u.Op, Child: u.Child.Clone()}
}

// Binary applies Op to Left and Right.
type Binary struct {
	Op          BinaryOp
	Left, Right Node
}

func (b *Binary) node() {}

// Clone returns a deep copy of b.
func (b *Binary) Clone() Node {
	return &Binary{Op: b.Op, Left: b.Left.Clone(), Right: b.Right.Clone()}
}
