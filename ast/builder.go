package ast

import "github.com/coregx/regexcore/charclass"

// Builder implements the parser package's Builder[Node] contract (spec
// section 4.5, "AST builder"), assembling a Node tree directly rather
// than an automaton.
type Builder struct{}

// NewBuilder returns an AST Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// HandleChar returns an Atom over c.
func (b *Builder) HandleChar(c *charclass.Class) Node {
	return &Atom{Class: c}
}

// HandleWildcard returns an Atom matching everything but newline.
func (b *Builder) HandleWildcard() Node {
	return &Atom{Class: charclass.AnyNotNL()}
}

// HandleStar wraps child in a Star node.
func (b *Builder) HandleStar(child Node) Node {
	return &Unary{Op: Star, Child: child}
}

// HandlePlus desugars to concat(star(clone(child)), child), per spec
// section 4.5's explicit definition for the AST builder.
func (b *Builder) HandlePlus(child Node) Node {
	return &Binary{
		Op:    Concat,
		Left:  &Unary{Op: Star, Child: child.Clone()},
		Right: child,
	}
}

// HandleOptional wraps child in an Optional node.
func (b *Builder) HandleOptional(child Node) Node {
	return &Unary{Op: Optional, Child: child}
}

// HandleConcat returns Binary(Concat, l, r).
func (b *Builder) HandleConcat(l, r Node) Node {
	return &Binary{Op: Concat, Left: l, Right: r}
}

// HandleAlternate returns Binary(Alternate, l, r).
func (b *Builder) HandleAlternate(l, r Node) Node {
	return &Binary{Op: Alternate, Left: l, Right: r}
}
