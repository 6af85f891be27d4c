package nfa

import "github.com/coregx/regexcore/charclass"

// Builder implements the parser package's Builder[*NFA] contract (spec
// section 4.5, "NFA builder"), assembling a Thompson-construction
// fragment via the combinators in combinators.go.
type Builder struct{}

// NewBuilder returns an NFA Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// HandleChar returns FromChar(c).
func (b *Builder) HandleChar(c *charclass.Class) *NFA {
	return FromChar(c)
}

// HandleWildcard returns a fragment matching anything but newline.
func (b *Builder) HandleWildcard() *NFA {
	return FromChar(charclass.AnyNotNL())
}

// HandleStar returns the Kleene closure of child.
func (b *Builder) HandleStar(child *NFA) *NFA {
	return KleeneStar(child)
}

// HandlePlus returns concat(star(child), child): one or more
// repetitions (spec section 4.5's NFA builder definition).
func (b *Builder) HandlePlus(child *NFA) *NFA {
	return Concatenation(KleeneStar(child), child)
}

// HandleOptional returns union(epsilon, child): zero or one repetition.
func (b *Builder) HandleOptional(child *NFA) *NFA {
	return Union(NewEpsilon(), child)
}

// HandleConcat returns the concatenation of l and r.
func (b *Builder) HandleConcat(l, r *NFA) *NFA {
	return Concatenation(l, r)
}

// HandleAlternate returns the union of l and r.
func (b *Builder) HandleAlternate(l, r *NFA) *NFA {
	return Union(l, r)
}
