package parser

import (
	"github.com/coregx/regexcore/charclass"
	"github.com/coregx/regexcore/input"
)

// parseEscapeClass consumes the character following a '\' already
// consumed by the caller and resolves it through the escape-class table
// from spec section 4.4: d/D/s/S/w/W/n map to named atoms, anything
// else becomes a literal singleton class.
func parseEscapeClass(in *input.Cursor) (*charclass.Class, error) {
	r, err := in.NextUnwrap(input.ExpectedSet{"escape character"})
	if err != nil {
		return nil, err
	}
	switch r.Char {
	case 'd':
		return charclass.Digit(), nil
	case 'D':
		return charclass.NotDigit(), nil
	case 's':
		return charclass.Space(), nil
	case 'S':
		return charclass.NotSpace(), nil
	case 'w':
		return charclass.Word(), nil
	case 'W':
		return charclass.NotWord(), nil
	case 'n':
		return charclass.Newline(), nil
	default:
		return charclass.NewChar(r.Char), nil
	}
}
