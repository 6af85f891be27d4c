package charclass

// Named atoms for the seven escape classes spec.md's parser recognizes
// (\d \D \s \S \w \W \n) plus the wildcard's "any scalar but newline".
//
// Ranges mirror the classic Perl-compatible definitions used throughout
// the pack's hand-rolled regex engines (e.g. mabhi256-codecrafters-grep-go's
// escape handling), not full Unicode property tables — counted among
// spec.md's explicit non-goals ("Unicode-property classes beyond the
// seven escape atoms").

// Digit returns the decimal-digit class: [0-9].
func Digit() *Class {
	return NewRanges(Range{Lo: '0', Hi: '9'})
}

// NotDigit returns the complement of Digit.
func NotDigit() *Class {
	return Digit().Complement()
}

// Space returns the whitespace class: space, \t, \n, \f, \r (\v is not
// included).
func Space() *Class {
	return NewRanges(
		Range{Lo: '\t', Hi: '\n'},
		Range{Lo: '\f', Hi: '\r'},
		Range{Lo: ' ', Hi: ' '},
	)
}

// NotSpace returns the complement of Space.
func NotSpace() *Class {
	return Space().Complement()
}

// Word returns the word-character class: [0-9A-Za-z_].
func Word() *Class {
	return NewRanges(
		Range{Lo: '0', Hi: '9'},
		Range{Lo: 'A', Hi: 'Z'},
		Range{Lo: '_', Hi: '_'},
		Range{Lo: 'a', Hi: 'z'},
	)
}

// NotWord returns the complement of Word.
func NotWord() *Class {
	return Word().Complement()
}

// Newline returns the class containing only '\n'.
func Newline() *Class {
	return NewChar('\n')
}

// AnyNotNL returns the class of every scalar except '\n' — the class the
// wildcard '.' compiles to (handle_wildcard is defined as
// handle_char(all-but-newline) in spec.md section 4.4).
func AnyNotNL() *Class {
	return Newline().Complement()
}
