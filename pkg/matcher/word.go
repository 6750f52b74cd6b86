package matcher

import "unicode"

// isWordChar reports whether r is a letter, a decimal digit (Nd) or an
// underscore. Other numerals such as superscripts and roman numerals are not
// word characters.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isBoundary reports whether position i of text is outside any word: either
// out of range or holding a non-word character.
func isBoundary(text []rune, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	return !isWordChar(text[i])
}
