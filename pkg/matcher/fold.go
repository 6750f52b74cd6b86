package matcher

import "unicode"

// fold maps a code point to its case-insensitive canonical form: the lower
// case of its upper case. This merges pairs such as 'ſ'/'s' and the Kelvin
// sign/'k' that a single ToLower or ToUpper would keep apart.
func fold(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}

func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = fold(r)
	}
	return out
}
