package matcher

import "github.com/praetorian-inc/wgrep/pkg/types"

// ExtractContext returns the text around the code point range [start, end):
// before runs from the start of the line holding start, extended by lines
// earlier lines; after runs to the end of the line holding end, extended by
// lines later lines. The newline that closes the last line of after is not
// included. lines = 0 yields only the remainder of the match's own line.
// Out of range or inverted spans and negative lines yield empty context.
func ExtractContext(text []rune, start, end int, lines int) (before, after string) {
	if lines < 0 {
		return "", ""
	}
	if start < 0 || start > len(text) {
		return "", ""
	}
	if end < 0 || end > len(text) {
		return "", ""
	}
	if start > end {
		return "", ""
	}

	return string(text[extractBefore(text, start, lines):start]),
		string(text[end:extractAfter(text, end, lines)])
}

// extractBefore walks backward from start over lines extra line breaks and
// returns the offset where the context begins.
func extractBefore(text []rune, start, lines int) int {
	ls, _ := types.LineBounds(text, start)
	for i := 0; i < lines && ls > 0; i++ {
		ls, _ = types.LineBounds(text, ls-1)
	}
	return ls
}

// extractAfter walks forward from end over lines extra line breaks and
// returns the offset where the context stops.
func extractAfter(text []rune, end, lines int) int {
	_, le := types.LineBounds(text, end)
	// the empty line after a trailing newline is not context
	for i := 0; i < lines && le+1 < len(text); i++ {
		_, le = types.LineBounds(text, le+1)
	}
	return le
}
