// Package matcher decides where a literal pattern occurs in decoded text,
// optionally ignoring case and requiring whole-word boundaries.
package matcher

import (
	"github.com/praetorian-inc/wgrep/pkg/prefilter"
	"github.com/praetorian-inc/wgrep/pkg/source"
)

// Span is a code point range [Start, End) of an accepted match.
type Span struct {
	Start int
	End   int
}

// Matcher scans text for one pattern. It is immutable after New and safe for
// concurrent use.
type Matcher struct {
	opts    Options
	pattern []rune
	folded  []rune // fold() of pattern, only set with IgnoreCase
	pf      *prefilter.Prefilter
}

// New validates opts and prepares the pattern.
func New(opts Options) (*Matcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m := &Matcher{
		opts:    opts,
		pattern: []rune(opts.Pattern),
	}
	if opts.IgnoreCase {
		m.folded = foldRunes(m.pattern)
	} else {
		// byte-exact comparison only holds without case folding
		m.pf = prefilter.New(opts.Pattern)
	}
	return m, nil
}

// First returns the leftmost accepted match.
func (m *Matcher) First(text *source.Text) (Span, bool) {
	var first Span
	found := false
	m.scan(text, func(s Span) bool {
		first = s
		found = true
		return false
	})
	return first, found
}

// Contains reports whether the pattern occurs at least once.
func (m *Matcher) Contains(text *source.Text) bool {
	_, found := m.First(text)
	return found
}

// All returns every accepted match in offset order. Each starting offset is
// considered independently, so overlapping matches are all reported.
func (m *Matcher) All(text *source.Text) []Span {
	var spans []Span
	m.scan(text, func(s Span) bool {
		spans = append(spans, s)
		return true
	})
	return spans
}

// scan calls yield for each accepted match until yield returns false.
func (m *Matcher) scan(text *source.Text, yield func(Span) bool) {
	if !m.pf.MayContain(text.Bytes) {
		return
	}

	runes := text.Runes
	n := len(m.pattern)
	for i := 0; i+n <= len(runes); i++ {
		if !m.matchAt(runes, i) {
			continue
		}
		if !yield(Span{Start: i, End: i + n}) {
			return
		}
	}
}

// matchAt tests the candidate text[i:i+len(pattern)].
func (m *Matcher) matchAt(text []rune, i int) bool {
	for j, p := range m.pattern {
		r := text[i+j]
		if r == p {
			continue
		}
		if m.folded == nil || fold(r) != m.folded[j] {
			return false
		}
	}

	if m.opts.MatchWholeWords {
		// boundaries are judged on the original text; folding never changes
		// whether a code point is a word character
		return isBoundary(text, i-1) && isBoundary(text, i+len(m.pattern))
	}
	return true
}
