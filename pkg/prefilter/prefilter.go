// Package prefilter rejects content that cannot contain a literal before the
// matcher runs its code point scan.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"
)

// Prefilter uses Aho-Corasick for a single byte-exact keyword.
type Prefilter struct {
	matcher *ahocorasick.Matcher
}

// New creates a prefilter for keyword. An empty keyword yields a prefilter
// that never rejects.
func New(keyword string) *Prefilter {
	pf := &Prefilter{}
	if keyword != "" {
		pf.matcher = ahocorasick.NewStringMatcher([]string{keyword})
	}
	return pf
}

// MayContain reports whether content might hold the keyword. False means the
// keyword is definitely absent.
func (pf *Prefilter) MayContain(content []byte) bool {
	if pf == nil || pf.matcher == nil {
		return true
	}
	return pf.matcher.Contains(content)
}
