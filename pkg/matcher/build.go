package matcher

import (
	"github.com/praetorian-inc/wgrep/pkg/source"
	"github.com/praetorian-inc/wgrep/pkg/types"
)

// BuildMatch turns an accepted span into a reportable types.Match with
// location, matched text and contextLines lines of context on each side.
func (m *Matcher) BuildMatch(text *source.Text, span Span, contextLines int) *types.Match {
	before, after := ExtractContext(text.Runes, span.Start, span.End, contextLines)

	result := &types.Match{
		Path:      text.Path,
		ContentID: text.ContentID,
		Location:  text.Locate(span.Start, span.End),
		Snippet: types.Snippet{
			Before:   before,
			Matching: text.Slice(span.Start, span.End),
			After:    after,
		},
	}
	result.ID = result.ComputeID(m.opts.Pattern)

	return result
}
