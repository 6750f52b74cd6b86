package matcher

import (
	"unicode/utf8"

	"github.com/praetorian-inc/wgrep/pkg/types"
)

// Options selects the comparison rules for one pattern.
type Options struct {
	IgnoreCase      bool   // compare through Unicode case folding
	MatchWholeWords bool   // require non-word neighbours on both sides
	Pattern         string // literal to find, never empty
}

// Validate rejects options that cannot describe a search.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return types.NewConfigurationError("pattern must not be empty")
	}
	if !utf8.ValidString(o.Pattern) {
		return types.NewConfigurationError("pattern is not valid UTF-8")
	}
	return nil
}
