// Package wgrep searches a file for a literal string, optionally ignoring
// case and requiring whole-word matches.
//
// # Basic Usage
//
// Report whether a pattern occurs in a file:
//
//	result, err := wgrep.Search(&wgrep.Config{
//	    Pattern:         "cat",
//	    FilePath:        "pets.txt",
//	    IgnoreCase:      true,
//	    MatchWholeWords: true,
//	})
//	if err != nil {
//	    log.Fatal(err) // configuration, io or decoding error
//	}
//	fmt.Println(result.Outcome) // "found" or "not-found"
//
// # All Matches
//
// A Searcher built with WithAllMatches reports every accepted offset:
//
//	searcher := wgrep.NewSearcher(wgrep.WithAllMatches(), wgrep.WithContextLines(1))
//	result, err := searcher.Search(ctx, cfg)
//	for _, m := range result.Matches {
//	    fmt.Printf("%d:%d %s\n", m.Location.Source.Start.Line, m.Location.Source.Start.Column, m.Snippet.Matching)
//	}
package wgrep

import (
	"context"
	"errors"
	"fmt"

	"github.com/praetorian-inc/wgrep/pkg/matcher"
	"github.com/praetorian-inc/wgrep/pkg/source"
	"github.com/praetorian-inc/wgrep/pkg/types"
)

// Re-export commonly used types for convenience.
type (
	// Match is one accepted occurrence of the pattern.
	Match = types.Match

	// Location describes where a match was found.
	Location = types.Location

	// Snippet holds the matched text with surrounding context.
	Snippet = types.Snippet

	// Outcome is found, not-found or error.
	Outcome = types.Outcome

	// SearchError carries the kind and cause of a failed search.
	SearchError = types.SearchError
)

// Re-export outcome constants and error kinds.
const (
	Found    = types.OutcomeFound
	NotFound = types.OutcomeNotFound
	Failed   = types.OutcomeError
)

var (
	ErrConfiguration = types.ErrConfiguration
	ErrIO            = types.ErrIO
	ErrDecoding      = types.ErrDecoding
)

// Config is the input record of one search. Treat it as immutable once built.
type Config struct {
	IgnoreCase      bool   `json:"ignore_case"`
	MatchWholeWords bool   `json:"match_whole_words"`
	Pattern         string `json:"search_string"`
	FilePath        string `json:"file_name"`
}

func (c *Config) matcherOptions() matcher.Options {
	return matcher.Options{
		IgnoreCase:      c.IgnoreCase,
		MatchWholeWords: c.MatchWholeWords,
		Pattern:         c.Pattern,
	}
}

// Result is the outcome of one search.
type Result struct {
	Outcome      Outcome         `json:"outcome"`
	Path         string          `json:"path"`
	ContentID    types.ContentID `json:"content_id"`
	Encoding     string          `json:"encoding,omitempty"`
	Matches      []*Match        `json:"matches"`
	LinesMatched int             `json:"lines_matched"`
}

// Found reports whether the outcome is Found.
func (r *Result) Found() bool {
	return r != nil && r.Outcome == Found
}

// Searcher runs searches with fixed reporting options.
type Searcher struct {
	config *searcherConfig
}

type searcherConfig struct {
	allMatches   bool
	contextLines int
	maxFileSize  int64
}

// Option configures a Searcher.
type Option func(*searcherConfig)

// WithAllMatches reports every accepted match instead of stopping at the first.
func WithAllMatches() Option {
	return func(c *searcherConfig) {
		c.allMatches = true
	}
}

// WithContextLines sets how many whole lines of context surround each match.
// The remainder of the match's own line is always included.
func WithContextLines(lines int) Option {
	return func(c *searcherConfig) {
		c.contextLines = lines
	}
}

// WithMaxFileSize refuses files larger than n bytes with an io error (0 = no limit).
func WithMaxFileSize(n int64) Option {
	return func(c *searcherConfig) {
		c.maxFileSize = n
	}
}

// NewSearcher creates a Searcher. By default it stops at the first match,
// adds no extra context lines and reads files of any size.
func NewSearcher(opts ...Option) *Searcher {
	config := &searcherConfig{}
	for _, opt := range opts {
		opt(config)
	}
	return &Searcher{config: config}
}

// Search runs a first-match search with default options.
func Search(cfg *Config) (*Result, error) {
	return NewSearcher().Search(context.Background(), cfg)
}

// Search validates cfg, reads cfg.FilePath and scans it. Errors are
// *SearchError values classified by ErrConfiguration, ErrIO and ErrDecoding;
// the returned Result then has Outcome Failed. NotFound is not an error.
func (s *Searcher) Search(ctx context.Context, cfg *Config) (*Result, error) {
	if cfg == nil {
		return failed(""), types.NewConfigurationError("config must not be nil")
	}
	if cfg.FilePath == "" {
		return failed(""), types.NewConfigurationError("file path must not be empty")
	}

	m, err := matcher.New(cfg.matcherOptions())
	if err != nil {
		return failed(cfg.FilePath), err
	}

	if err := ctx.Err(); err != nil {
		return failed(cfg.FilePath), fmt.Errorf("search cancelled: %w", err)
	}

	text, err := source.Load(cfg.FilePath, source.Config{MaxFileSize: s.config.maxFileSize})
	if err != nil {
		return failed(cfg.FilePath), err
	}

	return s.scan(m, text), nil
}

// SearchString scans in-memory content. cfg.FilePath is only used to label
// the matches and may be empty. content goes through the same decoding as a
// file, so invalid UTF-8 is an ErrDecoding failure.
func (s *Searcher) SearchString(cfg *Config, content string) (*Result, error) {
	if cfg == nil {
		return failed(""), types.NewConfigurationError("config must not be nil")
	}

	m, err := matcher.New(cfg.matcherOptions())
	if err != nil {
		return failed(cfg.FilePath), err
	}

	text, err := source.Decode([]byte(content))
	if err != nil {
		var se *types.SearchError
		if errors.As(err, &se) {
			se.Path = cfg.FilePath
		}
		return failed(cfg.FilePath), err
	}
	text.Path = cfg.FilePath
	return s.scan(m, text), nil
}

func (s *Searcher) scan(m *matcher.Matcher, text *source.Text) *Result {
	var spans []matcher.Span
	if s.config.allMatches {
		spans = m.All(text)
	} else if span, ok := m.First(text); ok {
		spans = []matcher.Span{span}
	}

	result := &Result{
		Outcome:   types.OutcomeOf(len(spans) > 0),
		Path:      text.Path,
		ContentID: text.ContentID,
		Encoding:  text.Encoding,
		Matches:   make([]*Match, 0, len(spans)),
	}

	lastLine := 0
	for _, span := range spans {
		match := m.BuildMatch(text, span, s.config.contextLines)
		if line := match.Location.Source.Start.Line; line != lastLine {
			result.LinesMatched++
			lastLine = line
		}
		result.Matches = append(result.Matches, match)
	}

	return result
}

func failed(path string) *Result {
	return &Result{Outcome: Failed, Path: path}
}

// Classify maps a search error to its kind: ErrConfiguration, ErrIO,
// ErrDecoding, or nil if err is nil or of no known kind.
func Classify(err error) error {
	for _, kind := range []error{ErrConfiguration, ErrIO, ErrDecoding} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
