// Package scanner holds one validated search configuration and applies it to
// many inputs. It backs the serve command and the WebAssembly build.
package scanner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/praetorian-inc/wgrep"
	"github.com/praetorian-inc/wgrep/pkg/matcher"
)

// Core holds one validated search configuration.
type Core struct {
	config   wgrep.Config
	searcher *wgrep.Searcher
	logger   DebugLogger
}

// NewCore creates a Core from an Options JSON document.
func NewCore(optionsJSON string, logger DebugLogger) (*Core, error) {
	if logger == nil {
		logger = NoopLogger{}
	}

	var opts Options
	if err := json.Unmarshal([]byte(optionsJSON), &opts); err != nil {
		logger.Log("JSON unmarshal failed: %v", err)
		return nil, fmt.Errorf("%w: parsing options: %v", wgrep.ErrConfiguration, err)
	}
	return New(opts, logger)
}

// New creates a Core from opts. The pattern is validated here so that Scan
// only fails on content.
func New(opts Options, logger DebugLogger) (*Core, error) {
	if logger == nil {
		logger = NoopLogger{}
	}

	if _, err := matcher.New(matcher.Options{
		IgnoreCase:      opts.IgnoreCase,
		MatchWholeWords: opts.MatchWholeWords,
		Pattern:         opts.Pattern,
	}); err != nil {
		logger.Log("matcher.New failed: %v", err)
		return nil, err
	}
	if opts.ContextLines < 0 {
		return nil, fmt.Errorf("%w: context_lines must be >= 0", wgrep.ErrConfiguration)
	}

	if opts.MaxFileSize < 0 {
		return nil, fmt.Errorf("%w: max_file_size must be >= 0", wgrep.ErrConfiguration)
	}

	searcherOpts := []wgrep.Option{
		wgrep.WithContextLines(opts.ContextLines),
		wgrep.WithMaxFileSize(opts.MaxFileSize),
	}
	if opts.AllMatches {
		searcherOpts = append(searcherOpts, wgrep.WithAllMatches())
	}

	logger.Log("Core ready for %q", opts.Pattern)
	return &Core{
		config: wgrep.Config{
			IgnoreCase:      opts.IgnoreCase,
			MatchWholeWords: opts.MatchWholeWords,
			Pattern:         opts.Pattern,
		},
		searcher: wgrep.NewSearcher(searcherOpts...),
		logger:   logger,
	}, nil
}

// Scan scans a single content string
func (c *Core) Scan(content, source string) (*ScanResult, error) {
	cfg := c.config
	cfg.FilePath = source

	result, err := c.searcher.SearchString(&cfg, content)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		Source:  source,
		Outcome: result.Outcome,
		Matches: result.Matches,
	}, nil
}

// ScanFile reads and scans the file at path.
func (c *Core) ScanFile(ctx context.Context, path string) (*ScanResult, error) {
	cfg := c.config
	cfg.FilePath = path

	result, err := c.searcher.Search(ctx, &cfg)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		Source:  path,
		Outcome: result.Outcome,
		Matches: result.Matches,
	}, nil
}

// ScanBatch scans multiple content items one after another
func (c *Core) ScanBatch(items []ContentItem) (*BatchScanResult, error) {
	batch := &BatchScanResult{Results: make([]ScanResult, 0, len(items))}

	for _, item := range items {
		result, err := c.Scan(item.Content, item.Source)
		if err != nil {
			c.logger.Log("scan of %s failed: %v", item.Source, err)
			return nil, fmt.Errorf("scanning %s: %w", item.Source, err)
		}

		batch.Results = append(batch.Results, *result)
		if result.Outcome == wgrep.Found {
			batch.Found++
		}
		batch.Total += len(result.Matches)
	}

	return batch, nil
}
