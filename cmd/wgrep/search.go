package main

import (
	"fmt"
	"time"

	"github.com/praetorian-inc/wgrep"
	"github.com/praetorian-inc/wgrep/pkg/config"
	"github.com/praetorian-inc/wgrep/pkg/logger"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	ignoreCase   bool
	wholeWords   bool
	first        bool
	count        bool
	contextLines int
	format       string
	color        string
	maxFileSize  int64
	configPath   string
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [flags] PATTERN FILE",
		Short: "Search a file for a literal string",
		Long: `Search FILE for PATTERN and print every matching line with the match highlighted.

PATTERN is matched literally. FILE may be UTF-8 (with or without BOM) or UTF-16 with a BOM.`,
		Example: `  wgrep search -i 'hello world' main.c
  wgrep search -iw cat pets.txt --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Ignore case distinctions (Unicode-aware)")
	cmd.Flags().BoolVarP(&opts.wholeWords, "word-regexp", "w", false, "Match only whole words")
	cmd.Flags().BoolVar(&opts.first, "first", false, "Stop at the first match")
	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "Print only the number of matches")
	cmd.Flags().IntVarP(&opts.contextLines, "context", "C", 0, "Lines of context before/after each matching line")
	cmd.Flags().StringVar(&opts.format, "format", "human", "Output format: human, json, sarif")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color output: auto, always, never")
	cmd.Flags().Int64Var(&opts.maxFileSize, "max-file-size", 0, "Maximum file size to search in bytes (0 for no limit)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/wgrep/config.yaml)")

	return cmd
}

func runSearch(cmd *cobra.Command, root *rootOptions, opts *searchOptions, args []string) error {
	log := logger.WithComponent("search")

	file, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	opts.applyConfig(cmd, file)

	if err := opts.validate(); err != nil {
		return err
	}

	cfg := &wgrep.Config{
		IgnoreCase:      opts.ignoreCase,
		MatchWholeWords: opts.wholeWords,
		Pattern:         args[0],
		FilePath:        args[1],
	}
	log.Debug("searching", "pattern", cfg.Pattern, "path", cfg.FilePath,
		"ignore_case", cfg.IgnoreCase, "match_whole_words", cfg.MatchWholeWords)

	start := time.Now()
	searcher := wgrep.NewSearcher(opts.searcherOptions(root.quiet)...)
	result, err := searcher.Search(cmd.Context(), cfg)
	if err != nil {
		log.Debug("search failed", "kind", wgrep.Classify(err), "error", err)
		return err
	}
	log.Debug("search complete",
		"outcome", result.Outcome,
		"matches", len(result.Matches),
		"lines", result.LinesMatched,
		"encoding", result.Encoding,
		"elapsed", time.Since(start))

	if !root.quiet {
		if err := writeResult(cmd, opts, cfg, result); err != nil {
			return err
		}
	}

	if !result.Found() {
		return errNoMatch
	}
	return nil
}

// applyConfig fills every option whose flag was not given explicitly from
// the config file.
func (o *searchOptions) applyConfig(cmd *cobra.Command, f *config.File) {
	flags := cmd.Flags()
	if f.IgnoreCase != nil && !flags.Changed("ignore-case") {
		o.ignoreCase = *f.IgnoreCase
	}
	if f.MatchWholeWords != nil && !flags.Changed("word-regexp") {
		o.wholeWords = *f.MatchWholeWords
	}
	if f.ContextLines != nil && !flags.Changed("context") {
		o.contextLines = *f.ContextLines
	}
	if f.Color != nil && !flags.Changed("color") {
		o.color = *f.Color
	}
	if f.Format != nil && !flags.Changed("format") {
		o.format = *f.Format
	}
	if f.MaxFileSize != nil && !flags.Changed("max-file-size") {
		o.maxFileSize = *f.MaxFileSize
	}
}

func (o *searchOptions) validate() error {
	switch o.format {
	case "human", "json", "sarif":
	default:
		return fmt.Errorf("%w: unknown output format: %s", wgrep.ErrConfiguration, o.format)
	}
	switch o.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: unknown color mode: %s", wgrep.ErrConfiguration, o.color)
	}
	if o.contextLines < 0 {
		return fmt.Errorf("%w: context must be >= 0", wgrep.ErrConfiguration)
	}
	if o.maxFileSize < 0 {
		return fmt.Errorf("%w: max-file-size must be >= 0", wgrep.ErrConfiguration)
	}
	return nil
}

func (o *searchOptions) searcherOptions(quiet bool) []wgrep.Option {
	opts := []wgrep.Option{
		wgrep.WithContextLines(o.contextLines),
		wgrep.WithMaxFileSize(o.maxFileSize),
	}
	// exit status alone only needs the first match
	if !o.first && !(quiet && !o.count) {
		opts = append(opts, wgrep.WithAllMatches())
	}
	return opts
}
