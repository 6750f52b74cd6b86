package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/praetorian-inc/wgrep/pkg/logger"
	"github.com/praetorian-inc/wgrep/pkg/scanner"
	"github.com/praetorian-inc/wgrep/pkg/serve"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	ignoreCase   bool
	wholeWords   bool
	first        bool
	contextLines int
	maxFileSize  int64
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve [flags] PATTERN",
		Short: "Run as a streaming NDJSON search server",
		Long: `Run wgrep as a long-lived server that searches for PATTERN in content sent
via stdin and writes results to stdout, one JSON document per line.

Request types: scan (inline content), scan_file (a path), scan_batch and close.
The process answers until stdin closes, a close request arrives or SIGTERM is received.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Ignore case distinctions (Unicode-aware)")
	cmd.Flags().BoolVarP(&opts.wholeWords, "word-regexp", "w", false, "Match only whole words")
	cmd.Flags().BoolVar(&opts.first, "first", false, "Report only the first match of each input")
	cmd.Flags().IntVarP(&opts.contextLines, "context", "C", 0, "Lines of context before/after each match")
	cmd.Flags().Int64Var(&opts.maxFileSize, "max-file-size", 0, "Maximum file size for scan_file in bytes (0 for no limit)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions, pattern string) error {
	log := logger.WithComponent("serve")

	core, err := scanner.New(scanner.Options{
		IgnoreCase:      opts.ignoreCase,
		MatchWholeWords: opts.wholeWords,
		Pattern:         pattern,
		AllMatches:      !opts.first,
		ContextLines:    opts.contextLines,
		MaxFileSize:     opts.maxFileSize,
	}, nil)
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			log.Debug("shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Debug("serving", "pattern", pattern)
	srv := serve.NewServer(core, pattern, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
