package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/praetorian-inc/wgrep"
	"github.com/praetorian-inc/wgrep/pkg/sarif"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// styles holds color formatters for human output
type styles struct {
	lineNumber *color.Color
	separator  *color.Color
	match      *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		lineNumber: color.New(color.FgGreen),
		separator:  color.New(color.FgCyan),
		match:      color.New(color.FgRed),
	}

	for _, c := range []*color.Color{s.lineNumber, s.separator, s.match} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// colorEnabled resolves --color. auto means stdout is a terminal and NO_COLOR
// is unset.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

func writeResult(cmd *cobra.Command, opts *searchOptions, cfg *wgrep.Config, result *wgrep.Result) error {
	out := cmd.OutOrStdout()

	switch opts.format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "sarif":
		return writeSARIF(out, cfg, result)
	default:
		s := newStyles(colorEnabled(opts.color))
		if !opts.count {
			writeLines(out, s, result.Matches, opts.contextLines > 0)
		}
		_, err := fmt.Fprintf(out, "Matches found: %d\n", len(result.Matches))
		return err
	}
}

func writeSARIF(out io.Writer, cfg *wgrep.Config, result *wgrep.Result) error {
	report := sarif.NewReport(version)
	report.SetRule(cfg.Pattern, cfg.IgnoreCase, cfg.MatchWholeWords)
	for _, m := range result.Matches {
		report.AddResult(m)
	}

	jsonBytes, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("serializing SARIF: %w", err)
	}
	if _, err := out.Write(append(jsonBytes, '\n')); err != nil {
		return fmt.Errorf("writing SARIF output: %w", err)
	}
	return nil
}

// lineGroup is a run of consecutive file lines covering one or more matches
// and their context.
type lineGroup struct {
	firstLine int      // 1-based line number of text[0]
	offset    int      // code point offset of text[0] in the file
	text      []rune   // whole lines, without the final newline
	spans     [][2]int // match ranges relative to text
}

func (g *lineGroup) end() int {
	return g.offset + len(g.text)
}

// groupMatches folds matches (in offset order) into groups. A match whose
// snippet overlaps or directly follows the current group extends it.
func groupMatches(matches []*wgrep.Match) []*lineGroup {
	var groups []*lineGroup
	var cur *lineGroup

	for _, m := range matches {
		snippet := []rune(m.Snippet.Before + m.Snippet.Matching + m.Snippet.After)
		start := m.Location.Offset.Start - utf8.RuneCountInString(m.Snippet.Before)

		if cur == nil || start > cur.end()+1 {
			cur = &lineGroup{
				firstLine: m.Location.Source.Start.Line - strings.Count(m.Snippet.Before, "\n"),
				offset:    start,
				text:      snippet,
			}
			groups = append(groups, cur)
		} else if start+len(snippet) > cur.end() {
			if start > cur.end() {
				cur.text = append(cur.text, '\n')
			}
			cur.text = append(cur.text, snippet[cur.end()-start:]...)
		}

		cur.spans = append(cur.spans, [2]int{
			m.Location.Offset.Start - cur.offset,
			min(m.Location.Offset.End-cur.offset, len(cur.text)+1),
		})
	}
	return groups
}

func writeLines(out io.Writer, s *styles, matches []*wgrep.Match, separate bool) {
	for i, g := range groupMatches(matches) {
		if separate && i > 0 {
			fmt.Fprintln(out, s.separator.Sprint("--"))
		}

		lineNo := g.firstLine
		lineStart := 0
		for j := 0; j <= len(g.text); j++ {
			if j < len(g.text) && g.text[j] != '\n' {
				continue
			}
			fmt.Fprintln(out, renderLine(s, g, lineStart, j, lineNo))
			lineNo++
			lineStart = j + 1
		}
	}
}

// renderLine formats g.text[start:end] as LINE:TEXT (or LINE-TEXT for a
// context line) with matched code points highlighted.
func renderLine(s *styles, g *lineGroup, start, end, lineNo int) string {
	marked := make([]bool, end-start)
	matched := false
	for _, span := range g.spans {
		// a span counts for the line when it touches the line or its newline
		if span[0] > end || span[1] <= start {
			continue
		}
		matched = true
		for k := max(span[0], start); k < min(span[1], end); k++ {
			marked[k-start] = true
		}
	}

	sep := "-"
	if matched {
		sep = ":"
	}

	var b strings.Builder
	b.WriteString(s.lineNumber.Sprint(strconv.Itoa(lineNo)))
	b.WriteString(s.separator.Sprint(sep))

	line := g.text[start:end]
	for k := 0; k < len(line); {
		n := k
		for n < len(line) && marked[n] == marked[k] {
			n++
		}
		chunk := string(line[k:n])
		if marked[k] {
			chunk = s.match.Sprint(chunk)
		}
		b.WriteString(chunk)
		k = n
	}
	return b.String()
}
