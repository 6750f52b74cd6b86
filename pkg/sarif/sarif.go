package sarif

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/praetorian-inc/wgrep/pkg/types"
)

// SARIF 2.1.0 constants
const (
	SchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	Version   = "2.1.0"
	ToolName  = "wgrep"

	// RuleID identifies the single literal-search rule every result refers to.
	RuleID = "wgrep.literal"

	// columns are counted in code points, see types.SourcePoint
	columnKind = "unicodeCodePoints"
)

// Report is the top-level SARIF report structure
type Report struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single invocation of the tool
type Run struct {
	Tool       Tool     `json:"tool"`
	ColumnKind string   `json:"columnKind"`
	Results    []Result `json:"results"`
}

// Tool describes the analysis tool
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver contains tool metadata
type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Rules   []Rule `json:"rules,omitempty"`
}

// Rule describes the search that produced the results
type Rule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ShortDescription ShortDescription `json:"shortDescription"`
	Properties       RuleProperties   `json:"properties"`
}

// ShortDescription contains rule description text
type ShortDescription struct {
	Text string `json:"text"`
}

// RuleProperties records the search options
type RuleProperties struct {
	Pattern         string `json:"pattern"`
	IgnoreCase      bool   `json:"ignoreCase"`
	MatchWholeWords bool   `json:"matchWholeWords"`
}

// Result represents a single match
type Result struct {
	RuleID              string            `json:"ruleId"`
	Level               string            `json:"level"`
	Message             Message           `json:"message"`
	Locations           []Location        `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints,omitempty"`
}

// Message contains the result message
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation specifies file location
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation identifies the file
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region specifies the line/column range
type Region struct {
	StartLine   int      `json:"startLine"`
	StartColumn int      `json:"startColumn"`
	EndLine     int      `json:"endLine"`
	EndColumn   int      `json:"endColumn"`
	CharOffset  int      `json:"charOffset"`
	CharLength  int      `json:"charLength"`
	Snippet     *Snippet `json:"snippet,omitempty"`
}

// Snippet contains the matched text
type Snippet struct {
	Text string `json:"text"`
}

// NewReport creates a new SARIF report with initialized structure
func NewReport(toolVersion string) *Report {
	return &Report{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    ToolName,
						Version: toolVersion,
						Rules:   []Rule{},
					},
				},
				ColumnKind: columnKind,
				Results:    []Result{},
			},
		},
	}
}

// SetRule records the searched pattern and options as the report's rule
func (r *Report) SetRule(pattern string, ignoreCase, matchWholeWords bool) {
	var flags []string
	if ignoreCase {
		flags = append(flags, "ignoring case")
	}
	if matchWholeWords {
		flags = append(flags, "whole words only")
	}

	desc := fmt.Sprintf("Literal search for %q", pattern)
	if len(flags) > 0 {
		desc += " (" + strings.Join(flags, ", ") + ")"
	}

	r.Runs[0].Tool.Driver.Rules = []Rule{{
		ID:               RuleID,
		Name:             "LiteralSearch",
		ShortDescription: ShortDescription{Text: desc},
		Properties: RuleProperties{
			Pattern:         pattern,
			IgnoreCase:      ignoreCase,
			MatchWholeWords: matchWholeWords,
		},
	}}
}

// AddResult adds a match to the report
func (r *Report) AddResult(match *types.Match) {
	region := Region{
		StartLine:   match.Location.Source.Start.Line,
		StartColumn: match.Location.Source.Start.Column,
		EndLine:     match.Location.Source.End.Line,
		EndColumn:   match.Location.Source.End.Column,
		CharOffset:  match.Location.Offset.Start,
		CharLength:  match.Location.Offset.Len(),
	}

	if match.Snippet.Matching != "" {
		region.Snippet = &Snippet{Text: match.Snippet.Matching}
	}

	result := Result{
		RuleID: RuleID,
		Level:  "note",
		Message: Message{
			Text: fmt.Sprintf("Found %q", match.Snippet.Matching),
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI: formatFileURI(match.Path),
					},
					Region: region,
				},
			},
		},
	}
	if match.ID != "" {
		result.PartialFingerprints = map[string]string{"matchId/v1": match.ID}
	}

	r.Runs[0].Results = append(r.Runs[0].Results, result)
}

// ToJSON serializes the report to JSON bytes
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// formatFileURI converts a file path to SARIF URI format
// Absolute paths get file:// prefix, relative paths stay as-is
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
