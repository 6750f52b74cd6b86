package scanner

import "github.com/praetorian-inc/wgrep"

// Options configures a Core. It is the JSON accepted by NewCore.
type Options struct {
	IgnoreCase      bool   `json:"ignore_case"`
	MatchWholeWords bool   `json:"match_whole_words"`
	Pattern         string `json:"search_string"`
	AllMatches      bool   `json:"all_matches"`
	ContextLines    int    `json:"context_lines"`
	MaxFileSize     int64  `json:"max_file_size"` // ScanFile only, 0 = no limit
}

// ContentItem represents a content item to scan
type ContentItem struct {
	Source   string            `json:"source"`   // e.g., "script:inline:1", "clipboard"
	Content  string            `json:"content"`  // the actual content to scan
	Metadata map[string]string `json:"metadata"` // optional metadata
}

// ScanResult represents scan results for a single item
type ScanResult struct {
	Source  string         `json:"source"`
	Outcome wgrep.Outcome  `json:"outcome"`
	Matches []*wgrep.Match `json:"matches"`
}

// BatchScanResult represents batch scan results
type BatchScanResult struct {
	Results []ScanResult `json:"results"`
	Found   int          `json:"found"` // items with at least one match
	Total   int          `json:"total"` // matches across all items
}

// DebugLogger provides platform-specific logging
type DebugLogger interface {
	Log(format string, args ...interface{})
}

// NoopLogger is a no-op logger
type NoopLogger struct{}

func (NoopLogger) Log(format string, args ...interface{}) {}
