package serve

import (
	"encoding/json"

	"github.com/praetorian-inc/wgrep/pkg/scanner"
)

// Request types
const (
	RequestScan      = "scan"
	RequestScanFile  = "scan_file"
	RequestScanBatch = "scan_batch"
	RequestClose     = "close"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "scan" | "scan_file" | "scan_batch" | "close"
	Payload json.RawMessage `json:"payload"`
}

// ScanPayload is the payload for "scan" requests
type ScanPayload struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// ScanFilePayload is the payload for "scan_file" requests
type ScanFilePayload struct {
	Path string `json:"path"`
}

// ScanBatchPayload is the payload for "scan_batch" requests
type ScanBatchPayload struct {
	Items []scanner.ContentItem `json:"items"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" or the request type
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Kind    string          `json:"kind,omitempty"` // "configuration" | "io" | "decoding"
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
	Pattern string `json:"pattern"`
}
