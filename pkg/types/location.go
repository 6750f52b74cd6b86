package types

// OffsetSpan is a code point range [Start, End) - half-open interval.
type OffsetSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of code points covered by the span.
func (s OffsetSpan) Len() int {
	return s.End - s.Start
}

// ByteSpan is the same range expressed in bytes of the UTF-8 text.
type ByteSpan struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// SourcePoint is line:column position (1-based, columns count code points).
type SourcePoint struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceSpan is start-end line:column range.
type SourceSpan struct {
	Start SourcePoint `json:"start"`
	End   SourcePoint `json:"end"`
}

// Location combines code point offsets, byte offsets and source positions.
type Location struct {
	Offset OffsetSpan `json:"offset"`
	Bytes  ByteSpan   `json:"bytes"`
	Source SourceSpan `json:"source"`
}
