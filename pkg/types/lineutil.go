package types

import "sort"

// LineIndex records the code point offset at which every line starts.
// Lines and columns it reports are 1-indexed; columns count code points.
type LineIndex []int

// NewLineIndex scans text once and records line starts.
func NewLineIndex(text []rune) LineIndex {
	idx := LineIndex{0}
	for i, r := range text {
		if r == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// Lines returns the number of lines. A trailing newline opens an empty last line.
func (idx LineIndex) Lines() int {
	return len(idx)
}

// Position converts a code point offset into a line:column pair.
// Offsets past the end are clamped to the last line.
func (idx LineIndex) Position(offset int) SourcePoint {
	if offset < 0 {
		offset = 0
	}
	// first line start strictly greater than offset, minus one
	line := sort.SearchInts(idx, offset+1) - 1
	if line < 0 {
		line = 0
	}
	return SourcePoint{Line: line + 1, Column: offset - idx[line] + 1}
}

// LineBounds returns the code point range [start, end) of the line holding
// offset. The terminating newline is not part of the range.
func LineBounds(text []rune, offset int) (start, end int) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	start = offset
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	end = offset
	for end < len(text) && text[end] != '\n' {
		end++
	}
	return start, end
}
