package types

import "testing"

func TestLineIndex_Position(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		offset     int
		wantLine   int
		wantColumn int
	}{
		{
			name:       "empty text at offset 0",
			text:       "",
			offset:     0,
			wantLine:   1,
			wantColumn: 1,
		},
		{
			name:       "single line at offset 2",
			text:       "hello",
			offset:     2,
			wantLine:   1,
			wantColumn: 3,
		},
		{
			name:       "multi-line at offset 7",
			text:       "hello\nworld",
			offset:     7,
			wantLine:   2,
			wantColumn: 2,
		},
		{
			name:       "offset at newline",
			text:       "hello\nworld",
			offset:     5,
			wantLine:   1,
			wantColumn: 6,
		},
		{
			name:       "offset at end of text",
			text:       "hello",
			offset:     5,
			wantLine:   1,
			wantColumn: 6,
		},
		{
			name:       "trailing newline opens empty line",
			text:       "hello\n",
			offset:     6,
			wantLine:   2,
			wantColumn: 1,
		},
		{
			name:       "columns count code points",
			text:       "żółw cat",
			offset:     5,
			wantLine:   1,
			wantColumn: 6,
		},
		{
			name:       "multiple newlines",
			text:       "line1\nline2\nline3",
			offset:     12,
			wantLine:   3,
			wantColumn: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLineIndex([]rune(tt.text)).Position(tt.offset)
			if got.Line != tt.wantLine {
				t.Errorf("Position() line = %v, want %v", got.Line, tt.wantLine)
			}
			if got.Column != tt.wantColumn {
				t.Errorf("Position() column = %v, want %v", got.Column, tt.wantColumn)
			}
		})
	}
}

func TestLineBounds(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		offset    int
		wantStart int
		wantEnd   int
	}{
		{"first line", "abc\ndef", 1, 0, 3},
		{"second line", "abc\ndef", 5, 4, 7},
		{"offset on newline", "abc\ndef", 3, 0, 3},
		{"empty line", "abc\n\ndef", 4, 4, 4},
		{"offset past end", "abc", 10, 0, 3},
		{"empty text", "", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := LineBounds([]rune(tt.text), tt.offset)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("LineBounds() = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestLineIndex_Lines(t *testing.T) {
	if got := NewLineIndex([]rune("")).Lines(); got != 1 {
		t.Errorf("Lines() = %d, want 1", got)
	}
	if got := NewLineIndex([]rune("a\nb\nc")).Lines(); got != 3 {
		t.Errorf("Lines() = %d, want 3", got)
	}
}
