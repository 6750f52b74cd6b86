package matcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praetorian-inc/wgrep/pkg/source"
	"github.com/praetorian-inc/wgrep/pkg/types"
)

func mustNew(t *testing.T, opts Options) *Matcher {
	t.Helper()
	m, err := New(opts)
	require.NoError(t, err)
	return m
}

func TestNew_RejectsInvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty pattern", ""},
		{"invalid utf-8", "ca\xfft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(Options{Pattern: tt.pattern, IgnoreCase: true})
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, types.ErrConfiguration))
		})
	}
}

func TestMatcher_First(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		opts      Options
		wantFound bool
		wantStart int
	}{
		{
			name:      "verbatim occurrence",
			text:      "hello world",
			opts:      Options{Pattern: "world"},
			wantFound: true,
			wantStart: 6,
		},
		{
			name:      "absent pattern",
			text:      "hello world",
			opts:      Options{Pattern: "xyz"},
			wantFound: false,
		},
		{
			name:      "case differs without ignore case",
			text:      "Hello World",
			opts:      Options{Pattern: "world"},
			wantFound: false,
		},
		{
			name:      "case differs with ignore case",
			text:      "Hello World",
			opts:      Options{Pattern: "wORLD", IgnoreCase: true},
			wantFound: true,
			wantStart: 6,
		},
		{
			name:      "substring accepted without whole words",
			text:      "category",
			opts:      Options{Pattern: "cat"},
			wantFound: true,
			wantStart: 0,
		},
		{
			name:      "inside word rejected with whole words",
			text:      "category",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: false,
		},
		{
			name:      "whole word in sentence",
			text:      "the cat sat",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: true,
			wantStart: 4,
		},
		{
			name:      "whole word at start of text",
			text:      "cat sat",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: true,
			wantStart: 0,
		},
		{
			name:      "whole word at end of text",
			text:      "the cat",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: true,
			wantStart: 4,
		},
		{
			name:      "whole word equals entire text",
			text:      "cat",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: true,
			wantStart: 0,
		},
		{
			name:      "first rejected candidate does not hide later match",
			text:      "concatenate cat",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: true,
			wantStart: 12,
		},
		{
			name:      "underscore is a word character",
			text:      "my_cat cat_food",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: false,
		},
		{
			name:      "digit is a word character",
			text:      "cat9 9cat",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: false,
		},
		{
			name:      "punctuation is a boundary",
			text:      "(cat), [cat]",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: true,
			wantStart: 1,
		},
		{
			name:      "non-ascii letter is a word character",
			text:      "écat caté",
			opts:      Options{Pattern: "cat", MatchWholeWords: true},
			wantFound: false,
		},
		{
			name:      "neighbours checked even when pattern edge is punctuation",
			text:      "x(cat)",
			opts:      Options{Pattern: "(cat)", MatchWholeWords: true},
			wantFound: false,
		},
		{
			name:      "pattern longer than text",
			text:      "cat",
			opts:      Options{Pattern: "catalogue"},
			wantFound: false,
		},
		{
			name:      "empty text",
			text:      "",
			opts:      Options{Pattern: "cat", IgnoreCase: true},
			wantFound: false,
		},
		{
			name:      "match across a newline",
			text:      "end\nstart",
			opts:      Options{Pattern: "d\ns"},
			wantFound: true,
			wantStart: 2,
		},
		{
			name:      "offsets count code points",
			text:      "żółw i kot",
			opts:      Options{Pattern: "kot"},
			wantFound: true,
			wantStart: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustNew(t, tt.opts)
			span, found := m.First(source.FromString(tt.text))
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantStart, span.Start)
				assert.Equal(t, tt.wantStart+len([]rune(tt.opts.Pattern)), span.End)
			}
		})
	}
}

func TestMatcher_CatScenario(t *testing.T) {
	text := source.FromString("The Cat sat on the mat")

	m := mustNew(t, Options{Pattern: "cat", IgnoreCase: true, MatchWholeWords: true})
	span, found := m.First(text)
	require.True(t, found)
	assert.Equal(t, Span{Start: 4, End: 7}, span)

	m = mustNew(t, Options{Pattern: "cat", IgnoreCase: false, MatchWholeWords: true})
	_, found = m.First(text)
	assert.False(t, found)
}

func TestMatcher_IgnoreCaseUnicode(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
	}{
		{"latin accents", "ZAŻÓŁĆ GĘŚLĄ JAŹŃ", "gęślą"},
		{"greek final sigma", "ΟΔΟΣ", "οδος"},
		{"greek sigma variants", "οδος", "ΟΔΟς"},
		{"cyrillic", "Привет, МИР", "мир"},
		{"kelvin sign", "300\u212a", "300k"},
		{"long s", "ſun", "SUN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := source.FromString(tt.text)

			m := mustNew(t, Options{Pattern: tt.pattern, IgnoreCase: true})
			assert.True(t, m.Contains(text), "ignore case should match")

			m = mustNew(t, Options{Pattern: tt.pattern})
			assert.False(t, m.Contains(text), "exact comparison should not match")
		})
	}
}

func TestMatcher_IgnoreCaseAnyVariant(t *testing.T) {
	text := source.FromString("a Mixed CaSe word")
	for _, variant := range []string{"mixed case", "MIXED CASE", "MiXeD cAsE", "Mixed CaSe"} {
		m := mustNew(t, Options{Pattern: variant, IgnoreCase: true, MatchWholeWords: true})
		span, found := m.First(text)
		require.True(t, found, variant)
		assert.Equal(t, 2, span.Start, variant)
	}
}

func TestMatcher_AllReportsOverlaps(t *testing.T) {
	m := mustNew(t, Options{Pattern: "aa"})
	spans := m.All(source.FromString("aaaa"))
	assert.Equal(t, []Span{{0, 2}, {1, 3}, {2, 4}}, spans)
}

func TestMatcher_AllWholeWords(t *testing.T) {
	m := mustNew(t, Options{Pattern: "cat", IgnoreCase: true, MatchWholeWords: true})
	spans := m.All(source.FromString("Cat category cat.\nCAT_x CAT"))
	assert.Equal(t, []Span{{0, 3}, {13, 16}, {24, 27}}, spans)
}

func TestMatcher_AllNoMatches(t *testing.T) {
	m := mustNew(t, Options{Pattern: "xyz"})
	assert.Empty(t, m.All(source.FromString("hello world")))
}

func TestMatcher_Idempotent(t *testing.T) {
	text := source.FromString(strings.Repeat("the dog and the cat ", 50))
	m := mustNew(t, Options{Pattern: "CAT", IgnoreCase: true, MatchWholeWords: true})

	first, found1 := m.First(text)
	second, found2 := m.First(text)
	assert.Equal(t, found1, found2)
	assert.Equal(t, first, second)
	assert.Equal(t, m.All(text), m.All(text))
}

func TestMatcher_DoesNotMutateText(t *testing.T) {
	text := source.FromString("The Cat sat")
	before := append([]rune(nil), text.Runes...)

	m := mustNew(t, Options{Pattern: "cat", IgnoreCase: true})
	m.All(text)

	assert.Equal(t, before, text.Runes)
}
