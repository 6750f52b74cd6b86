// Package source loads a file and decodes it into the code point sequence
// the matcher scans.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/praetorian-inc/wgrep/pkg/types"
)

// Encoding names reported in Text.Encoding.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-bom"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Config controls how files are loaded.
type Config struct {
	// MaxFileSize is the maximum file size to read (0 = no limit).
	MaxFileSize int64
}

// Text is the decoded content of one file. It is read-only once built.
type Text struct {
	Path      string
	Encoding  string
	ContentID types.ContentID // hash of the decoded UTF-8 content
	Runes     []rune
	Bytes     []byte // UTF-8 form of Runes

	offsets []int // byte offset of each rune in Bytes, plus len(Bytes)
	lines   types.LineIndex
}

// Load reads path and decodes it. Failures are *types.SearchError values of
// kind types.ErrIO or types.ErrDecoding.
func Load(path string, cfg Config) (*Text, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, types.NewIOError(path, err)
	}
	if info.IsDir() {
		return nil, types.NewIOError(path, errors.New("is a directory"))
	}
	if cfg.MaxFileSize > 0 && info.Size() > cfg.MaxFileSize {
		return nil, types.NewIOError(path, fmt.Errorf("file size %d exceeds limit %d", info.Size(), cfg.MaxFileSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewIOError(path, err)
	}

	text, err := Decode(data)
	if err != nil {
		var se *types.SearchError
		if errors.As(err, &se) {
			se.Path = path
		}
		return nil, err
	}
	text.Path = path
	return text, nil
}

// Decode turns raw file bytes into a Text. A UTF-8 BOM is stripped, a UTF-16
// BOM selects UTF-16 decoding, anything else must be valid UTF-8.
func Decode(data []byte) (*Text, error) {
	var (
		utf8Data []byte
		enc      string
		err      error
	)

	switch {
	case bytes.HasPrefix(data, bomUTF8):
		enc = EncodingUTF8BOM
		utf8Data = data[len(bomUTF8):]
		if off := invalidUTF8Offset(utf8Data); off >= 0 {
			return nil, types.NewDecodingError("", int64(off+len(bomUTF8)), errors.New("invalid UTF-8 sequence"))
		}
	case bytes.HasPrefix(data, bomUTF16LE):
		enc = EncodingUTF16LE
		utf8Data, err = decodeUTF16(data, unicode.LittleEndian)
	case bytes.HasPrefix(data, bomUTF16BE):
		enc = EncodingUTF16BE
		utf8Data, err = decodeUTF16(data, unicode.BigEndian)
	default:
		enc = EncodingUTF8
		utf8Data = data
		if off := invalidUTF8Offset(utf8Data); off >= 0 {
			return nil, types.NewDecodingError("", int64(off), errors.New("invalid UTF-8 sequence"))
		}
	}
	if err != nil {
		return nil, err
	}

	t := &Text{
		Encoding:  enc,
		ContentID: types.ComputeContentID(utf8Data),
		Bytes:     utf8Data,
	}
	t.index()
	return t, nil
}

// FromString builds a Text from an in-memory string, mainly for tests and
// library callers that already hold decoded content. Invalid UTF-8 in s is
// replaced with U+FFFD so Bytes and Runes always agree.
func FromString(s string) *Text {
	b := []byte(string([]rune(s)))
	t := &Text{
		Encoding:  EncodingUTF8,
		ContentID: types.ComputeContentID(b),
		Bytes:     b,
	}
	t.index()
	return t
}

func (t *Text) index() {
	n := utf8.RuneCount(t.Bytes)
	t.Runes = make([]rune, 0, n)
	t.offsets = make([]int, 0, n+1)
	for i := 0; i < len(t.Bytes); {
		r, size := utf8.DecodeRune(t.Bytes[i:])
		t.Runes = append(t.Runes, r)
		t.offsets = append(t.offsets, i)
		i += size
	}
	t.offsets = append(t.offsets, len(t.Bytes))
	t.lines = types.NewLineIndex(t.Runes)
}

// Len returns the number of code points.
func (t *Text) Len() int {
	return len(t.Runes)
}

// ByteOffset converts a code point offset (0..Len) to a byte offset in Bytes.
func (t *Text) ByteOffset(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(t.offsets) {
		return len(t.Bytes)
	}
	return t.offsets[i]
}

// Position returns the 1-based line:column of a code point offset.
func (t *Text) Position(i int) types.SourcePoint {
	return t.lines.Position(i)
}

// Lines returns the number of lines in the text.
func (t *Text) Lines() int {
	return t.lines.Lines()
}

// Slice returns the text of the code point range [start, end).
func (t *Text) Slice(start, end int) string {
	return string(t.Bytes[t.ByteOffset(start):t.ByteOffset(end)])
}

// Locate builds the full Location of a code point span.
func (t *Text) Locate(start, end int) types.Location {
	return types.Location{
		Offset: types.OffsetSpan{Start: start, End: end},
		Bytes:  types.ByteSpan{Start: int64(t.ByteOffset(start)), End: int64(t.ByteOffset(end))},
		Source: types.SourceSpan{Start: t.Position(start), End: t.Position(end)},
	}
}

// invalidUTF8Offset returns the byte offset of the first invalid sequence, or -1.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// decodeUTF16 converts BOM-prefixed UTF-16 into UTF-8. The x/text decoder
// replaces broken surrogates with U+FFFD, so pairing is checked first.
func decodeUTF16(data []byte, endianness unicode.Endianness) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, types.NewDecodingError("", int64(len(data)-1), errors.New("truncated UTF-16 code unit"))
	}
	if off := unpairedSurrogateOffset(data, endianness); off >= 0 {
		return nil, types.NewDecodingError("", int64(off), errors.New("unpaired UTF-16 surrogate"))
	}

	dec := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, types.NewDecodingError("", -1, err)
	}
	return out, nil
}

func unpairedSurrogateOffset(data []byte, endianness unicode.Endianness) int {
	unit := func(i int) rune {
		if endianness == unicode.LittleEndian {
			return rune(data[i]) | rune(data[i+1])<<8
		}
		return rune(data[i])<<8 | rune(data[i+1])
	}

	// skip the BOM
	for i := 2; i+1 < len(data); i += 2 {
		u := unit(i)
		if !utf16.IsSurrogate(u) {
			continue
		}
		if u >= 0xDC00 {
			return i // low surrogate without a high one
		}
		if i+3 >= len(data) {
			return i
		}
		if next := unit(i + 2); next < 0xDC00 || next > 0xDFFF {
			return i
		}
		i += 2
	}
	return -1
}
