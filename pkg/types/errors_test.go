package types

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchError_Is(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"configuration", NewConfigurationError("pattern must not be empty"), ErrConfiguration},
		{"io", NewIOError("missing.txt", fs.ErrNotExist), ErrIO},
		{"decoding", NewDecodingError("bad.txt", 3, errors.New("invalid UTF-8")), ErrDecoding},
	}

	kinds := []error{ErrConfiguration, ErrIO, ErrDecoding}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("searching: %w", tt.err)
			for _, k := range kinds {
				assert.Equal(t, k == tt.kind, errors.Is(wrapped, k), "kind %v", k)
			}
		})
	}
}

func TestSearchError_UnwrapsCause(t *testing.T) {
	err := NewIOError("missing.txt", fs.ErrNotExist)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var se *SearchError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &se))
	assert.Equal(t, "missing.txt", se.Path)
}

func TestSearchError_Error(t *testing.T) {
	assert.Equal(t,
		"configuration error: pattern must not be empty",
		NewConfigurationError("pattern must not be empty").Error())
	assert.Equal(t,
		"io error: missing.txt: file does not exist",
		NewIOError("missing.txt", fs.ErrNotExist).Error())
	assert.Equal(t,
		"decoding error: bad.txt at byte 3: invalid UTF-8",
		NewDecodingError("bad.txt", 3, errors.New("invalid UTF-8")).Error())
}
