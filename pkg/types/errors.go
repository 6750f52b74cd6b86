package types

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to classify an error returned by a search.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrIO            = errors.New("io error")
	ErrDecoding      = errors.New("decoding error")
)

// SearchError describes why a search could not produce Found or NotFound.
type SearchError struct {
	Kind   error  // one of ErrConfiguration, ErrIO, ErrDecoding
	Path   string // file the error relates to, if any
	Offset int64  // byte offset of the first undecodable byte, -1 if not applicable
	Err    error  // underlying cause, may be nil
}

func (e *SearchError) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at byte %d", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Is matches the error kind so that errors.Is(err, ErrIO) works through wrapping.
func (e *SearchError) Is(target error) bool {
	return target == e.Kind
}

// NewConfigurationError reports an invalid configuration.
func NewConfigurationError(format string, args ...any) *SearchError {
	return &SearchError{
		Kind:   ErrConfiguration,
		Offset: -1,
		Err:    fmt.Errorf(format, args...),
	}
}

// NewIOError reports a failure to read path.
func NewIOError(path string, err error) *SearchError {
	return &SearchError{
		Kind:   ErrIO,
		Path:   path,
		Offset: -1,
		Err:    err,
	}
}

// NewDecodingError reports that the bytes of path are not valid text at offset.
func NewDecodingError(path string, offset int64, err error) *SearchError {
	return &SearchError{
		Kind:   ErrDecoding,
		Path:   path,
		Offset: offset,
		Err:    err,
	}
}
