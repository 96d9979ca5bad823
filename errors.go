package portrait

import (
	"errors"
	"io/fs"
)

// Errors
var (
	ErrMissingInput = errors.New("portrait: input not found")
	ErrInvalidSize  = errors.New("portrait: output size must be positive")
)

// DecodeError is returned when a source image can not be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return "portrait: decode " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports a decode failure caused by a nonexistent file as [ErrMissingInput].
func (e *DecodeError) Is(target error) bool {
	return target == ErrMissingInput && errors.Is(e.Err, fs.ErrNotExist)
}

// EncodeError is returned when a rounded portrait can not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return "portrait: encode " + e.Path + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
