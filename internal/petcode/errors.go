package petcode

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned when a Mintmark with no populated variant is read.
var ErrUnknownVariant = errors.New("petcode: unknown mintmark variant")

// Decode formats reported by DecodeError.
const (
	FormatGzip     = "gzip"
	FormatProtobuf = "protobuf"
	FormatBase64   = "base64"
	FormatMapping  = "mapping"
	FormatEffect   = "effect"
)

// DecodeError reports input that could not be decoded into the model.
type DecodeError struct {
	// Format is the representation that failed, one of the Format* constants.
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("petcode: decoding %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NewDecodeError wraps err as a DecodeError for the given format.
//
// Postcondition: Returns nil when err is nil.
func NewDecodeError(format string, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Format: format, Err: err}
}

// IsDecodeError reports whether err is or wraps a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
