package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrPrefix indicates a value did not start with the expected type prefix.
	ErrPrefix = errors.New("codec: unexpected value prefix")
	// ErrLength indicates a payload decoded to the wrong number of bytes.
	ErrLength = errors.New("codec: wrong payload length")
	// ErrHexDigit indicates a byte in a hex payload was not two hex digits.
	ErrHexDigit = errors.New("codec: malformed hex byte")
	// ErrDecimal indicates a dword payload was not a decimal uint32.
	ErrDecimal = errors.New("codec: malformed decimal dword")
)

// FieldError records which raw value failed to decode and why.
type FieldError struct {
	Field string // Registry value name, empty when unknown
	Value string // Raw registry text
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v: %q", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// WithField attaches a value name to a decode error. Non-FieldError values
// are returned unchanged.
func WithField(err error, field string) error {
	var fe *FieldError
	if errors.As(err, &fe) && fe.Field == "" {
		return &FieldError{Field: field, Value: fe.Value, Err: fe.Err}
	}
	return err
}

func fieldErr(value string, err error) error {
	return &FieldError{Value: value, Err: err}
}
