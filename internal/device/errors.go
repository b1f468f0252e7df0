package device

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLTK indicates a device entry had no LTK value.
	ErrMissingLTK = errors.New("device: missing LTK")
	// ErrMissingAddress indicates an extended entry had no Address value.
	ErrMissingAddress = errors.New("device: missing Address")
	// ErrBadAdapter indicates the adapter key name was not an address.
	ErrBadAdapter = errors.New("device: adapter key is not an address")
)

// AssembleError reports a device that was skipped during assembly.
type AssembleError struct {
	Path   string // Registry key path the device came from
	Device string // Best known identity: decoded address or raw key name
	Err    error
}

func (e *AssembleError) Error() string {
	return fmt.Sprintf("device %s (%s): %v", e.Device, e.Path, e.Err)
}

func (e *AssembleError) Unwrap() error { return e.Err }
