package catalogfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog files.
var (
	// ErrInvalidFile indicates a file that could not be decoded or whose
	// records do not form a valid catalog.
	ErrInvalidFile = errors.New("catalogfile: invalid catalog file")

	// ErrUnsupportedFormat indicates an extension other than .yaml, .yml or .json.
	ErrUnsupportedFormat = errors.New("catalogfile: unsupported file format")
)

// OpError records a failed file operation together with the path involved.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}
