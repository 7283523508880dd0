package chess

import (
	"errors"
	"fmt"
)

// Move validation outcomes. ValidateMove and PlayMove return exactly one of the first
// three, or nil.
var (
	ErrInvalidOrientation = errors.New("orientation must be 'H' or 'V'")
	ErrOutOfBounds        = errors.New("edge is out of bounds")
	ErrAlreadyClaimed     = errors.New("edge already claimed")
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrUnknownColor      = errors.New("unknown color")
	ErrUnknownKind       = errors.New("unknown player kind")
	ErrMalformedSave     = errors.New("malformed save")
	ErrNoLegalMove       = errors.New("no legal move left")
)

// ParseError reports the first bad line of a save. It matches ErrMalformedSave with errors.Is.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: line %d %q: %v", ErrMalformedSave, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedSave
}
