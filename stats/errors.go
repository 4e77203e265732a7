package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("stats: value does not round-trip")
	// ErrZeroStep is returned by Arange for a zero step.
	ErrZeroStep = errors.New("stats: arange step must be nonzero")
)

// ParseError reports text that could not be read back as the requested kind.
type ParseError struct {
	Text string
	Kind string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stats: cannot parse %q as %s: %v", e.Text, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
