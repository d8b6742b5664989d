package flightdata

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every *ParseError.
var ErrMalformed = errors.New("flightdata: malformed input")

// ParseError reports a malformed line.
type ParseError struct {
	// Line is the 1-based line number; the count header is line 1.
	Line int

	// Msg describes the problem.
	Msg string

	// Err is the underlying cause, if any (e.g. a strconv error).
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flightdata: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}

	return fmt.Sprintf("flightdata: line %d: %s", e.Line, e.Msg)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrMalformed.
func (e *ParseError) Is(target error) bool { return target == ErrMalformed }
