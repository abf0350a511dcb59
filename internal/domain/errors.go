package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord means a data line has fewer than two tokens or an
	// amount that is neither a non-negative integer nor the "-" marker.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidDate means a date token does not match the configured layout.
	ErrInvalidDate = errors.New("invalid date")
)

// ParseError reports the input line that aborted a load.
type ParseError struct {
	Line int    // 1-based line number in the input, counting the city line
	Text string // raw line contents
	Err  error  // ErrMalformedRecord or ErrInvalidDate, possibly wrapping the cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
