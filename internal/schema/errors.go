package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds. Every error returned by the generator matches exactly one
// of these with errors.Is.
var (
	ErrIO          = errors.New("io error")
	ErrDecode      = errors.New("decode error")
	ErrFormat      = errors.New("format error")
	ErrConsistency = errors.New("consistency error")
	ErrIndex       = errors.New("index error")
)

// Error carries the failure kind together with where it happened.
type Error struct {
	Kind  error
	Line  int    // 0 when the failure is not tied to a row
	Value string // offending input, if any
	Err   error
}

// NewError returns an Error of the given kind with a formatted cause.
func NewError(kind error, value string, format string, args ...any) *Error {
	return &Error{Kind: kind, Value: value, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " (%q)", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// AtLine sets the row number of err if it is an *Error without one.
func AtLine(err error, line int) error {
	var se *Error
	if errors.As(err, &se) && se.Line == 0 {
		se.Line = line
	}
	return err
}
