package booleval

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrArgLimit
	ErrBit
	ErrToken
	ErrNumber
	ErrTrailing
	ErrUndefinedVar
	ErrArity
	ErrUndefinedFunc
)

// Error is a diagnostic pointing at the source region that caused it. Every
// stage of the pipeline stops at the first one.
type Error struct {
	Kind    ErrorKind
	Message string
	Span    Span
}

func Errorf(kind ErrorKind, span Span, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	}
}

func (e *Error) Error() string {
	return e.Message
}

// AsError extracts the positioned diagnostic from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}
