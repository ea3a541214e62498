package plug

import (
	"errors"
	"fmt"
)

// ErrorKind represents the type of error raised by a plug chain.
type ErrorKind uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ErrorKind = iota

	// ErrProtocolViolation indicates that a context invariant was broken:
	// an action set twice, a payload put twice, or taken while empty.
	ErrProtocolViolation

	// ErrConfiguration indicates that the chain wiring is inconsistent,
	// like a dispatcher with no matching sub-command and no default.
	ErrConfiguration

	// ErrMissingParameter indicates that a required flag or one of its
	// following values is absent or malformed.
	ErrMissingParameter

	// ErrFileNotFound indicates that a file parameter names a path
	// that does not exist.
	ErrFileNotFound
)

func (e ErrorKind) String() string {
	errs := [...]string{
		"unknown",            // ErrUnknown
		"protocol violation", // ErrProtocolViolation
		"configuration",      // ErrConfiguration
		"missing parameter",  // ErrMissingParameter
		"file not found",     // ErrFileNotFound
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

// Error makes the kind usable as a sentinel with errors.Is.
func (e ErrorKind) Error() string {
	return e.String()
}

// Error represents an error raised by a plug. It carries both a Kind,
// which callers can test with errors.Is, and a human message.
type Error struct {
	// The type of error
	Kind ErrorKind

	// The error message
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error returns the error's message.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target is the kind of this error.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)

	return ok && kind == e.Kind
}

// IsKind reports whether err is (or wraps) a plug error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var perr *Error
	if !errors.As(err, &perr) {
		return false
	}

	return perr.Kind == kind
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

func newErrorf(kind ErrorKind, format string, args ...any) *Error {
	return newError(kind, fmt.Sprintf(format, args...))
}

func wrapErrorf(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
