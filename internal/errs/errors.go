// Package errs provides the error type shared by the feather-cli packages.
//
// Every package wraps its native errors into *errs.Error before returning
// them. The CLI maps the kind to the line printed on stderr:
//
//	if errs.IsFileNotFound(err) {
//	    fmt.Fprintf(stderr, "Error: File '%s' not found\n", path)
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrKind categorises an error.
type ErrKind int

const (
	ErrKindUnknown      ErrKind = iota
	ErrKindFileNotFound         // path or object does not exist
	ErrKindReadError            // exists but cannot be read or decoded
	ErrKindUsage                // bad flags or arguments
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFileNotFound:
		return "file_not_found"
	case ErrKindReadError:
		return "read_error"
	case ErrKindUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// Error carries a kind, a message, and the underlying cause.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error with the given kind and message and no cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf is New with a format string.
func Newf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error with the given kind, message, and cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsFileNotFound reports whether err is a missing file or object.
func IsFileNotFound(err error) bool {
	return KindOf(err) == ErrKindFileNotFound
}

// IsReadError reports whether err is a read or decode failure.
func IsReadError(err error) bool {
	return KindOf(err) == ErrKindReadError
}

// IsUsage reports whether err was caused by bad command-line input.
func IsUsage(err error) bool {
	return KindOf(err) == ErrKindUsage
}

// KindOf returns the kind of the first *Error in err's chain, or
// ErrKindUnknown.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
