// Package errors provides coded errors for the pants tooling.
//
// Every failure outside the puzzle core carries a [Code] so the CLI and
// tests can tell a malformed state from a missing file without matching
// message text. Illegal moves are not errors at all: the move operations in
// package pants report them through a boolean.
//
// Codes follow a small naming scheme: INVALID_* for rejected input,
// *_NOT_FOUND for missing resources, LIMIT_EXCEEDED for bounds over a cap
// and INTERNAL_ERROR for failures that indicate a bug or a broken
// dependency.
//
//	err := errors.New(errors.ErrCodeInvalidState, "pointer %d out of range", p)
//	err = errors.Wrap(errors.ErrCodeFileNotFound, cause, "puzzle file %s", path)
//	if errors.Is(err, errors.ErrCodeFileNotFound) {
//	    // ...
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"  // bad flag or argument combination
	ErrCodeInvalidState  Code = "INVALID_STATE"  // state text or values that do not form a state
	ErrCodeInvalidMove   Code = "INVALID_MOVE"   // unknown move name, or an illegal move requested by name
	ErrCodeInvalidFormat Code = "INVALID_FORMAT" // unknown output format or undecodable file
	ErrCodeInvalidPath   Code = "INVALID_PATH"   // unusable file name or unreadable path
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeLimitExceeded Code = "LIMIT_EXCEEDED"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Error is an error with a [Code] and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is like [New] but keeps cause reachable through errors.Unwrap.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or the
// empty code when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
