// Package errors carries coded errors from the damage engine out to the
// action layer, which turns codes into GM-facing notices.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

type Code string

const (
	CodeUnknown            Code = "unknown"
	CodeInvalidArgument    Code = "invalid_argument"
	CodeNotFound           Code = "not_found"
	CodeAlreadyExists      Code = "already_exists"
	CodeFailedPrecondition Code = "failed_precondition"
	// CodeNoTargets means nothing selected could take the hit
	CodeNoTargets Code = "no_targets"
	// CodeInternal covers host write failures and recovered panics
	CodeInternal Code = "internal"
)

// Error is a coded error. Meta holds the ids a log line needs, e.g.
// message_id or actor_id.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// WithMeta sets one metadata key and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A coded cause keeps its code and a copy of
// its metadata; anything else becomes CodeUnknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	out := &Error{Code: CodeUnknown, Message: message, Cause: err}
	if coded, ok := asError(err); ok {
		out.Code = coded.Code
		out.Meta = maps.Clone(coded.Meta)
	}
	return out
}

func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides whatever code it carried
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	out := Wrap(err, message)
	out.Code = code
	return out
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

func NoTargets(message string) *Error {
	return New(CodeNoTargets, message)
}

func asError(err error) (*Error, bool) {
	var coded *Error
	ok := errors.As(err, &coded)
	return coded, ok
}

// GetCode returns the outermost code in the chain, CodeUnknown if none
func GetCode(err error) Code {
	if coded, ok := asError(err); ok {
		return coded.Code
	}
	return CodeUnknown
}

func GetMeta(err error) map[string]any {
	if coded, ok := asError(err); ok {
		return coded.Meta
	}
	return nil
}

func Is(err error, code Code) bool {
	coded, ok := asError(err)
	return ok && coded.Code == code
}

func IsNotFound(err error) bool           { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool      { return Is(err, CodeAlreadyExists) }
func IsFailedPrecondition(err error) bool { return Is(err, CodeFailedPrecondition) }
func IsNoTargets(err error) bool          { return Is(err, CodeNoTargets) }
