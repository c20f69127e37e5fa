// Package apperr is the single error taxonomy of the API. Handlers return
// *Error values (or plain errors) and the response layer turns them into a
// status code with Status.
package apperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error carries the client-facing message separately from the underlying
// cause, which is only ever logged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }
func Invalid(msg string) error      { return &Error{Kind: KindInvalid, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Error{Kind: KindForbidden, Msg: msg} }

// Internal surfaces err verbatim to the caller.
func Internal(err error) error {
	return &Error{Kind: KindInternal, Msg: err.Error(), Err: err}
}

// Read classifies a failed lookup: a missing row becomes NotFound with msg,
// anything else is an internal failure.
func Read(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Msg: msg, Err: err}
	}
	return Internal(err)
}

// Create classifies a failed insert. Every cause is reported as a bad request,
// prefixed with prefix when given.
func Create(prefix string, err error) error {
	return &Error{Kind: KindInvalid, Msg: prefix + err.Error(), Err: err}
}

// Write classifies a failed update or delete. Whatever the cause, the client
// sees NotFound with msg.
func Write(msg string, err error) error {
	return &Error{Kind: KindNotFound, Msg: msg, Err: err}
}

// Status maps any error to its HTTP status code.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalid:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text placed in the "error" field of the response body.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
