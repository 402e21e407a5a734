package service

import (
	"errors"
	"fmt"

	util "smart-hostel/pkg/utils"
)

// Error kinds. Compare with errors.Is; the HTTP layer maps each to a status code.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrAlreadyCompleted = errors.New("already completed")
	ErrExpired          = errors.New("expired")
	ErrTooEarly         = errors.New("too early")
)

// Error carries a kind together with the message shown to the caller.
type Error struct {
	Kind   error
	Msg    string
	Fields []*util.ErrorResponse
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Message returns the caller-facing message of err, or fallback when err is not a service error.
func Message(err error, fallback string) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Msg
	}
	return fallback
}
