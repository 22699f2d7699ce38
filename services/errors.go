package services

import "errors"

// Sentinel kinds the controllers translate into HTTP status codes.
var (
	ErrValidation   = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

type svcError struct {
	kind error
	msg  string
}

func (e *svcError) Error() string { return e.msg }
func (e *svcError) Unwrap() error { return e.kind }

// fail attaches a human-readable message to one of the sentinel kinds.
func fail(kind error, msg string) error {
	return &svcError{kind: kind, msg: msg}
}
