package domain

import "errors"

// Failure kinds shared by every service. Handlers translate them to HTTP
// statuses: NotFoundError -> 404, InvalidReferenceError and ConflictError -> 400,
// anything else -> 500.

// NotFoundError means the primary target of an operation does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NewNotFound(msg string) error { return &NotFoundError{Msg: msg} }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// InvalidReferenceError means a foreign-key-shaped input does not resolve to
// an existing row. Distinct from NotFoundError: it is about a related entity,
// not the operation's primary target.
type InvalidReferenceError struct {
	Msg string
}

func (e *InvalidReferenceError) Error() string { return e.Msg }

func NewInvalidReference(msg string) error { return &InvalidReferenceError{Msg: msg} }

func IsInvalidReference(err error) bool {
	var ir *InvalidReferenceError
	return errors.As(err, &ir)
}

// ConflictError means a uniqueness invariant would be violated.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func NewConflict(msg string) error { return &ConflictError{Msg: msg} }

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
