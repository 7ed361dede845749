package services

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when an order is requested from a cart that has no
// lines. Ordering an empty cart is rejected, not turned into an empty order.
var ErrEmptyCart = errors.New("cart is empty")

// ErrInvalidCredentials is returned by Login on a bad username or password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidToken is returned when a token fails verification or its session
// has expired or been revoked.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrSessionNotFound is returned by a SessionStore when no session exists for
// the given token ID.
var ErrSessionNotFound = errors.New("session not found")

// ValidationError marks malformed input: a non-positive quantity, an unknown
// menu item, a negative price. No mutation has happened when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError marks an operation that targets a record that does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func notFoundErrorf(format string, args ...interface{}) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}
