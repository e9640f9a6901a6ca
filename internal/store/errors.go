package store

import (
	"errors" // Error matching

	"gorm.io/gorm" // GORM ORM library
)

// ValidationError reports missing or invalid input
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports that a referenced record does not exist
type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

// AuthorizationError reports an operation that is never allowed
type AuthorizationError struct{ Msg string }

func (e *AuthorizationError) Error() string { return e.Msg }

// notFound maps gorm.ErrRecordNotFound to a NotFoundError carrying msg
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Msg: msg} // Missing row
	}
	return err // Other database error
}
