package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDay       = errors.New("unrecognized day")
	ErrInvalidParity    = errors.New("week type must be 'upper' or 'lower'")
	ErrParityRequired   = errors.New("weekdays need a week type (upper/lower)")
	ErrParityNotAllowed = errors.New("weekend days do not take a week type")
	ErrInvalidDate      = errors.New("date must look like YYYY-MM-DD")
	ErrInvalidUserID    = errors.New("invalid user id")

	ErrNotAdmin      = errors.New("only administrators can do that")
	ErrSelfRemoval   = errors.New("you cannot remove yourself")
	ErrAdminNotFound = errors.New("user is not an administrator")
	ErrGroupNotFound = errors.New("group not found")
)

// ValidationError rejects malformed command input
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
