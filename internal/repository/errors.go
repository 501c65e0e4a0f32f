package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist, or is not
	// visible to the requesting owner.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername is returned when an insert violates the username
	// uniqueness constraint.
	ErrDuplicateUsername = errors.New("username already taken")
)
