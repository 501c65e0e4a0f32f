package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so a login failure never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when registering a taken username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrTaskNotFound is returned when a task does not exist or is owned by
	// another account; the two cases are deliberately indistinguishable.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError reports malformed or missing input. The message is stable
// and safe to surface to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
