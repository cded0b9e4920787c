package catalog

import "errors"

var (
	// ErrNoteNotFound is returned when the requested note does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrUserNotFound is returned when no user with the given username exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrMissingField is returned when a note is created with an empty required field.
	ErrMissingField = errors.New("missing required field")

	// ErrDatabaseError is returned when a database operation fails.
	ErrDatabaseError = errors.New("database error")
)
