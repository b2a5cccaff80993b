package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when a signup collides with an
	// existing users.email unique constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a login lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")
)
