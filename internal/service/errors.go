package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrNothingToMatch is returned when the food or recipient set is
	// empty; the matching endpoint reports this as a client error rather
	// than an empty result.
	ErrNothingToMatch = errors.New("no foods or recipients available")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
