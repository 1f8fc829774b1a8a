package services

import "errors"

// Typed failures reported to the HTTP layer. Handlers match these with
// errors.Is; anything else is an internal store failure.
var (
	// ErrNotFound means a referenced user, post, comment or notification is absent
	ErrNotFound = errors.New("not found")

	// ErrSelfFollow means a user tried to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrValidation means malformed input, e.g. an empty comment body
	ErrValidation = errors.New("invalid input")

	// ErrUnauthorized means the caller is not the resource's rightful actor
	ErrUnauthorized = errors.New("unauthorized")
)
