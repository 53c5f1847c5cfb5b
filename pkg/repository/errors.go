package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a create collides with an existing key.
	// Account-number uniqueness is a caller precondition; this surfaces
	// violations rather than deduplicating.
	ErrDuplicate = errors.New("record already exists")
)
