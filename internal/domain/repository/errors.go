package repository

import "errors"

var (
	// ErrNotFound is returned when a query matches no record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write violates a uniqueness
	// constraint, e.g. the users email index or one-review-per-user.
	ErrDuplicate = errors.New("duplicate record")
)
