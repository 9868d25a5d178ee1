package domain

import "errors"

var (
	// ErrValidation is wrapped by every input validation failure.
	// Callers use errors.Is to tell a rejected input apart from an infrastructure error.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned by repositories when the requested state has never been stored
	ErrNotFound = errors.New("not found")
)
