package models

import "errors"

var (
	// ErrValidation marks input that fails range or presence checks.
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks an insert for a session token that already owns a record.
	ErrConflict = errors.New("already recorded")
	// ErrNotFound covers both a missing id and an ownership mismatch, so a
	// caller cannot probe which ids exist.
	ErrNotFound = errors.New("not found")
)
