package store

import "errors"

// Common store errors.
var (
	// ErrNotFound is returned when a feature identifier does not resolve.
	ErrNotFound = errors.New("feature not found")

	// ErrDuplicateID is returned when the same identifier is re-inserted
	// with conflicting content.
	ErrDuplicateID = errors.New("duplicate feature identifier")
)
