package services

import "errors"

// Sentinel errors surfaced to handlers. Handlers map these to HTTP codes
// with errors.Is.
var (
	// ErrNotFound is returned when the requested record does not exist
	// or is not visible to the caller.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is returned when the caller does not own the record
	// it is trying to modify.
	ErrForbidden = errors.New("not allowed")

	// ErrSlugConflict is returned when a concurrent write beat the slug
	// uniqueness pre-check. The whole creation is retryable.
	ErrSlugConflict = errors.New("slug conflict, retry the operation")

	// ErrSlugSpaceExhausted is returned when the disambiguation suffix
	// cap is reached for a base slug.
	ErrSlugSpaceExhausted = errors.New("slug space exhausted")

	// ErrSelfFollow is returned when a user tries to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")
)
