package entity

import "errors"

// Error kinds shared across the service. Usecases wrap these with
// fmt.Errorf("%w: ...") so handlers can match with errors.Is and callers
// still get a human-readable message.
var (
	// ErrValidation marks a missing or blank required identifier/field.
	// Always raised before any store access.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks an actor lacking rights for a mutation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidEdge marks a disallowed relationship edge, e.g. a user
	// subscribing to their own channel.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrDuplicateEdge is raised by the edge store when a unique
	// constraint rejects an insert. The toggle engine absorbs it; it never
	// crosses the usecase boundary.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrStoreUnavailable marks a failed or timed-out persistence call.
	ErrStoreUnavailable = errors.New("store unavailable")
)
