package spn

import "errors"

var (
	// ErrInvalidInput marks an empty SPN, or a Present desired state with
	// no account. Surfaced before any directory call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTargetAccountNotFound marks a desired account that does not
	// resolve to a directory object. Surfaced before any mutation.
	ErrTargetAccountNotFound = errors.New("target account not found")

	// ErrDirectoryUnavailable marks a query or mutation channel fault.
	// Not retried at this layer.
	ErrDirectoryUnavailable = errors.New("directory unavailable")
)
