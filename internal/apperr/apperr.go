// Package apperr holds the error kinds shared by every domain package. Domain sentinels
// wrap one of these so the transport layer can classify failures with errors.Is.
package apperr

import "errors"

var (
	// ErrValidation marks a missing or malformed input. Nothing was mutated.
	ErrValidation = errors.New("validation failed")

	ErrNotFound = errors.New("not found")

	// ErrConfirmationRequired is returned by destructive operations called without an
	// explicit confirmation.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrConflict covers stale versions and rejected state transitions.
	ErrConflict = errors.New("conflict")
)

// Kind returns the shared kind err belongs to, or nil for unclassified errors.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConfirmationRequired, ErrConflict} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
