package content

import "errors"

var (
	// ErrNotFound is returned by a Source when no document exists for the
	// requested language.
	ErrNotFound = errors.New("content: document not found")

	// ErrInvalid is returned when a document fails validation.
	ErrInvalid = errors.New("content: invalid document")

	// ErrUnavailable is returned by the Store when both the requested
	// language and the fallback language fail to load.
	ErrUnavailable = errors.New("content: unavailable")
)
