package chooser

import "errors"

var (
	// ErrListingFailed means the directory could not be read. Callers get an empty listing.
	ErrListingFailed = errors.New("listing failed")

	// ErrPermissionDenied means storage access is missing. The UI should prompt and retry.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidTransition is a usage error, e.g. entering a file.
	ErrInvalidTransition = errors.New("invalid transition")

	ErrInvalidConfig = errors.New("invalid config")

	ErrSessionClosed = errors.New("session closed")
)
