package identity

import "errors"

var (
	ErrUserIDEmpty   = errors.New("user ID must be specified")
	ErrProviderEmpty = errors.New("provider must be specified")
	ErrSubjectEmpty  = errors.New("subject must be specified")
	ErrLinkNotFound  = errors.New("provisioning link not found")

	// ErrLinkConflict signals that a racing callback provisioned the same
	// external identity first. Callers resolve it by re-reading, never by
	// surfacing it.
	ErrLinkConflict = errors.New("provisioning link belongs to a different user")
)
