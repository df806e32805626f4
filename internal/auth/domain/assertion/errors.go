package assertion

import "errors"

var (
	ErrResultRequired           = errors.New("provider result must not be nil")
	ErrProviderEmpty            = errors.New("provider must be specified")
	ErrMissingSubjectIdentifier = errors.New("provider result carries no subject identifier")
)
