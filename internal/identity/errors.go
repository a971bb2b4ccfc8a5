package identity

import "errors"

var (
	// ErrMissingEmail is returned when the email is absent
	ErrMissingEmail = errors.New("email is required")

	// ErrInvalidEmail is returned when the email does not parse
	ErrInvalidEmail = errors.New("email is not a valid address")

	// ErrMissingName is returned when the display name is absent
	ErrMissingName = errors.New("name is required")

	// ErrInvalidRole is returned for any role outside {patient, owner}
	ErrInvalidRole = errors.New("role must be 'patient' or 'owner'")
)
