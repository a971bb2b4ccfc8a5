package doctors

import "errors"

var (
	// ErrDoctorNotFound is returned when a doctor id does not resolve
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInvalidDoctor is returned when a roster row is missing required fields
	ErrInvalidDoctor = errors.New("doctor name is required")

	// ErrInvalidRating is returned when a rating falls outside [0,5]
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrInvalidReviews is returned when a review count is negative
	ErrInvalidReviews = errors.New("reviews count must not be negative")
)
