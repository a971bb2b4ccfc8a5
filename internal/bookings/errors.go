package bookings

import "errors"

var (
	// ErrUnknownDoctor is returned when a booking cites a nonexistent doctor
	ErrUnknownDoctor = errors.New("doctor does not exist")

	// ErrMissingDoctor is returned when the payload carries no doctor id
	ErrMissingDoctor = errors.New("doctor_id is required")

	// ErrMissingDate is returned when the booking date is absent
	ErrMissingDate = errors.New("date is required")

	// ErrMissingTime is returned when the booking time is absent
	ErrMissingTime = errors.New("time is required")
)
