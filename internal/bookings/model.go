package bookings

import "strings"

// StatusConfirmed is the only status the core ever writes. The ledger is
// append-only; rows are never mutated or deleted.
const StatusConfirmed = "Confirmed"

// Booking is a ledger row joined with the referenced doctor's name and
// specialty for presentation.
type Booking struct {
	ID         int64  `json:"id"`
	DoctorID   int64  `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

// BookRequest is the boundary payload for creating a booking.
type BookRequest struct {
	DoctorID int64  `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// Validate checks the booking payload before it reaches the store.
func (r *BookRequest) Validate() error {
	if r.DoctorID <= 0 {
		return ErrMissingDoctor
	}
	if strings.TrimSpace(r.Date) == "" {
		return ErrMissingDate
	}
	if strings.TrimSpace(r.Time) == "" {
		return ErrMissingTime
	}
	return nil
}
