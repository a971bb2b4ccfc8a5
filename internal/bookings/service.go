package bookings

import (
	"context"

	"github.com/healthmate/platform/internal/doctors"
	"github.com/healthmate/platform/internal/observability/metrics"
	"github.com/healthmate/platform/pkg/logging"
)

// Notifier is told about confirmed bookings after the row is committed.
// Implementations must be best-effort; failures never affect the booking.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b Booking)
}

// Service appends bookings to the ledger. Slot conflicts are out of scope:
// two bookings for the same doctor, date and time are both valid.
type Service struct {
	ledger   Repository
	roster   doctors.Repository
	notifier Notifier
	metrics  *metrics.BookingMetrics
	logger   *logging.Logger
}

// NewService constructs a bookings service.
func NewService(ledger Repository, roster doctors.Repository, logger *logging.Logger) *Service {
	if ledger == nil {
		panic("bookings: ledger repository required")
	}
	if roster == nil {
		panic("bookings: doctor roster required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{ledger: ledger, roster: roster, logger: logger}
}

// WithNotifier attaches a best-effort confirmation notifier.
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

// WithMetrics attaches booking counters.
func (s *Service) WithMetrics(m *metrics.BookingMetrics) *Service {
	s.metrics = m
	return s
}

// Book validates the request, checks that the doctor resolves, and appends a
// confirmed row. The existence check is explicit rather than relying on the
// store's foreign key; the repository still maps an FK violation to
// ErrUnknownDoctor to cover the check-then-insert race.
func (s *Service) Book(ctx context.Context, req *BookRequest) (*Booking, error) {
	if err := req.Validate(); err != nil {
		s.metrics.ObserveBooked("rejected")
		return nil, err
	}

	exists, err := s.roster.Exists(ctx, req.DoctorID)
	if err != nil {
		s.metrics.ObserveBooked("error")
		return nil, err
	}
	if !exists {
		s.metrics.ObserveBooked("unknown_doctor")
		return nil, ErrUnknownDoctor
	}

	booking, err := s.ledger.Insert(ctx, req)
	if err != nil {
		s.metrics.ObserveBooked("error")
		return nil, err
	}

	s.metrics.ObserveBooked("confirmed")
	s.logger.Info("booking confirmed",
		"booking_id", booking.ID,
		"doctor_id", booking.DoctorID,
		"date", booking.Date,
	)

	// The notification runs strictly after the insert committed and is
	// detached from the request's cancellation.
	if s.notifier != nil {
		s.notifier.BookingConfirmed(context.WithoutCancel(ctx), *booking)
	}
	return booking, nil
}

// List returns the ledger joined with doctor name/specialty in insertion order.
func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.ledger.List(ctx)
}
