package notify

import (
	"context"
	"fmt"

	"github.com/healthmate/platform/internal/bookings"
	"github.com/healthmate/platform/pkg/logging"
)

// BookingNotifier emails a confirmation for every booked appointment.
// Delivery is best-effort: the booking is already committed when this runs,
// so a failed send is logged and dropped.
type BookingNotifier struct {
	sender    EmailSender
	recipient string
	logger    *logging.Logger
}

// NewBookingNotifier wires an email sender to the booking flow. Returns nil
// when either the sender or the recipient is missing, which disables
// notifications without disabling bookings.
func NewBookingNotifier(sender EmailSender, recipient string, logger *logging.Logger) *BookingNotifier {
	if sender == nil || recipient == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingNotifier{sender: sender, recipient: recipient, logger: logger}
}

// BookingConfirmed implements bookings.Notifier.
func (n *BookingNotifier) BookingConfirmed(ctx context.Context, b bookings.Booking) {
	subject := fmt.Sprintf("Booking confirmed: %s on %s", b.DoctorName, b.Date)
	body := fmt.Sprintf(
		"Appointment #%d is confirmed.\n\nDoctor: %s (%s)\nDate: %s\nTime: %s\nStatus: %s\n",
		b.ID, b.DoctorName, b.Specialty, b.Date, b.Time, b.Status,
	)

	if err := n.sender.Send(ctx, n.recipient, subject, body); err != nil {
		n.logger.Error("booking confirmation email failed", "booking_id", b.ID, "error", err)
	}
}
