package bookings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/healthmate/platform/pkg/logging"
)

// Handler handles HTTP requests for the booking ledger
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new bookings handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// CreateBooking handles POST /api/bookings. Status is always Confirmed.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	booking, err := h.service.Book(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownDoctor):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, ErrMissingDoctor), errors.Is(err, ErrMissingDate), errors.Is(err, ErrMissingTime):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("failed to create booking", "error", err, "doctor_id", req.DoctorID)
			http.Error(w, "failed to create booking", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int64{"id": booking.ID})
}

// ListBookings handles GET /api/bookings, joined with doctor name/specialty.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list bookings", "error", err)
		http.Error(w, "failed to list bookings", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []Booking{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}
