package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/healthmate/platform/pkg/logging"
)

// Handler handles HTTP requests for onboarding
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new identity handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// Onboard handles POST /api/onboard. A repeat onboarding for a known email
// responds 200 with the original record; the caller never sees a
// duplicate-key error.
func (h *Handler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ident, err := h.repo.Onboard(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to onboard identity", "error", err, "email", req.Email)
		http.Error(w, "failed to onboard", http.StatusInternalServerError)
		return
	}

	h.logger.Info("identity onboarded", "id", ident.ID, "role", ident.Role)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ident)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrMissingEmail) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrMissingName) ||
		errors.Is(err, ErrInvalidRole)
}
