package reports

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/healthmate/platform/pkg/logging"
)

// Handler handles HTTP requests for report summaries
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new reports handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// CreateReport handles POST /api/reports.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req AppendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.repo.Append(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to store report", "error", err)
		http.Error(w, "failed to store report", http.StatusInternalServerError)
		return
	}

	h.logger.Info("report stored", "id", id, "type", req.Type)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int64{"id": id})
}

// ListReports handles GET /api/reports, date descending.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list reports", "error", err)
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []Report{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrMissingName) ||
		errors.Is(err, ErrMissingType) ||
		errors.Is(err, ErrMissingDate) ||
		errors.Is(err, ErrMissingSummary)
}
