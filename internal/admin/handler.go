package admin

import (
	"encoding/json"
	"net/http"

	"github.com/healthmate/platform/pkg/logging"
)

// Handler provides the admin statistics endpoint.
type Handler struct {
	aggregator *Aggregator
	logger     *logging.Logger
}

// NewHandler creates a new admin handler.
func NewHandler(aggregator *Aggregator, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{aggregator: aggregator, logger: logger}
}

// GetStats handles GET /api/admin/stats.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.aggregator.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to derive admin snapshot", "error", err)
		http.Error(w, "failed to derive stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snapshot)
}
