package doctors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/healthmate/platform/internal/geo"
	"github.com/healthmate/platform/pkg/logging"
)

// Handler handles HTTP requests for the doctor roster
type Handler struct {
	repo      Repository
	directory *Directory
	logger    *logging.Logger
}

// NewHandler creates a new doctors handler
func NewHandler(repo Repository, directory *Directory, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:      repo,
		directory: directory,
		logger:    logger,
	}
}

// ListDoctors handles GET /api/doctors. It returns the full roster,
// unfiltered; ranking is layered on top by the nearby endpoint.
func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	roster, err := h.repo.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list doctors", "error", err)
		http.Error(w, "failed to list doctors", http.StatusInternalServerError)
		return
	}
	if roster == nil {
		roster = []Doctor{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(roster)
}

// ListNearby handles GET /api/doctors/nearby.
// Query params: lat, lng (optional pair), specialty, insurance, min_rating,
// availability (any|today).
func (h *Handler) ListNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var origin *geo.Coordinate
	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			http.Error(w, "lat and lng must both be decimal degrees", http.StatusBadRequest)
			return
		}
		origin = &geo.Coordinate{Lat: lat, Lng: lng}
	}

	filters := Filters{
		Specialty:    q.Get("specialty"),
		Insurance:    q.Get("insurance"),
		Availability: q.Get("availability"),
	}
	if filters.Availability != "" && filters.Availability != AvailabilityAny && filters.Availability != AvailabilityToday {
		http.Error(w, "availability must be 'any' or 'today'", http.StatusBadRequest)
		return
	}
	if ratingStr := q.Get("min_rating"); ratingStr != "" {
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil || rating < 0 || rating > 5 {
			http.Error(w, "min_rating must be between 0 and 5", http.StatusBadRequest)
			return
		}
		filters.MinRating = rating
	}

	candidates, err := h.directory.ListCandidates(r.Context(), origin, filters)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to rank doctors", "error", err)
		http.Error(w, "failed to rank doctors", http.StatusInternalServerError)
		return
	}
	if candidates == nil {
		candidates = []Candidate{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(candidates)
}
