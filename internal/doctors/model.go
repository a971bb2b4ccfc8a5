package doctors

import (
	"strings"

	"github.com/healthmate/platform/internal/geo"
)

// Doctor is a row of the seeded roster. The core treats the roster as
// read-only after seeding.
type Doctor struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Specialty     string  `json:"specialty"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rating"`
	Availability  string  `json:"availability"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Insurance     string  `json:"insurance"`
	ReviewsCount  int     `json:"reviews_count"`
	NextAvailable string  `json:"next_available"`
}

// Coordinate returns the doctor's practice location.
func (d Doctor) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: d.Lat, Lng: d.Lng}
}

// Validate enforces write-time invariants on a roster row. Seed data is not
// trusted blindly: ratings must stay in [0,5], review counts non-negative and
// coordinates within their domains.
func (d Doctor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrInvalidDoctor
	}
	if d.Rating < 0 || d.Rating > 5 {
		return ErrInvalidRating
	}
	if d.ReviewsCount < 0 {
		return ErrInvalidReviews
	}
	return d.Coordinate().Validate()
}

// Candidate is a roster entry decorated with the distance from a discovery
// origin. DistanceKm is nil when no origin was supplied.
type Candidate struct {
	Doctor
	DistanceKm *float64 `json:"distance,omitempty"`
}
