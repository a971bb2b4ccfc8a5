// Package geo provides great-circle distance math for doctor ranking.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// ErrInvalidCoordinate is returned when a latitude or longitude is outside
// its valid domain.
var ErrInvalidCoordinate = errors.New("geo: coordinate out of range")

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that the coordinate lies within lat [-90,90] and lng [-180,180].
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinate, c.Lat)
	}
	if math.IsNaN(c.Lng) || c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinate, c.Lng)
	}
	return nil
}

// Distance returns the haversine great-circle distance between a and b in
// kilometers. Both coordinates must be within valid domains.
func Distance(a, b Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h))), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
