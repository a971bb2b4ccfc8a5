// Package reports persists uploaded-report summaries. Summary text is
// produced externally by the advisor and stored verbatim; the core never
// interprets it.
package reports

import (
	"errors"
	"strings"
)

var (
	// ErrMissingName is returned when the report name is absent
	ErrMissingName = errors.New("name is required")

	// ErrMissingType is returned when the report type label is absent
	ErrMissingType = errors.New("type is required")

	// ErrMissingDate is returned when the report date is absent
	ErrMissingDate = errors.New("date is required")

	// ErrMissingSummary is returned when the summary text is absent
	ErrMissingSummary = errors.New("summary is required")
)

// Report is an append-only summary row with an opaque file reference.
type Report struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Summary  string `json:"summary"`
	FilePath string `json:"file_path"`
}

// AppendRequest is the boundary payload for storing a report summary.
type AppendRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Summary  string `json:"summary"`
	FilePath string `json:"file_path"`
}

// Validate checks the payload before it reaches the store. The file
// reference is optional and opaque.
func (r *AppendRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(r.Type) == "" {
		return ErrMissingType
	}
	if strings.TrimSpace(r.Date) == "" {
		return ErrMissingDate
	}
	if strings.TrimSpace(r.Summary) == "" {
		return ErrMissingSummary
	}
	return nil
}
