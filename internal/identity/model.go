// Package identity implements email-keyed user onboarding. Onboarding is an
// idempotent upsert-by-lookup: a repeat attempt for a known email returns the
// original record unchanged.
package identity

import (
	"net/mail"
	"strings"
)

// Role is the closed set of identity roles.
type Role string

const (
	RolePatient Role = "patient"
	RoleOwner   Role = "owner"
)

// Valid reports whether the role belongs to the closed enum.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleOwner
}

// Identity is a registered user keyed by unique email.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// OnboardRequest is the boundary payload for onboarding.
type OnboardRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Validate checks the onboarding payload before it reaches the store.
func (r *OnboardRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" {
		return ErrMissingEmail
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if !r.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}
