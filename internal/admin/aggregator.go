// Package admin derives live statistics from the booking ledger and the
// identity registry.
package admin

import (
	"context"
	"fmt"

	"github.com/healthmate/platform/internal/bookings"
	"github.com/healthmate/platform/internal/identity"
)

// RecentLimit is how many bookings the snapshot's recency view carries.
const RecentLimit = 10

// Snapshot is derived on every call and never persisted or cached; staleness
// here is a defect, not a tradeoff.
type Snapshot struct {
	TotalBookings  int64              `json:"totalBookings"`
	TotalPatients  int64              `json:"totalPatients"`
	RecentBookings []bookings.Booking `json:"recentBookings"`
}

// Aggregator reads current ledger/registry state.
type Aggregator struct {
	ledger   bookings.Repository
	registry identity.Repository
}

// NewAggregator constructs an aggregator over the live stores.
func NewAggregator(ledger bookings.Repository, registry identity.Repository) *Aggregator {
	if ledger == nil {
		panic("admin: booking ledger required")
	}
	if registry == nil {
		panic("admin: identity registry required")
	}
	return &Aggregator{ledger: ledger, registry: registry}
}

// Snapshot re-derives the admin view from current state.
func (a *Aggregator) Snapshot(ctx context.Context) (*Snapshot, error) {
	total, err := a.ledger.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin: total bookings: %w", err)
	}

	patients, err := a.registry.CountDistinctPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin: total patients: %w", err)
	}

	recent, err := a.ledger.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("admin: recent bookings: %w", err)
	}
	if recent == nil {
		recent = []bookings.Booking{}
	}

	return &Snapshot{
		TotalBookings:  total,
		TotalPatients:  patients,
		RecentBookings: recent,
	}, nil
}
