package bookings

import (
	"context"
	"sync"

	"github.com/healthmate/platform/internal/doctors"
)

// InMemoryRepository is a Repository backed by process memory for tests. It
// emulates the foreign key into the doctor roster.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []Booking
	roster doctors.Repository
}

// NewInMemoryRepository creates an empty ledger over the given roster.
func NewInMemoryRepository(roster doctors.Repository) *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, roster: roster}
}

// Insert appends a confirmed row, enforcing referential integrity.
func (r *InMemoryRepository) Insert(ctx context.Context, req *BookRequest) (*Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	doc, err := r.roster.GetByID(ctx, req.DoctorID)
	if err != nil {
		if err == doctors.ErrDoctorNotFound {
			return nil, ErrUnknownDoctor
		}
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	b := Booking{
		ID:         r.nextID,
		DoctorID:   doc.ID,
		DoctorName: doc.Name,
		Specialty:  doc.Specialty,
		Date:       req.Date,
		Time:       req.Time,
		Status:     StatusConfirmed,
	}
	r.nextID++
	r.rows = append(r.rows, b)
	out := b
	return &out, nil
}

// List returns the ledger in insertion order.
func (r *InMemoryRepository) List(ctx context.Context) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Booking, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// ListRecent returns up to limit rows by id descending.
func (r *InMemoryRepository) ListRecent(ctx context.Context, limit int) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Booking, 0, limit)
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.rows[i])
	}
	return out, nil
}

// Count returns the number of ledger rows.
func (r *InMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}
