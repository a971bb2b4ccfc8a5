package doctors

import (
	"context"
	"sync"
)

// InMemoryRepository is a Repository backed by process memory, used in tests
// and local development without a database.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	roster []Doctor
}

// NewInMemoryRepository creates an empty in-memory roster.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// ListAll returns a copy of the roster in directory order.
func (r *InMemoryRepository) ListAll(ctx context.Context) ([]Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Doctor, len(r.roster))
	copy(out, r.roster)
	return out, nil
}

// GetByID retrieves a doctor by id.
func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.roster {
		if d.ID == id {
			doc := d
			return &doc, nil
		}
	}
	return nil, ErrDoctorNotFound
}

// Exists reports whether the id resolves.
func (r *InMemoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	if err == ErrDoctorNotFound {
		return false, nil
	}
	return err == nil, err
}

// Count returns the roster size.
func (r *InMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.roster)), nil
}

// SeedIfEmpty loads the roster once; repeat calls are no-ops.
func (r *InMemoryRepository) SeedIfEmpty(ctx context.Context, roster []Doctor) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.roster) > 0 {
		return 0, nil
	}
	for _, d := range roster {
		if err := d.Validate(); err != nil {
			return 0, err
		}
		d.ID = r.nextID
		r.nextID++
		r.roster = append(r.roster, d)
	}
	return len(r.roster), nil
}
