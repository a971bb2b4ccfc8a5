package identity

import (
	"context"
	"sync"
)

// InMemoryRepository is a Repository backed by process memory for tests.
type InMemoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]*Identity
}

// NewInMemoryRepository creates an empty in-memory registry.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byEmail: make(map[string]*Identity)}
}

// Onboard inserts or returns the pre-existing identity for the email.
func (r *InMemoryRepository) Onboard(ctx context.Context, req *OnboardRequest) (*Identity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byEmail[req.Email]; ok {
		copied := *existing
		return &copied, nil
	}

	ident := &Identity{
		ID:    r.nextID,
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	}
	r.nextID++
	r.byEmail[req.Email] = ident
	copied := *ident
	return &copied, nil
}

// CountDistinctPatients counts patient-role identities.
func (r *InMemoryRepository) CountDistinctPatients(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, ident := range r.byEmail {
		if ident.Role == RolePatient {
			count++
		}
	}
	return count, nil
}
