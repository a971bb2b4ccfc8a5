package reports

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is a Repository backed by process memory for tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []Report
}

// NewInMemoryRepository creates an empty in-memory report store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// Append stores the summary verbatim and returns the new id.
func (r *InMemoryRepository) Append(ctx context.Context, req *AppendRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	rep := Report{
		ID:       r.nextID,
		Name:     req.Name,
		Type:     req.Type,
		Date:     req.Date,
		Summary:  req.Summary,
		FilePath: req.FilePath,
	}
	r.nextID++
	r.rows = append(r.rows, rep)
	return rep.ID, nil
}

// List returns reports by date descending, id ascending within a date.
func (r *InMemoryRepository) List(ctx context.Context) ([]Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Report, len(r.rows))
	copy(out, r.rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
