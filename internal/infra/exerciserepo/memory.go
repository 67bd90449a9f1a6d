package exerciserepo

import (
	"context"
	"sort"
	"sync"

	"github.com/dawarpower/fitcoach-api/internal/domain/exercise"
)

// MemoryRepository provides the default in-process exercise store.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[int64]exercise.Exercise
	seq     int64
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[int64]exercise.Exercise)}
}

// List returns all records ordered by id.
func (r *MemoryRepository) List(_ context.Context) ([]exercise.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]exercise.Exercise, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Create stores the record under the next auto-incremented id.
func (r *MemoryRepository) Create(_ context.Context, record exercise.Exercise) (exercise.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	record.ID = r.seq
	r.records[record.ID] = record
	return record, nil
}

// Get fetches by id.
func (r *MemoryRepository) Get(_ context.Context, id int64) (exercise.Exercise, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	return record, ok, nil
}

// Update replaces an existing record.
func (r *MemoryRepository) Update(_ context.Context, id int64, record exercise.Exercise) (exercise.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = id
	r.records[id] = record
	return record, nil
}

// Delete removes the record, reporting whether it existed.
func (r *MemoryRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

var _ exercise.Repository = (*MemoryRepository)(nil)
