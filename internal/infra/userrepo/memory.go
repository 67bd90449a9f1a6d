package userrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/dawarpower/fitcoach-api/internal/domain/user"
)

// MemoryRepository keeps user records in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[int64]user.User
	seq     int64
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[int64]user.User)}
}

func (r *MemoryRepository) List(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.User, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, record user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	record.UserID = r.seq
	r.records[record.UserID] = record
	return record, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	return record, ok, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, record user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.UserID = id
	r.records[id] = record
	return record, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

var _ user.Repository = (*MemoryRepository)(nil)
