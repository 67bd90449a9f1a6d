// Package schedulestore provides the fingerprint-keyed schedule stores.
package schedulestore

import (
	"context"
	"sync"

	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
)

// Persister flushes the full schedule map after each write.
type Persister interface {
	SaveSchedules(ctx context.Context, schedules map[string]schedule.Response) error
}

// MemoryStore keeps schedules in process memory and writes through to the
// persistence gateway so they survive restarts.
type MemoryStore struct {
	mu        sync.RWMutex
	schedules map[string]schedule.Response
	persister Persister
}

// NewMemoryStore constructs a store seeded from a reloaded snapshot.
// persister may be nil for tests.
func NewMemoryStore(seed map[string]schedule.Response, persister Persister) *MemoryStore {
	schedules := make(map[string]schedule.Response, len(seed))
	for key, resp := range seed {
		schedules[key] = resp
	}
	return &MemoryStore{schedules: schedules, persister: persister}
}

// Get implements schedule.Store.
func (s *MemoryStore) Get(_ context.Context, fingerprint string) (schedule.Response, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp, ok := s.schedules[fingerprint]
	return resp, ok, nil
}

// Save stores the schedule and flushes the whole map through the persister.
func (s *MemoryStore) Save(ctx context.Context, fingerprint string, resp schedule.Response) error {
	s.mu.Lock()
	s.schedules[fingerprint] = resp
	snapshot := make(map[string]schedule.Response, len(s.schedules))
	for key, value := range s.schedules {
		snapshot[key] = value
	}
	s.mu.Unlock()

	if s.persister == nil {
		return nil
	}
	return s.persister.SaveSchedules(ctx, snapshot)
}

var _ schedule.Store = (*MemoryStore)(nil)
