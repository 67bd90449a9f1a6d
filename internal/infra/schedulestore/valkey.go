package schedulestore

import (
	"context"
	"encoding/json"

	"github.com/valkey-io/valkey-go"

	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
)

// ValkeyStore persists schedules in a Valkey-compatible database, keyed by
// profile fingerprint.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "fitcoach:schedule"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements schedule.Store.
func (s *ValkeyStore) Get(ctx context.Context, fingerprint string) (schedule.Response, bool, error) {
	cmd := s.client.B().Get().Key(s.key(fingerprint)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return schedule.Response{}, false, nil
		}
		return schedule.Response{}, false, err
	}
	var resp schedule.Response
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return schedule.Response{}, false, err
	}
	return resp, true, nil
}

// Save implements schedule.Store. Entries have no TTL; a schedule stays valid
// until the same profile generates a new one.
func (s *ValkeyStore) Save(ctx context.Context, fingerprint string, resp schedule.Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	cmd := s.client.B().Set().Key(s.key(fingerprint)).Value(string(payload)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) key(fingerprint string) string {
	return s.prefix + ":" + fingerprint
}

var _ schedule.Store = (*ValkeyStore)(nil)
