package wellness

import (
	"context"
	"log/slog"
	"sync"

	apperrors "github.com/dawarpower/fitcoach-api/pkg/errors"
)

const defaultHistoryLimit = 200

// Service owns the capped wellness history and the provider import paths.
type Service interface {
	Record(ctx context.Context, metric Metric) error
	List(ctx context.Context, limit int) []Metric
	Import(ctx context.Context, payload ImportPayload) (int, error)
	FetchProvider(ctx context.Context, provider string) ([]Metric, error)
	Latest(ctx context.Context) (Metric, bool)
}

// ProviderClient fetches raw entries from a configured remote source.
// remote is false when no source is configured for the provider.
type ProviderClient interface {
	Fetch(ctx context.Context, provider string) (entries []Metric, remote bool, err error)
}

// Persister writes the wellness history behind the service.
type Persister interface {
	SaveWellness(ctx context.Context, metrics []Metric) error
}

// Config carries the history tunables.
type Config struct {
	HistoryLimit int
}

type service struct {
	cfg       Config
	client    ProviderClient
	persister Persister
	logger    *slog.Logger

	mu  sync.RWMutex
	log []Metric
}

// NewService wires up the wellness domain, seeded with the reloaded history.
func NewService(cfg Config, seed []Metric, client ProviderClient, persister Persister, logger *slog.Logger) Service {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	svc := &service{
		cfg:       cfg,
		client:    client,
		persister: persister,
		logger:    logger.With("component", "wellness.service"),
		log:       append([]Metric(nil), seed...),
	}
	svc.capLocked()
	return svc
}

func (s *service) Record(ctx context.Context, metric Metric) error {
	if err := validateMetric(metric); err != nil {
		return err
	}
	s.mu.Lock()
	s.log = append(s.log, metric)
	s.capLocked()
	snapshot := append([]Metric(nil), s.log...)
	s.mu.Unlock()

	return s.persist(ctx, snapshot)
}

func (s *service) List(_ context.Context, limit int) []Metric {
	if limit <= 0 {
		return []Metric{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit > len(s.log) {
		limit = len(s.log)
	}
	return append([]Metric(nil), s.log[len(s.log)-limit:]...)
}

func (s *service) Import(ctx context.Context, payload ImportPayload) (int, error) {
	if payload.Source == "" {
		return 0, apperrors.Wrap("invalid_input", "source must not be empty", nil)
	}
	for _, entry := range payload.Entries {
		if err := validateMetric(entry); err != nil {
			return 0, err
		}
	}

	s.mu.Lock()
	for _, entry := range payload.Entries {
		entry.Source = payload.Source
		s.log = append(s.log, entry)
	}
	s.capLocked()
	snapshot := append([]Metric(nil), s.log...)
	s.mu.Unlock()

	if err := s.persist(ctx, snapshot); err != nil {
		return 0, err
	}
	return len(payload.Entries), nil
}

func (s *service) FetchProvider(ctx context.Context, provider string) ([]Metric, error) {
	samples, known := providerSamples[provider]
	if !known {
		return nil, apperrors.Wrap("not_found", "provider not supported", nil)
	}

	entries, remote, err := s.client.Fetch(ctx, provider)
	if err != nil {
		// A configured remote source never silently degrades to the sample.
		return nil, apperrors.Wrap("provider_error", "provider fetch failed", err)
	}
	if !remote {
		entries = append([]Metric(nil), samples...)
	}
	for i := range entries {
		entries[i].Source = provider
	}
	s.logger.Info("provider metrics fetched", "provider", provider, "remote", remote, "entries", len(entries))
	return entries, nil
}

func (s *service) Latest(_ context.Context) (Metric, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.log) == 0 {
		return Metric{}, false
	}
	return s.log[len(s.log)-1], true
}

func (s *service) persist(ctx context.Context, snapshot []Metric) error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.SaveWellness(ctx, snapshot); err != nil {
		return apperrors.Wrap("storage_error", "failed to persist wellness history", err)
	}
	return nil
}

// capLocked trims the history to the newest entries. Callers hold the lock
// (or exclusive ownership during construction).
func (s *service) capLocked() {
	if excess := len(s.log) - s.cfg.HistoryLimit; excess > 0 {
		s.log = append([]Metric(nil), s.log[excess:]...)
	}
}

func validateMetric(metric Metric) error {
	if metric.Timestamp == "" {
		return apperrors.Wrap("invalid_input", "timestamp must not be empty", nil)
	}
	if metric.Steps != nil && *metric.Steps < 0 {
		return apperrors.Wrap("invalid_input", "steps must not be negative", nil)
	}
	if metric.SleepHours != nil && *metric.SleepHours < 0 {
		return apperrors.Wrap("invalid_input", "sleepHours must not be negative", nil)
	}
	if metric.Readiness != nil && (*metric.Readiness < 0 || *metric.Readiness > 100) {
		return apperrors.Wrap("invalid_input", "readiness must be between 0 and 100", nil)
	}
	return nil
}
