package wellness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/dawarpower/fitcoach-api/pkg/errors"
)

type stubClient struct {
	entries []Metric
	remote  bool
	err     error
}

func (s *stubClient) Fetch(_ context.Context, _ string) ([]Metric, bool, error) {
	return s.entries, s.remote, s.err
}

type capturePersister struct {
	saved [][]Metric
	err   error
}

func (p *capturePersister) SaveWellness(_ context.Context, metrics []Metric) error {
	if p.err != nil {
		return p.err
	}
	p.saved = append(p.saved, metrics)
	return nil
}

func newTestService(cfg Config, seed []Metric, client ProviderClient, persister Persister) Service {
	if client == nil {
		client = &stubClient{}
	}
	return NewService(cfg, seed, client, persister, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRecordAndList(t *testing.T) {
	persister := &capturePersister{}
	svc := newTestService(Config{}, nil, nil, persister)

	metric := Metric{Timestamp: "2026-03-01T07:00:00Z", EnergyLevel: "steady"}
	require.NoError(t, svc.Record(context.Background(), metric))

	got := svc.List(context.Background(), 10)
	require.Len(t, got, 1)
	require.Equal(t, metric, got[0])
	require.Len(t, persister.saved, 1)
}

func TestRecordValidation(t *testing.T) {
	svc := newTestService(Config{}, nil, nil, nil)

	steps := -1
	sleep := -0.5
	readiness := 120
	cases := []Metric{
		{},
		{Timestamp: "2026-03-01T07:00:00Z", Steps: &steps},
		{Timestamp: "2026-03-01T07:00:00Z", SleepHours: &sleep},
		{Timestamp: "2026-03-01T07:00:00Z", Readiness: &readiness},
	}
	for i, metric := range cases {
		err := svc.Record(context.Background(), metric)
		require.True(t, apperrors.IsCode(err, "invalid_input"), "case %d", i)
	}
}

func TestHistoryCap(t *testing.T) {
	svc := newTestService(Config{HistoryLimit: 5}, nil, nil, nil)

	for i := 0; i < 8; i++ {
		metric := Metric{Timestamp: fmt.Sprintf("2026-03-0%dT07:00:00Z", i+1)}
		require.NoError(t, svc.Record(context.Background(), metric))
	}

	got := svc.List(context.Background(), 100)
	require.Len(t, got, 5)
	require.Equal(t, "2026-03-04T07:00:00Z", got[0].Timestamp)
	require.Equal(t, "2026-03-08T07:00:00Z", got[4].Timestamp)
}

func TestListLimits(t *testing.T) {
	seed := []Metric{
		{Timestamp: "2026-03-01T07:00:00Z"},
		{Timestamp: "2026-03-02T07:00:00Z"},
	}
	svc := newTestService(Config{}, seed, nil, nil)

	require.Empty(t, svc.List(context.Background(), 0))
	require.Empty(t, svc.List(context.Background(), -3))
	require.Len(t, svc.List(context.Background(), 1), 1)
	require.Equal(t, "2026-03-02T07:00:00Z", svc.List(context.Background(), 1)[0].Timestamp)
	require.Len(t, svc.List(context.Background(), 50), 2)
}

func TestImportStampsSource(t *testing.T) {
	persister := &capturePersister{}
	svc := newTestService(Config{}, nil, nil, persister)

	count, err := svc.Import(context.Background(), ImportPayload{
		Source: "whoop",
		Entries: []Metric{
			{Timestamp: "2026-03-01T07:00:00Z", Source: "something_else"},
			{Timestamp: "2026-03-02T07:00:00Z"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)

	got := svc.List(context.Background(), 10)
	require.Len(t, got, 2)
	for _, metric := range got {
		require.Equal(t, "whoop", metric.Source)
	}
}

func TestImportRequiresSource(t *testing.T) {
	svc := newTestService(Config{}, nil, nil, nil)

	_, err := svc.Import(context.Background(), ImportPayload{
		Entries: []Metric{{Timestamp: "2026-03-01T07:00:00Z"}},
	})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestFetchProviderSampleFallback(t *testing.T) {
	svc := newTestService(Config{}, nil, &stubClient{remote: false}, nil)

	entries, err := svc.FetchProvider(context.Background(), "fitbit")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, metric := range entries {
		require.Equal(t, "fitbit", metric.Source)
	}
}

func TestFetchProviderRemote(t *testing.T) {
	remote := []Metric{{Timestamp: "2026-03-01T07:00:00Z"}}
	svc := newTestService(Config{}, nil, &stubClient{entries: remote, remote: true}, nil)

	entries, err := svc.FetchProvider(context.Background(), "whoop")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "whoop", entries[0].Source)
}

func TestFetchProviderUnknown(t *testing.T) {
	svc := newTestService(Config{}, nil, nil, nil)

	_, err := svc.FetchProvider(context.Background(), "garmin")
	require.True(t, apperrors.IsCode(err, "not_found"))
}

func TestFetchProviderRemoteErrorNeverFallsBack(t *testing.T) {
	svc := newTestService(Config{}, nil, &stubClient{remote: true, err: errors.New("boom")}, nil)

	_, err := svc.FetchProvider(context.Background(), "apple_health")
	require.True(t, apperrors.IsCode(err, "provider_error"))
}

func TestLatest(t *testing.T) {
	svc := newTestService(Config{}, nil, nil, nil)

	_, ok := svc.Latest(context.Background())
	require.False(t, ok)

	require.NoError(t, svc.Record(context.Background(), Metric{Timestamp: "2026-03-01T07:00:00Z"}))
	require.NoError(t, svc.Record(context.Background(), Metric{Timestamp: "2026-03-02T07:00:00Z"}))

	latest, ok := svc.Latest(context.Background())
	require.True(t, ok)
	require.Equal(t, "2026-03-02T07:00:00Z", latest.Timestamp)
}

func TestRecordPersistFailure(t *testing.T) {
	svc := newTestService(Config{}, nil, nil, &capturePersister{err: errors.New("disk full")})

	err := svc.Record(context.Background(), Metric{Timestamp: "2026-03-01T07:00:00Z"})
	require.True(t, apperrors.IsCode(err, "storage_error"))
}
