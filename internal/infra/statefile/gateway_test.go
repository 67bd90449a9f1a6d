package statefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
	"github.com/dawarpower/fitcoach-api/internal/domain/wellness"
)

func TestLoadMissingFile(t *testing.T) {
	gateway := New(filepath.Join(t.TempDir(), "state.json"))

	snap, report, err := gateway.Load()
	require.NoError(t, err)
	require.Empty(t, snap.Schedules)
	require.Empty(t, snap.Wellness)
	require.Zero(t, report.SkippedSchedules)
	require.Zero(t, report.SkippedWellness)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	gateway := New(path)

	schedules := map[string]schedule.Response{
		"abc123": {
			Sessions: []schedule.Session{{Day: "Monday", Window: "midday", Focus: "Strength balance", DurationMinutes: 35, Equipment: "bodyweight", Intensity: "moderate"}},
			Notes:    schedule.Notes{Summary: "plan summary", RecoveryTip: "walk", MealAlignment: "standard"},
			Insights: []string{"one insight"},
		},
	}
	metrics := []wellness.Metric{{Timestamp: "2026-03-01T07:00:00Z", Source: "fitbit"}}

	require.NoError(t, gateway.SaveSchedules(context.Background(), schedules))
	require.NoError(t, gateway.SaveWellness(context.Background(), metrics))

	reloaded := New(path)
	snap, report, err := reloaded.Load()
	require.NoError(t, err)
	require.Zero(t, report.SkippedSchedules)
	require.Zero(t, report.SkippedWellness)
	require.Equal(t, schedules, snap.Schedules)
	require.Equal(t, metrics, snap.Wellness)
}

func TestSaveKeepsOtherHalf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	gateway := New(path)

	metrics := []wellness.Metric{{Timestamp: "2026-03-01T07:00:00Z"}}
	require.NoError(t, gateway.SaveWellness(context.Background(), metrics))
	require.NoError(t, gateway.SaveSchedules(context.Background(), map[string]schedule.Response{
		"abc": {Insights: []string{"kept"}},
	}))

	snap, _, err := New(path).Load()
	require.NoError(t, err)
	require.Len(t, snap.Schedules, 1)
	require.Equal(t, metrics, snap.Wellness)
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	payload := `{
		"schedules": {
			"good": {"sessions": [], "notes": {"summary": "", "recoveryTip": "", "mealAlignment": ""}, "insights": []},
			"bad": {"sessions": "not-a-list"}
		},
		"wellness": [
			{"timestamp": "2026-03-01T07:00:00Z"},
			{"timestamp": 42},
			"nonsense"
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	snap, report, err := New(path).Load()
	require.NoError(t, err)
	require.Equal(t, 1, report.SkippedSchedules)
	require.Equal(t, 2, report.SkippedWellness)
	require.Contains(t, snap.Schedules, "good")
	require.Len(t, snap.Wellness, 1)
}

func TestLoadRejectsUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, err := New(path).Load()
	require.Error(t, err)
}

func TestWellnessCapOnFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	gateway := New(path)

	metrics := make([]wellness.Metric, 0, 230)
	for i := 0; i < 230; i++ {
		metrics = append(metrics, wellness.Metric{Timestamp: "2026-03-01T07:00:00Z"})
	}
	require.NoError(t, gateway.SaveWellness(context.Background(), metrics))

	snap, _, err := New(path).Load()
	require.NoError(t, err)
	require.Len(t, snap.Wellness, 200)
}
