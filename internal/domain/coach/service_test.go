package coach

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dawarpower/fitcoach-api/internal/domain/fitness"
	"github.com/dawarpower/fitcoach-api/internal/domain/mealplan"
	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
	"github.com/dawarpower/fitcoach-api/internal/domain/wellness"
)

type memoryScheduleStore struct {
	saved map[string]schedule.Response
}

func (s *memoryScheduleStore) Get(_ context.Context, fingerprint string) (schedule.Response, bool, error) {
	resp, ok := s.saved[fingerprint]
	return resp, ok, nil
}

func (s *memoryScheduleStore) Save(_ context.Context, fingerprint string, resp schedule.Response) error {
	s.saved[fingerprint] = resp
	return nil
}

type stubMetrics struct {
	metric *wellness.Metric
}

func (s *stubMetrics) Latest(_ context.Context) (wellness.Metric, bool) {
	if s.metric == nil {
		return wellness.Metric{}, false
	}
	return *s.metric, true
}

func newTestService(metric *wellness.Metric) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := &stubMetrics{metric: metric}
	schedules := schedule.NewService(&memoryScheduleStore{saved: make(map[string]schedule.Response)}, metrics, logger)
	mealPlans := mealplan.NewService(mealplan.Config{}, logger)
	return NewService(schedules, mealPlans, metrics, logger)
}

func TestRecommendComposesBothPlans(t *testing.T) {
	svc := newTestService(nil)

	rec, err := svc.Recommend(context.Background(), Request{
		Schedule: schedule.Request{
			FullName: "Avery",
			Goal:     fitness.GoalMaintain,
		},
	})
	require.NoError(t, err)

	require.Len(t, rec.ProfileHash, 40)
	require.NotEmpty(t, rec.Schedule.Sessions)
	require.Len(t, rec.MealPlan.Days, 3)
	require.NotEmpty(t, rec.MealPlan.Rotation)

	require.Contains(t, rec.Takeaways, rec.Schedule.Notes.Summary)
	require.Contains(t, rec.Takeaways, rec.Schedule.Notes.MealAlignment)
	require.Contains(t, rec.Takeaways, "Daily macro targets: 165g protein / 220g carbs / 73g fat.")

	require.Equal(t, "Lock in your first session", rec.NextActions[0].Headline)
	require.Equal(t, "Prep the first meal", rec.NextActions[1].Headline)
}

func TestRecommendStressAndTravelFocus(t *testing.T) {
	svc := newTestService(nil)

	rec, err := svc.Recommend(context.Background(), Request{
		Schedule: schedule.Request{
			Goal:        fitness.GoalFatLoss,
			StressLevel: "high",
		},
		FocusAreas: []string{"Stress Management", "Travel Week"},
	})
	require.NoError(t, err)

	require.Contains(t, rec.Takeaways, "Recovery is the theme this week: honor the flex work and the wind-down routines.")

	var travelAction bool
	for _, action := range rec.NextActions {
		if action.Headline == "Pack travel snacks" {
			travelAction = true
		}
	}
	require.True(t, travelAction)
}

func TestRecommendShortSleepAction(t *testing.T) {
	sleep := 5.5
	svc := newTestService(&wellness.Metric{Timestamp: "2026-03-01T07:00:00Z", SleepHours: &sleep})

	rec, err := svc.Recommend(context.Background(), Request{
		Schedule: schedule.Request{Goal: fitness.GoalMuscleGain},
	})
	require.NoError(t, err)

	var sleepAction *Action
	for i := range rec.NextActions {
		if rec.NextActions[i].Headline == "Protect tonight's sleep" {
			sleepAction = &rec.NextActions[i]
		}
	}
	require.NotNil(t, sleepAction)
	require.Contains(t, sleepAction.Description, "5.5 hours")
}

func TestRecommendHonorsExplicitMealRequest(t *testing.T) {
	svc := newTestService(nil)

	rec, err := svc.Recommend(context.Background(), Request{
		Schedule: schedule.Request{Goal: fitness.GoalMaintain},
		MealPlan: &mealplan.Request{
			Goal: fitness.GoalMuscleGain,
			Diet: fitness.DietVegan,
			Days: 5,
		},
	})
	require.NoError(t, err)
	require.Len(t, rec.MealPlan.Days, 5)
	require.Equal(t, fitness.GoalMuscleGain, rec.MealPlan.Summary.Goal)
	require.Equal(t, fitness.DietVegan, rec.MealPlan.Summary.Diet)
}

func TestRecommendPropagatesScheduleErrors(t *testing.T) {
	svc := newTestService(nil)

	age := 5
	_, err := svc.Recommend(context.Background(), Request{
		Schedule: schedule.Request{Age: &age},
	})
	require.Error(t, err)
}
