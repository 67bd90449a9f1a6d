package mealplan

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dawarpower/fitcoach-api/internal/domain/fitness"
	apperrors "github.com/dawarpower/fitcoach-api/pkg/errors"
)

func newTestService() Service {
	return NewService(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGenerateDefaults(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Generate(context.Background(), Request{})
	require.NoError(t, err)

	require.Equal(t, fitness.GoalMaintain, resp.Summary.Goal)
	require.Equal(t, fitness.DietStandard, resp.Summary.Diet)
	require.Equal(t, 2200, resp.Summary.TargetCalories)
	require.Equal(t, 9, resp.Summary.HydrationCups)
	require.Len(t, resp.Days, 3)

	for i, day := range resp.Days {
		require.Len(t, day.Meals, 4)
		total := 0
		for _, meal := range day.Meals {
			total += meal.Calories
		}
		require.Equal(t, total, day.TotalCalories, "day %d total", i)
		require.NotEmpty(t, day.CoachTip)
	}
}

func TestGenerateMacroTargets(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Generate(context.Background(), Request{Goal: fitness.GoalMaintain})
	require.NoError(t, err)

	// 30/40/30 split of 2200 kcal at 4/4/9 kcal per gram.
	require.Equal(t, MacroTargets{Protein: 165, Carbs: 220, Fat: 73}, resp.Summary.MacroTargets)
	require.Positive(t, resp.Summary.ActualMacros.Protein)
	require.Positive(t, resp.Summary.ActualMacros.Carbs)
	require.Positive(t, resp.Summary.ActualMacros.Fat)
}

func TestGenerateCalorieClamping(t *testing.T) {
	svc := newTestService()

	high := 4000
	resp, err := svc.Generate(context.Background(), Request{Goal: fitness.GoalMuscleGain, Calories: &high})
	require.NoError(t, err)
	require.Equal(t, 4200, resp.Summary.TargetCalories)

	low := 1200
	resp, err = svc.Generate(context.Background(), Request{Goal: fitness.GoalFatLoss, Calories: &low})
	require.NoError(t, err)
	require.Equal(t, 1500, resp.Summary.TargetCalories)
}

func TestGenerateRotationAvoidsRepeats(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Generate(context.Background(), Request{Days: 3})
	require.NoError(t, err)

	breakfasts := make(map[string]struct{})
	for _, day := range resp.Days {
		breakfasts[day.Meals[0].Name] = struct{}{}
	}
	require.Len(t, breakfasts, 3, "each day should rotate to a different breakfast")

	require.NotEmpty(t, resp.Rotation)
	seen := make(map[string]struct{})
	for _, name := range resp.Rotation {
		_, dup := seen[name]
		require.False(t, dup, "rotation entry %q repeated", name)
		seen[name] = struct{}{}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	svc := newTestService()
	req := Request{Goal: fitness.GoalFatLoss, Diet: fitness.DietVegetarian, Days: 5, Preferences: "spicy"}

	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGeneratePescatarianFallsBackWhenPoolEmpty(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Generate(context.Background(), Request{Diet: fitness.DietPescatarian, Days: 3})
	require.NoError(t, err)

	for _, day := range resp.Days {
		// No lunch in the catalog is tagged pescatarian; the full lunch
		// pool backfills so the day still has all four meals.
		require.Len(t, day.Meals, 4)
		require.Equal(t, "Smoked Salmon Power Toast", day.Meals[0].Name)
	}
}

func TestGenerateRestrictionsExcludeMeals(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Generate(context.Background(), Request{Days: 3, Restrictions: []string{"Salmon"}})
	require.NoError(t, err)

	for _, day := range resp.Days {
		for _, meal := range day.Meals {
			haystack := strings.ToLower(meal.Name + " " + meal.Description)
			require.NotContains(t, haystack, "salmon")
		}
	}
}

func TestGenerateFreeTextEnrichment(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Generate(context.Background(), Request{
		Preferences:     "Smoky Chipotle",
		Supplements:     "creatine",
		WeightGoalShort: "drop 2kg",
		ActivityLevel:   "high",
	})
	require.NoError(t, err)

	require.Contains(t, resp.Summary.Highlights, "Flavor focus: smoky chipotle")
	require.Contains(t, resp.Summary.Highlights, "Activity level: high")
	require.Contains(t, resp.Summary.Tips, "Keep supplements on schedule: creatine.")
	require.Contains(t, resp.Summary.Tips, "Short-term goal: drop 2kg.")
	require.Contains(t, resp.Days[0].CoachTip, "Lean into flavors you love: Smoky Chipotle.")
}

func TestGenerateValidation(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name string
		req  Request
	}{
		{"too many days", Request{Days: 9}},
		{"calories too low", Request{Calories: intPtr(900)}},
		{"calories too high", Request{Calories: intPtr(5000)}},
		{"unknown goal", Request{Goal: fitness.Goal("bulk")}},
		{"unknown diet", Request{Diet: fitness.Diet("carnivore")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tc.req)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, "invalid_input"))
		})
	}
}

func intPtr(v int) *int { return &v }
