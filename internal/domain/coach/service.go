package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dawarpower/fitcoach-api/internal/domain/mealplan"
	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
)

const defaultMealPlanDays = 3

// Service composes schedule and meal plan output into one recommendation.
type Service interface {
	Recommend(ctx context.Context, req Request) (Recommendation, error)
}

type service struct {
	schedules schedule.Service
	mealPlans mealplan.Service
	metrics   schedule.MetricSource
	logger    *slog.Logger
}

// NewService wires up the coach domain.
func NewService(schedules schedule.Service, mealPlans mealplan.Service, metrics schedule.MetricSource, logger *slog.Logger) Service {
	return &service{
		schedules: schedules,
		mealPlans: mealPlans,
		metrics:   metrics,
		logger:    logger.With("component", "coach.service"),
	}
}

func (s *service) Recommend(ctx context.Context, req Request) (Recommendation, error) {
	schedulePlan, profileHash, err := s.schedules.Generate(ctx, req.Schedule)
	if err != nil {
		return Recommendation{}, err
	}

	mealReq := mealplan.Request{
		Goal: req.Schedule.Goal.OrDefault(),
		Diet: req.Schedule.DietPreference.OrDefault(),
		Days: defaultMealPlanDays,
	}
	if req.MealPlan != nil {
		mealReq = *req.MealPlan
	}
	mealPlan, err := s.mealPlans.Generate(ctx, mealReq)
	if err != nil {
		return Recommendation{}, err
	}

	focus := loweredFocusAreas(req.FocusAreas)
	rec := Recommendation{
		ProfileHash: profileHash,
		Schedule:    schedulePlan,
		MealPlan:    mealPlan,
		Takeaways:   s.buildTakeaways(schedulePlan, mealPlan, focus),
		NextActions: s.buildNextActions(ctx, schedulePlan, mealPlan, focus),
	}

	s.logger.Info("coach recommendation composed",
		"profileHash", profileHash,
		"takeaways", len(rec.Takeaways),
		"nextActions", len(rec.NextActions))
	return rec, nil
}

func (s *service) buildTakeaways(schedulePlan schedule.Response, plan mealplan.Response, focus []string) []string {
	target := plan.Summary.MacroTargets
	actual := plan.Summary.ActualMacros

	takeaways := []string{
		schedulePlan.Notes.Summary,
		schedulePlan.Notes.MealAlignment,
		fmt.Sprintf("Daily macro targets: %dg protein / %dg carbs / %dg fat.", target.Protein, target.Carbs, target.Fat),
	}
	takeaways = append(takeaways, schedulePlan.Insights...)

	if mentionsAny(focus, "recovery", "stress") {
		takeaways = append(takeaways, "Recovery is the theme this week: honor the flex work and the wind-down routines.")
	}
	if actual != target {
		takeaways = append(takeaways, fmt.Sprintf(
			"Generated days average %dg protein / %dg carbs / %dg fat against those targets.",
			actual.Protein, actual.Carbs, actual.Fat))
	}
	return dedupe(takeaways)
}

// buildNextActions applies each rule independently; the generic check-in only
// appears when nothing else fired.
func (s *service) buildNextActions(ctx context.Context, schedulePlan schedule.Response, plan mealplan.Response, focus []string) []Action {
	var actions []Action

	if len(schedulePlan.Sessions) > 0 {
		first := schedulePlan.Sessions[0]
		actions = append(actions, Action{
			Headline:    "Lock in your first session",
			Description: fmt.Sprintf("%s in the %s window, %d minutes of %s.", first.Day, first.Window, first.DurationMinutes, first.Focus),
		})
	}

	if len(plan.Days) > 0 && len(plan.Days[0].Meals) > 0 {
		meal := plan.Days[0].Meals[0]
		actions = append(actions, Action{
			Headline:    "Prep the first meal",
			Description: fmt.Sprintf("%s (%s) takes about %d minutes to prep.", meal.Name, meal.MealType, meal.PrepTime),
		})
	}

	if metric, ok := s.metrics.Latest(ctx); ok && metric.SleepHours != nil && *metric.SleepHours < 7 {
		actions = append(actions, Action{
			Headline:    "Protect tonight's sleep",
			Description: fmt.Sprintf("Last night logged %.1f hours. Set a wind-down alarm one hour before bed.", *metric.SleepHours),
		})
	}

	if mentionsAny(focus, "travel") {
		actions = append(actions, Action{
			Headline:    "Pack travel snacks",
			Description: "Portion two portable snacks from the plan so travel days stay on target.",
		})
	}

	if len(actions) == 0 {
		actions = append(actions, Action{
			Headline:    "Schedule a check-in",
			Description: "Review how the week landed and adjust the profile before the next plan.",
		})
	}
	return actions
}

func loweredFocusAreas(areas []string) []string {
	out := make([]string, 0, len(areas))
	for _, area := range areas {
		out = append(out, strings.ToLower(area))
	}
	return out
}

func mentionsAny(areas []string, needles ...string) bool {
	for _, area := range areas {
		for _, needle := range needles {
			if strings.Contains(area, needle) {
				return true
			}
		}
	}
	return false
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
