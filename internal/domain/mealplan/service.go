package mealplan

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/dawarpower/fitcoach-api/internal/domain/fitness"
	apperrors "github.com/dawarpower/fitcoach-api/pkg/errors"
)

const (
	defaultBaselineCalories = 2200
	defaultDays             = 3
	maxDays                 = 5
	minTargetCalories       = 1500
	maxTargetCalories       = 4200
	minRequestCalories      = 1200
	maxRequestCalories      = 4500
	mainMealFloor           = 260
	snackFloor              = 180
)

// Service exposes the meal plan generator.
type Service interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// Config carries the tunables the generator reads at runtime.
type Config struct {
	BaselineCalories int
}

type service struct {
	cfg    Config
	logger *slog.Logger
}

// NewService wires up the meal plan domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	if cfg.BaselineCalories <= 0 {
		cfg.BaselineCalories = defaultBaselineCalories
	}
	return &service{
		cfg:    cfg,
		logger: logger.With("component", "mealplan.service"),
	}
}

// Generate builds a multi-day plan. The output is a pure function of the
// request; identical requests always produce identical plans.
func (s *service) Generate(_ context.Context, req Request) (Response, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return Response{}, err
	}

	target := s.targetCalories(req)
	cups := hydrationGuide[req.Goal]
	pools := candidatePools(req, target)

	days := make([]Day, 0, req.Days)
	rotation := make([]string, 0, req.Days)
	seen := make(map[string]struct{})
	offsets := make(map[string]int, len(mealTypes))
	var macroSum MacroTargets

	for i := 0; i < req.Days; i++ {
		meals := make([]MealIdea, 0, len(mealTypes))
		total := 0
		var macros MacroTargets

		for _, mealType := range mealTypes {
			pool := pools[mealType]
			if len(pool) == 0 {
				continue
			}
			chosen := pool[(i+offsets[mealType])%len(pool)]
			offsets[mealType] = (offsets[mealType] + 1) % len(pool)

			meals = append(meals, chosen)
			total += chosen.Calories
			macros = macros.add(chosen)
			if _, ok := seen[chosen.Name]; !ok {
				seen[chosen.Name] = struct{}{}
				rotation = append(rotation, chosen.Name)
			}
		}

		days = append(days, Day{
			Day:           fmt.Sprintf("Day %d", i+1),
			Focus:         dayFocus[i%len(dayFocus)],
			TotalCalories: total,
			Meals:         meals,
			CoachTip:      coachTip(i, cups, req.Preferences),
			Macros:        macros,
		})
		macroSum = macroSum.plus(macros)
	}

	summary := Summary{
		TargetCalories: target,
		Goal:           req.Goal,
		Diet:           req.Diet,
		HydrationCups:  cups,
		MacroTargets:   macroTargetsFor(req.Goal, target),
		ActualMacros:   meanMacros(macroSum, len(days)),
		Highlights:     append([]string(nil), dietHighlights[req.Diet]...),
		Tips:           append([]string(nil), goalTips[req.Goal]...),
	}
	applyFreeText(&summary, req)

	s.logger.Info("meal plan generated", "goal", req.Goal, "diet", req.Diet, "days", req.Days, "targetCalories", target)

	return Response{Summary: summary, Days: days, Rotation: rotation}, nil
}

func normalizeRequest(req Request) (Request, error) {
	if req.Goal != "" && !req.Goal.Valid() {
		return Request{}, apperrors.Wrap("invalid_input", "goal must be one of fat_loss, maintain, muscle_gain", nil)
	}
	if req.Diet != "" && !req.Diet.Valid() {
		return Request{}, apperrors.Wrap("invalid_input", "diet is not recognized", nil)
	}
	req.Goal = req.Goal.OrDefault()
	req.Diet = req.Diet.OrDefault()

	if req.Days == 0 {
		req.Days = defaultDays
	}
	if req.Days < 1 || req.Days > maxDays {
		return Request{}, apperrors.Wrap("invalid_input", fmt.Sprintf("days must be between 1 and %d", maxDays), nil)
	}
	if req.Calories != nil && (*req.Calories < minRequestCalories || *req.Calories > maxRequestCalories) {
		return Request{}, apperrors.Wrap("invalid_input", fmt.Sprintf("calories must be between %d and %d", minRequestCalories, maxRequestCalories), nil)
	}
	return req, nil
}

func (s *service) targetCalories(req Request) int {
	baseline := s.cfg.BaselineCalories
	if req.Calories != nil {
		baseline = *req.Calories
	}
	target := int(math.Round(float64(baseline) * goalCalorieModifiers[req.Goal]))
	if target < minTargetCalories {
		return minTargetCalories
	}
	if target > maxTargetCalories {
		return maxTargetCalories
	}
	return target
}

// candidatePools resolves the ranked candidate list per meal type once; day
// selection then only rotates an index over each pool.
func candidatePools(req Request, targetCalories int) map[string][]MealIdea {
	keywords := restrictionKeywords(req)
	pools := make(map[string][]MealIdea, len(mealTypes))

	for _, mealType := range mealTypes {
		perMealTarget := mealTypeTarget(mealType, targetCalories)
		candidates := filterByDiet(mealType, req.Diet)

		sort.SliceStable(candidates, func(i, j int) bool {
			di := abs(candidates[i].Calories - perMealTarget)
			dj := abs(candidates[j].Calories - perMealTarget)
			return di < dj
		})

		pool := excludeRestricted(candidates, keywords)
		if len(pool) == 0 {
			pool = candidates
		}

		ideas := make([]MealIdea, 0, len(pool))
		for _, entry := range pool {
			ideas = append(ideas, entry.MealIdea)
		}
		pools[mealType] = ideas
	}
	return pools
}

func mealTypeTarget(mealType string, targetCalories int) int {
	target := int(float64(targetCalories) * mealSplits[mealType])
	floor := mainMealFloor
	if mealType == "Snack" {
		floor = snackFloor
	}
	if target < floor {
		return floor
	}
	return target
}

// filterByDiet returns the meal type candidates matching the diet, falling
// back to the full meal type list so the pool is never empty.
func filterByDiet(mealType string, diet fitness.Diet) []LibraryEntry {
	candidates := make([]LibraryEntry, 0, len(mealLibrary))
	for _, entry := range mealLibrary {
		if entry.MealType == mealType {
			candidates = append(candidates, entry)
		}
	}
	if diet == fitness.DietStandard {
		return candidates
	}

	filtered := make([]LibraryEntry, 0, len(candidates))
	for _, entry := range candidates {
		if entry.allowsDiet(diet) {
			filtered = append(filtered, entry)
		}
	}
	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}

func restrictionKeywords(req Request) []string {
	keywords := make([]string, 0, len(req.Restrictions)+len(req.Allergies))
	for _, item := range append(append([]string(nil), req.Restrictions...), req.Allergies...) {
		clean := strings.ToLower(strings.TrimSpace(item))
		if clean != "" {
			keywords = append(keywords, clean)
		}
	}
	return keywords
}

func excludeRestricted(candidates []LibraryEntry, keywords []string) []LibraryEntry {
	if len(keywords) == 0 {
		return candidates
	}
	kept := make([]LibraryEntry, 0, len(candidates))
	for _, entry := range candidates {
		haystack := strings.ToLower(entry.Name + " " + entry.Description + " " + strings.Join(entry.Tags, " "))
		if !containsAny(haystack, keywords) {
			kept = append(kept, entry)
		}
	}
	return kept
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func coachTip(dayIndex, hydrationCups int, preferences string) string {
	tip := dayTipBank[dayIndex%len(dayTipBank)] + " " +
		fmt.Sprintf(hydrationPromptBank[dayIndex%len(hydrationPromptBank)], hydrationCups)
	if strings.TrimSpace(preferences) != "" {
		tip += " Lean into flavors you love: " + strings.TrimSpace(preferences) + "."
	}
	return tip
}

// macroTargetsFor converts the goal's calorie split into grams at
// 4/4/9 kcal per gram.
func macroTargetsFor(goal fitness.Goal, targetCalories int) MacroTargets {
	split := goalMacroSplits[goal]
	calories := float64(targetCalories)
	return MacroTargets{
		Protein: int(math.Round(calories * split.Protein / 4)),
		Carbs:   int(math.Round(calories * split.Carbs / 4)),
		Fat:     int(math.Round(calories * split.Fat / 9)),
	}
}

func meanMacros(sum MacroTargets, days int) MacroTargets {
	if days < 1 {
		return MacroTargets{}
	}
	n := float64(days)
	return MacroTargets{
		Protein: int(math.Round(float64(sum.Protein) / n)),
		Carbs:   int(math.Round(float64(sum.Carbs) / n)),
		Fat:     int(math.Round(float64(sum.Fat) / n)),
	}
}

func applyFreeText(summary *Summary, req Request) {
	if pref := strings.TrimSpace(req.Preferences); pref != "" {
		summary.Highlights = append(summary.Highlights, "Flavor focus: "+strings.ToLower(pref))
	}
	if req.Supplements != "" {
		summary.Tips = append(summary.Tips, "Keep supplements on schedule: "+req.Supplements+".")
	}
	if req.WeightGoalShort != "" {
		summary.Tips = append(summary.Tips, "Short-term goal: "+req.WeightGoalShort+".")
	}
	if req.WeightGoalLong != "" {
		summary.Tips = append(summary.Tips, "Long-term goal: "+req.WeightGoalLong+".")
	}
	if req.ActivityLevel != "" {
		summary.Highlights = append(summary.Highlights, "Activity level: "+req.ActivityLevel)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
