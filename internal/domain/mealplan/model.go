package mealplan

import "github.com/dawarpower/fitcoach-api/internal/domain/fitness"

// Request captures the payload accepted by the meal plan service.
type Request struct {
	Goal            fitness.Goal `json:"goal"`
	Calories        *int         `json:"calories"`
	Diet            fitness.Diet `json:"diet"`
	Days            int          `json:"days"`
	Restrictions    []string     `json:"restrictions"`
	Allergies       []string     `json:"allergies"`
	Preferences     string       `json:"preferences"`
	Supplements     string       `json:"supplements"`
	WeightGoalShort string       `json:"weightGoalShort"`
	WeightGoalLong  string       `json:"weightGoalLong"`
	ActivityLevel   string       `json:"activityLevel"`
}

// MealIdea is a single meal surfaced to the client.
type MealIdea struct {
	Name        string   `json:"name"`
	MealType    string   `json:"mealType"`
	Calories    int      `json:"calories"`
	Protein     int      `json:"protein"`
	Carbs       int      `json:"carbs"`
	Fat         int      `json:"fat"`
	PrepTime    int      `json:"prepTime"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// LibraryEntry is a catalog meal plus the diets it qualifies for.
// The diet membership is an explicit typed field, never a loose tag lookup.
type LibraryEntry struct {
	MealIdea
	Diets []fitness.Diet
}

func (e LibraryEntry) allowsDiet(diet fitness.Diet) bool {
	for _, d := range e.Diets {
		if d == diet {
			return true
		}
	}
	return false
}

// MacroTargets carries grams of each macro nutrient.
type MacroTargets struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

func (m MacroTargets) add(meal MealIdea) MacroTargets {
	m.Protein += meal.Protein
	m.Carbs += meal.Carbs
	m.Fat += meal.Fat
	return m
}

func (m MacroTargets) plus(other MacroTargets) MacroTargets {
	m.Protein += other.Protein
	m.Carbs += other.Carbs
	m.Fat += other.Fat
	return m
}

// Day is one generated day of the plan.
type Day struct {
	Day           string       `json:"day"`
	Focus         string       `json:"focus"`
	TotalCalories int          `json:"totalCalories"`
	Meals         []MealIdea   `json:"meals"`
	CoachTip      string       `json:"coachTip"`
	Macros        MacroTargets `json:"macros"`
}

// Summary aggregates plan-wide targets and coaching content.
type Summary struct {
	TargetCalories int          `json:"targetCalories"`
	Goal           fitness.Goal `json:"goal"`
	Diet           fitness.Diet `json:"diet"`
	HydrationCups  int          `json:"hydrationCups"`
	MacroTargets   MacroTargets `json:"macroTargets"`
	ActualMacros   MacroTargets `json:"actualMacros"`
	Highlights     []string     `json:"highlights"`
	Tips           []string     `json:"tips"`
}

// Response is serialized back to API consumers. Rotation lists the distinct
// meal names used across the plan in first-occurrence order.
type Response struct {
	Summary  Summary  `json:"summary"`
	Days     []Day    `json:"days"`
	Rotation []string `json:"rotation"`
}
