package coach

import (
	"github.com/dawarpower/fitcoach-api/internal/domain/mealplan"
	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
)

// Request bundles everything a combined recommendation is built from. MealPlan
// is optional; when absent a three-day plan matching the schedule profile is
// generated.
type Request struct {
	Schedule   schedule.Request  `json:"schedule"`
	MealPlan   *mealplan.Request `json:"mealPlan"`
	FocusAreas []string          `json:"focusAreas"`
}

// Action is one concrete next step surfaced to the user.
type Action struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

// Recommendation merges both generated plans with coach-level guidance.
type Recommendation struct {
	ProfileHash string            `json:"profileHash"`
	Schedule    schedule.Response `json:"schedule"`
	MealPlan    mealplan.Response `json:"mealPlan"`
	Takeaways   []string          `json:"takeaways"`
	NextActions []Action          `json:"nextActions"`
}
