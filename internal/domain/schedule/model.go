package schedule

import "github.com/dawarpower/fitcoach-api/internal/domain/fitness"

// Request is the profile a weekly schedule is generated from. Field order
// matters to the fingerprint; see fingerprint.go.
type Request struct {
	FullName            string       `json:"fullName"`
	Occupation          string       `json:"occupation"`
	WorkStyle           string       `json:"workStyle"`
	Timezone            string       `json:"timezone"`
	Goal                fitness.Goal `json:"goal"`
	PreferredWindows    []string     `json:"preferredWindows"`
	EquipmentAccess     []string     `json:"equipmentAccess"`
	DietPreference      fitness.Diet `json:"dietPreference"`
	CommuteMinutes      *int         `json:"commuteMinutes"`
	StressLevel         string       `json:"stressLevel"`
	Age                 *int         `json:"age"`
	Gender              string       `json:"gender"`
	ActivityLevel       string       `json:"activityLevel"`
	Injuries            string       `json:"injuries"`
	DietaryRestrictions string       `json:"dietaryRestrictions"`
	DietaryAllergies    string       `json:"dietaryAllergies"`
	DietaryPreferences  string       `json:"dietaryPreferences"`
	Supplements         string       `json:"supplements"`
	WeightGoalShort     string       `json:"weightGoalShort"`
	WeightGoalLong      string       `json:"weightGoalLong"`
}

// Session is one scheduled training block.
type Session struct {
	Day             string            `json:"day"`
	Window          string            `json:"window"`
	Focus           string            `json:"focus"`
	DurationMinutes int               `json:"durationMinutes"`
	Equipment       string            `json:"equipment"`
	Intensity       fitness.Intensity `json:"intensity"`
}

// Notes carries the coaching prose attached to a schedule.
type Notes struct {
	Summary       string `json:"summary"`
	RecoveryTip   string `json:"recoveryTip"`
	MealAlignment string `json:"mealAlignment"`
}

// Response is the weekly plan serialized back to API consumers. Insights is
// de-duplicated and preserves first-occurrence order.
type Response struct {
	Sessions []Session `json:"sessions"`
	Notes    Notes     `json:"notes"`
	Insights []string  `json:"insights"`
}
