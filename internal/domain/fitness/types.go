// Package fitness holds the enums shared by the planning domains.
package fitness

import "strings"

// Goal steers calorie modifiers, macro splits, and session cycles.
type Goal string

const (
	GoalFatLoss    Goal = "fat_loss"
	GoalMaintain   Goal = "maintain"
	GoalMuscleGain Goal = "muscle_gain"
)

// Valid reports whether the goal is one of the known values.
func (g Goal) Valid() bool {
	switch g {
	case GoalFatLoss, GoalMaintain, GoalMuscleGain:
		return true
	}
	return false
}

// OrDefault substitutes the maintain goal for an absent value.
func (g Goal) OrDefault() Goal {
	if g == "" {
		return GoalMaintain
	}
	return g
}

// Diet identifies the dietary preference used to filter meal candidates.
type Diet string

const (
	DietStandard    Diet = "standard"
	DietVegetarian  Diet = "vegetarian"
	DietVegan       Diet = "vegan"
	DietPescatarian Diet = "pescatarian"
	DietGlutenFree  Diet = "gluten_free"
)

// Valid reports whether the diet is one of the known values.
func (d Diet) Valid() bool {
	switch d {
	case DietStandard, DietVegetarian, DietVegan, DietPescatarian, DietGlutenFree:
		return true
	}
	return false
}

// OrDefault substitutes the standard diet for an absent value.
func (d Diet) OrDefault() Diet {
	if d == "" {
		return DietStandard
	}
	return d
}

// Label renders the diet for human facing text ("gluten_free" -> "gluten free").
func (d Diet) Label() string {
	return strings.ReplaceAll(string(d), "_", " ")
}

// Intensity grades a scheduled session.
type Intensity string

const (
	IntensityEasy     Intensity = "easy"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)
