package schedule

import "github.com/dawarpower/fitcoach-api/internal/domain/fitness"

var windowLabels = map[string]string{
	"early_morning":  "early morning",
	"pre_work":       "before work",
	"midday":         "midday",
	"late_afternoon": "late afternoon",
	"evening":        "evening",
	"weekend":        "weekend focus",
}

var defaultWindows = []string{"early_morning", "midday", "evening"}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var goalFocusCycle = map[fitness.Goal][]string{
	fitness.GoalFatLoss:    {"Metabolic circuit", "Strength maintenance", "Cardio interval"},
	fitness.GoalMaintain:   {"Strength balance", "Mobility + core", "Conditioning mix"},
	fitness.GoalMuscleGain: {"Heavy strength", "Accessory build", "Recovery primer"},
}

var goalIntensityCycle = map[fitness.Goal][]fitness.Intensity{
	fitness.GoalFatLoss:    {fitness.IntensityModerate, fitness.IntensityModerate, fitness.IntensityHigh},
	fitness.GoalMaintain:   {fitness.IntensityModerate, fitness.IntensityEasy, fitness.IntensityModerate},
	fitness.GoalMuscleGain: {fitness.IntensityHigh, fitness.IntensityModerate, fitness.IntensityEasy},
}

// equipmentPriority is scanned in declaration order; the first tag present in
// the requested access set wins.
var equipmentPriority = []struct {
	Key   string
	Label string
}{
	{"full_gym", "full gym"},
	{"dumbbells", "dumbbells"},
	{"kettlebell", "kettlebell"},
	{"bands", "bands"},
	{"bodyweight", "bodyweight"},
	{"outdoors", "outdoor"},
}

const defaultEquipment = "bodyweight"
