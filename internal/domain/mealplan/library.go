package mealplan

import "github.com/dawarpower/fitcoach-api/internal/domain/fitness"

// mealLibrary is the static catalog every plan draws from. Entries keep their
// declaration order; candidate ranking relies on it for tie breaking.
var mealLibrary = []LibraryEntry{
	{
		MealIdea: MealIdea{
			Name:        "Berry Protein Overnight Oats",
			MealType:    "Breakfast",
			Calories:    380,
			Protein:     28,
			Carbs:       46,
			Fat:         11,
			PrepTime:    5,
			Description: "Rolled oats soaked overnight with Greek yogurt, chia, berries, and almond butter.",
			Tags:        []string{"fiber-rich", "prep ahead"},
		},
		Diets: []fitness.Diet{fitness.DietStandard, fitness.DietVegetarian},
	},
	{
		MealIdea: MealIdea{
			Name:        "Avocado Tofu Scramble Wrap",
			MealType:    "Breakfast",
			Calories:    340,
			Protein:     24,
			Carbs:       38,
			Fat:         12,
			PrepTime:    12,
			Description: "Tofu scramble with spinach, peppers, and avocado tucked into a whole-grain wrap.",
			Tags:        []string{"plant-based", "high protein"},
		},
		Diets: []fitness.Diet{fitness.DietVegetarian, fitness.DietVegan},
	},
	{
		MealIdea: MealIdea{
			Name:        "Smoked Salmon Power Toast",
			MealType:    "Breakfast",
			Calories:    360,
			Protein:     30,
			Carbs:       28,
			Fat:         15,
			PrepTime:    8,
			Description: "Smoked salmon, whipped cottage cheese, capers, and arugula over rye bread.",
			Tags:        []string{"omega-3", "quick"},
		},
		Diets: []fitness.Diet{fitness.DietStandard, fitness.DietPescatarian},
	},
	{
		MealIdea: MealIdea{
			Name:        "Grilled Chicken Power Bowl",
			MealType:    "Lunch",
			Calories:    520,
			Protein:     46,
			Carbs:       48,
			Fat:         18,
			PrepTime:    20,
			Description: "Grilled chicken with roasted sweet potatoes, quinoa, kale, and citrus vinaigrette.",
			Tags:        []string{"meal-prep friendly"},
		},
		Diets: []fitness.Diet{fitness.DietStandard, fitness.DietGlutenFree},
	},
	{
		MealIdea: MealIdea{
			Name:        "Mediterranean Quinoa Crunch",
			MealType:    "Lunch",
			Calories:    480,
			Protein:     21,
			Carbs:       57,
			Fat:         18,
			PrepTime:    18,
			Description: "Quinoa tossed with chickpeas, cucumbers, roasted peppers, olives, and feta.",
			Tags:        []string{"anti-inflammatory"},
		},
		Diets: []fitness.Diet{fitness.DietStandard, fitness.DietVegetarian},
	},
	{
		MealIdea: MealIdea{
			Name:        "Spiced Lentil & Veggie Bowl",
			MealType:    "Lunch",
			Calories:    450,
			Protein:     24,
			Carbs:       60,
			Fat:         12,
			PrepTime:    22,
			Description: "Warm lentils, roasted cauliflower, turmeric carrots, and tahini drizzle.",
			Tags:        []string{"plant-based protein"},
		},
		Diets: []fitness.Diet{fitness.DietVegetarian, fitness.DietVegan, fitness.DietGlutenFree},
	},
	{
		MealIdea: MealIdea{
			Name:        "Miso Glazed Salmon Bowl",
			MealType:    "Dinner",
			Calories:    610,
			Protein:     44,
			Carbs:       52,
			Fat:         24,
			PrepTime:    25,
			Description: "Broiled salmon with brown rice, sesame greens, and pickled cucumbers.",
			Tags:        []string{"omega-3", "recovery"},
		},
		Diets: []fitness.Diet{fitness.DietStandard, fitness.DietPescatarian, fitness.DietGlutenFree},
	},
	{
		MealIdea: MealIdea{
			Name:        "Turkey & Sweet Potato Skillet",
			MealType:    "Dinner",
			Calories:    560,
			Protein:     42,
			Carbs:       49,
			Fat:         19,
			PrepTime:    28,
			Description: "Ground turkey sautéed with sweet potato, kale, and smoky spices.",
			Tags:        []string{"family style"},
		},
		Diets: []fitness.Diet{fitness.DietStandard, fitness.DietGlutenFree},
	},
	{
		MealIdea: MealIdea{
			Name:        "Coconut Red Lentil Curry",
			MealType:    "Dinner",
			Calories:    520,
			Protein:     26,
			Carbs:       62,
			Fat:         18,
			PrepTime:    30,
			Description: "Creamy coconut curry with red lentils, spinach, and basmati rice.",
			Tags:        []string{"comfort", "plant-based"},
		},
		Diets: []fitness.Diet{fitness.DietVegetarian, fitness.DietVegan, fitness.DietGlutenFree},
	},
	{
		MealIdea: MealIdea{
			Name:        "Greek Yogurt Power Parfait",
			MealType:    "Snack",
			Calories:    220,
			Protein:     20,
			Carbs:       26,
			Fat:         5,
			PrepTime:    3,
			Description: "Greek yogurt layered with berries, hemp seeds, and cacao nibs.",
			Tags:        []string{"high protein", "sweet tooth"},
		},
		Diets: []fitness.Diet{fitness.DietStandard, fitness.DietVegetarian},
	},
	{
		MealIdea: MealIdea{
			Name:        "Berry Beet Recovery Smoothie",
			MealType:    "Snack",
			Calories:    240,
			Protein:     21,
			Carbs:       32,
			Fat:         6,
			PrepTime:    5,
			Description: "Whey or pea protein blended with beets, berries, and coconut water.",
			Tags:        []string{"post-workout"},
		},
		Diets: []fitness.Diet{fitness.DietStandard, fitness.DietVegetarian, fitness.DietVegan, fitness.DietGlutenFree},
	},
	{
		MealIdea: MealIdea{
			Name:        "Roasted Chickpea Trail Mix",
			MealType:    "Snack",
			Calories:    260,
			Protein:     12,
			Carbs:       28,
			Fat:         11,
			PrepTime:    10,
			Description: "Crunchy chickpeas with almonds, pumpkin seeds, and dried cherries.",
			Tags:        []string{"portable"},
		},
		Diets: []fitness.Diet{fitness.DietVegetarian, fitness.DietVegan, fitness.DietGlutenFree},
	},
}

// mealTypes fixes the order meals are placed within a day.
var mealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

var mealSplits = map[string]float64{
	"Breakfast": 0.25,
	"Lunch":     0.30,
	"Dinner":    0.30,
	"Snack":     0.15,
}

var goalCalorieModifiers = map[fitness.Goal]float64{
	fitness.GoalFatLoss:    0.85,
	fitness.GoalMaintain:   1.00,
	fitness.GoalMuscleGain: 1.15,
}

var hydrationGuide = map[fitness.Goal]int{
	fitness.GoalFatLoss:    10,
	fitness.GoalMaintain:   9,
	fitness.GoalMuscleGain: 12,
}

// macroSplit expresses the share of daily calories per macro [protein, carbs, fat].
type macroSplit struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

var goalMacroSplits = map[fitness.Goal]macroSplit{
	fitness.GoalFatLoss:    {Protein: 0.35, Carbs: 0.35, Fat: 0.30},
	fitness.GoalMaintain:   {Protein: 0.30, Carbs: 0.40, Fat: 0.30},
	fitness.GoalMuscleGain: {Protein: 0.30, Carbs: 0.45, Fat: 0.25},
}

var dayFocus = []string{
	"High-energy training day support",
	"Balanced fuel for accessory work",
	"Recovery-forward nourishment",
	"Micro-cycle reset",
	"Performance push day",
}

var dietHighlights = map[fitness.Diet][]string{
	fitness.DietStandard:    {"Lean proteins", "Slow carbs", "Colorful veggies"},
	fitness.DietVegetarian:  {"Plant proteins", "Fermented dairy", "Iron-rich greens"},
	fitness.DietVegan:       {"Complete plant proteins", "Healthy fats", "Vitamin B12 sources"},
	fitness.DietPescatarian: {"Omega-3 rich fish", "Seasonal produce", "Mineral-dense sides"},
	fitness.DietGlutenFree:  {"Naturally gluten-free grains", "Colorful produce", "Gut-friendly fibers"},
}

var goalTips = map[fitness.Goal][]string{
	fitness.GoalFatLoss: {
		"Anchor each meal with 25-30g of protein to stay satiated.",
		"Stack veggies at lunch for volume without the bloat.",
		"Keep snacks focused on lean protein + fiber combos.",
	},
	fitness.GoalMaintain: {
		"Balance plates with protein, color, and complex carbs.",
		"Use snacks to bridge longer gaps between sessions.",
		"Stay hydrated and salt meals around training windows.",
	},
	fitness.GoalMuscleGain: {
		"Include a slow-carb and healthy fat in every main meal.",
		"Add an evening protein-rich snack to support recovery.",
		"Sip electrolytes when sessions run longer than 60 minutes.",
	},
}

// dayTipBank and hydrationPromptBank are cycled independently by day index
// and joined into one coach tip per day.
var dayTipBank = []string{
	"Front-load protein early so afternoon energy stays level.",
	"Cook once, portion twice: tomorrow's lunch comes from tonight's dinner.",
	"Take a ten minute walk after your largest meal.",
	"Note how each meal lands; swap anything that leaves you sluggish.",
	"Keep one meal flexible for real life.",
}

var hydrationPromptBank = []string{
	"Spread %d cups of water across the day.",
	"Aim for %d cups of water, most of it before the evening.",
	"Target %d cups of water and add a pinch of salt around training.",
}
