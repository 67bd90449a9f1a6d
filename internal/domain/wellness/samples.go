package wellness

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// providerSamples back the provider endpoint when no remote URL is configured.
var providerSamples = map[string][]Metric{
	"apple_health": {
		{
			Timestamp:   "2024-10-01T07:30:00+00:00",
			Steps:       intPtr(10320),
			SleepHours:  floatPtr(7.8),
			Readiness:   intPtr(86),
			EnergyLevel: "steady",
			Comment:     "Desk day with morning run.",
		},
		{
			Timestamp:  "2024-09-30T07:30:00+00:00",
			Steps:      intPtr(8920),
			SleepHours: floatPtr(6.9),
			Readiness:  intPtr(74),
		},
	},
	"fitbit": {
		{
			Timestamp:   "2024-10-01T06:45:00+00:00",
			Steps:       intPtr(6520),
			SleepHours:  floatPtr(5.4),
			Readiness:   intPtr(58),
			EnergyLevel: "low",
			Comment:     "Flight delay – need recovery day",
		},
	},
	"whoop": {
		{
			Timestamp:   "2024-10-01T08:00:00+00:00",
			Readiness:   intPtr(72),
			EnergyLevel: "steady",
			Comment:     "Moderate strain 8.6 yesterday",
		},
	},
}
