package wellness

// Metric is one append-only wellness log entry. All readings are optional;
// the planner only ever inspects the most recent entry.
type Metric struct {
	Timestamp   string   `json:"timestamp"`
	Source      string   `json:"source,omitempty"`
	Steps       *int     `json:"steps,omitempty"`
	SleepHours  *float64 `json:"sleepHours,omitempty"`
	Readiness   *int     `json:"readiness,omitempty"`
	EnergyLevel string   `json:"energyLevel,omitempty"`
	Comment     string   `json:"comment,omitempty"`
}

// ImportPayload is the bulk ingestion body; Source is stamped onto every entry.
type ImportPayload struct {
	Source  string   `json:"source"`
	Entries []Metric `json:"entries"`
}
