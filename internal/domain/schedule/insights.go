package schedule

// Advisory strings derived from wellness and stress thresholds. The texts are
// fixed so clients and tests can match on them.
const (
	insightLowReadiness  = "Readiness is low, so sessions are trimmed by five minutes to bank recovery."
	insightHighReadiness = "High readiness detected, so five minutes were added to press the advantage."
	insightShortSleep    = "Sleep came in under six hours; durations are eased until rest rebounds."
	insightHighStress    = "Stress is running high, so breathwork and extra recovery are built in."
	insightLowStress     = "Stress is low. Green light to push the quality sessions."
	insightFlexDay       = "A Flex Day was appended to absorb fatigue without losing momentum."
)

const (
	recoveryTipHighStress = "High stress flagged—add an extra mobility or breath session after dinner."
	recoveryTipLowStress  = "Low stress. Keep one mobility check-in to stay ahead of tightness."
	recoveryTipModerate   = "Moderate stress. Mix in a short walk after lunch to reset energy."
)

// recoveryTipFor maps the stress bucket to its advisory text. Anything other
// than high/low is treated as moderate.
func recoveryTipFor(stress string) string {
	switch stress {
	case "high":
		return recoveryTipHighStress
	case "low":
		return recoveryTipLowStress
	default:
		return recoveryTipModerate
	}
}

// dedupe preserves first-occurrence order while removing duplicates and blanks.
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
