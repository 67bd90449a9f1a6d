package schedule

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Fingerprint canonicalizes a request into a stable SHA-1 hex digest used as
// the schedule cache key. List fields are sorted so ordering never changes the
// key; absent optionals serialize as the empty string. The "|" delimiter and
// the field order are load-bearing: stored schedules are keyed by this exact
// layout.
func Fingerprint(req Request) string {
	fields := []string{
		req.FullName,
		req.Occupation,
		req.WorkStyle,
		req.Timezone,
		string(req.Goal.OrDefault()),
		joinSorted(req.PreferredWindows),
		joinSorted(req.EquipmentAccess),
		string(req.DietPreference.OrDefault()),
		strconv.Itoa(intOrZero(req.CommuteMinutes)),
		req.StressLevel,
		intOrEmpty(req.Age),
		req.Gender,
		req.ActivityLevel,
		req.Injuries,
		req.DietaryRestrictions,
		req.DietaryAllergies,
		req.DietaryPreferences,
		req.Supplements,
		req.WeightGoalShort,
		req.WeightGoalLong,
	}

	digest := sha1.Sum([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(digest[:])
}

func joinSorted(items []string) string {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
