package schedule

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dawarpower/fitcoach-api/internal/domain/fitness"
)

var sha1Hex = regexp.MustCompile(`^[0-9a-f]{40}$`)

func TestFingerprintShape(t *testing.T) {
	fp := Fingerprint(Request{})
	require.Regexp(t, sha1Hex, fp)
}

func TestFingerprintIgnoresListOrder(t *testing.T) {
	a := Request{
		FullName:         "Jordan",
		PreferredWindows: []string{"evening", "midday"},
		EquipmentAccess:  []string{"dumbbells", "bands"},
	}
	b := Request{
		FullName:         "Jordan",
		PreferredWindows: []string{"midday", "evening"},
		EquipmentAccess:  []string{"bands", "dumbbells"},
	}
	require.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintChangesWithScalarField(t *testing.T) {
	base := Request{FullName: "Jordan", Goal: fitness.GoalMaintain}
	changed := base
	changed.StressLevel = "high"
	require.NotEqual(t, Fingerprint(base), Fingerprint(changed))
}

func TestFingerprintTreatsAbsentOptionalsAsEmpty(t *testing.T) {
	zero := 0
	withZeroCommute := Request{CommuteMinutes: &zero}
	require.Equal(t, Fingerprint(Request{}), Fingerprint(withZeroCommute))

	age := 34
	withAge := Request{Age: &age}
	require.NotEqual(t, Fingerprint(Request{}), Fingerprint(withAge))
}

func TestFingerprintAppliesEnumDefaults(t *testing.T) {
	require.Equal(t,
		Fingerprint(Request{}),
		Fingerprint(Request{Goal: fitness.GoalMaintain, DietPreference: fitness.DietStandard}))
}
