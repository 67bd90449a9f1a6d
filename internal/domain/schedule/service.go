package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dawarpower/fitcoach-api/internal/domain/fitness"
	"github.com/dawarpower/fitcoach-api/internal/domain/wellness"
	apperrors "github.com/dawarpower/fitcoach-api/pkg/errors"
)

const (
	minSessionMinutes  = 20
	flexDayName        = "Flex Day"
	flexDayWindow      = "any window"
	flexDayFocus       = "Guided recovery + breathwork"
	lowImpactFocus     = "Low impact + mobility"
	coreStabilityFocus = "Core stability + posture"
)

// Service generates weekly schedules and resolves cached ones by fingerprint.
type Service interface {
	Generate(ctx context.Context, req Request) (Response, string, error)
	Lookup(ctx context.Context, fingerprint string) (Response, error)
	LookupByProfile(ctx context.Context, req Request) (Response, error)
}

// Store keeps generated schedules keyed by profile fingerprint.
type Store interface {
	Get(ctx context.Context, fingerprint string) (Response, bool, error)
	Save(ctx context.Context, fingerprint string, resp Response) error
}

// MetricSource reads the most recent wellness entry; the generator never
// touches anything older.
type MetricSource interface {
	Latest(ctx context.Context) (wellness.Metric, bool)
}

type service struct {
	store   Store
	metrics MetricSource
	logger  *slog.Logger
}

// NewService wires up the schedule domain.
func NewService(store Store, metrics MetricSource, logger *slog.Logger) Service {
	return &service{
		store:   store,
		metrics: metrics,
		logger:  logger.With("component", "schedule.service"),
	}
}

// Generate builds the plan, caches it under the profile fingerprint, and
// returns both. Identical requests plus an identical latest metric always
// produce an identical response, so concurrent writers are idempotent.
func (s *service) Generate(ctx context.Context, req Request) (Response, string, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return Response{}, "", err
	}

	fingerprint := Fingerprint(req)
	var latest *wellness.Metric
	if metric, ok := s.metrics.Latest(ctx); ok {
		latest = &metric
	}

	plan := buildPlan(req, latest)
	if err := s.store.Save(ctx, fingerprint, plan); err != nil {
		return Response{}, "", apperrors.Wrap("storage_error", "failed to store schedule", err)
	}

	s.logger.Info("schedule generated", "profileHash", fingerprint, "sessions", len(plan.Sessions), "goal", req.Goal)
	return plan, fingerprint, nil
}

func (s *service) Lookup(ctx context.Context, fingerprint string) (Response, error) {
	if strings.TrimSpace(fingerprint) == "" {
		return Response{}, apperrors.Wrap("invalid_input", "profileHash must not be empty", nil)
	}
	resp, ok, err := s.store.Get(ctx, fingerprint)
	if err != nil {
		return Response{}, apperrors.Wrap("storage_error", "failed to read schedule", err)
	}
	if !ok {
		return Response{}, apperrors.Wrap("not_found", "schedule not found for profile", nil)
	}
	return resp, nil
}

// LookupByProfile recomputes the fingerprint and fetches the cached schedule.
// It never regenerates.
func (s *service) LookupByProfile(ctx context.Context, req Request) (Response, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return Response{}, err
	}
	return s.Lookup(ctx, Fingerprint(req))
}

func normalizeRequest(req Request) (Request, error) {
	if req.Goal != "" && !req.Goal.Valid() {
		return Request{}, apperrors.Wrap("invalid_input", "goal must be one of fat_loss, maintain, muscle_gain", nil)
	}
	if req.DietPreference != "" && !req.DietPreference.Valid() {
		return Request{}, apperrors.Wrap("invalid_input", "dietPreference is not recognized", nil)
	}
	req.Goal = req.Goal.OrDefault()
	req.DietPreference = req.DietPreference.OrDefault()

	if req.Age != nil && (*req.Age < 10 || *req.Age > 100) {
		return Request{}, apperrors.Wrap("invalid_input", "age must be between 10 and 100", nil)
	}
	if req.CommuteMinutes != nil && (*req.CommuteMinutes < 0 || *req.CommuteMinutes > 240) {
		return Request{}, apperrors.Wrap("invalid_input", "commuteMinutes must be between 0 and 240", nil)
	}
	return req, nil
}

// buildPlan is the pure generator: one profile plus at most one wellness
// metric in, one weekly plan out.
func buildPlan(req Request, latest *wellness.Metric) Response {
	windows := pickWindows(req.PreferredWindows)
	equipment := preferredEquipment(req.EquipmentAccess)

	days := append([]string(nil), weekdays...)
	if containsString(windows, "weekend") {
		days = append(days, "Saturday")
	}

	base := 35
	if req.Goal == fitness.GoalFatLoss {
		base = 30
	}
	switch strings.ToLower(req.ActivityLevel) {
	case "sedentary":
		base -= 5
	case "high":
		base += 5
	}

	injuries := strings.ToLower(req.Injuries)
	kneeIssue := strings.Contains(injuries, "knee") || strings.Contains(injuries, "ankle")
	backIssue := strings.Contains(injuries, "back") || strings.Contains(injuries, "spine")

	readinessAdj, sleepAdj := 0, 0
	var insights []string
	if latest != nil && latest.Readiness != nil {
		switch {
		case *latest.Readiness < 60:
			readinessAdj = -5
			insights = append(insights, insightLowReadiness)
		case *latest.Readiness > 85:
			readinessAdj = 5
			insights = append(insights, insightHighReadiness)
		}
	}
	if latest != nil && latest.SleepHours != nil && *latest.SleepHours < 6 {
		sleepAdj = -5
		insights = append(insights, insightShortSleep)
	}

	focusCycle := goalFocusCycle[req.Goal]
	intensityCycle := goalIntensityCycle[req.Goal]

	sessions := make([]Session, 0, len(days)+1)
	for i, day := range days {
		focus := focusCycle[i%len(focusCycle)]
		intensity := intensityCycle[i%len(intensityCycle)]

		if kneeIssue && (strings.Contains(focus, "High") || intensity == fitness.IntensityHigh) {
			focus = lowImpactFocus
			intensity = fitness.IntensityModerate
		}
		if backIssue && strings.Contains(strings.ToLower(focus), "strength") {
			focus = coreStabilityFocus
			intensity = fitness.IntensityModerate
		}

		duration := base
		if intensity == fitness.IntensityHigh {
			duration += 5
		}
		duration += readinessAdj + sleepAdj
		if duration < minSessionMinutes {
			duration = minSessionMinutes
		}

		sessions = append(sessions, Session{
			Day:             day,
			Window:          friendlyWindow(windows[i%len(windows)]),
			Focus:           focus,
			DurationMinutes: duration,
			Equipment:       equipment,
			Intensity:       intensity,
		})
	}

	stress := strings.ToLower(req.StressLevel)
	if stress == "" {
		stress = "moderate"
	}
	switch stress {
	case "high":
		insights = append(insights, insightHighStress)
	case "low":
		insights = append(insights, insightLowStress)
	}

	if stress == "high" || readinessAdj < 0 {
		sessions = append(sessions, Session{
			Day:             flexDayName,
			Window:          flexDayWindow,
			Focus:           flexDayFocus,
			DurationMinutes: minSessionMinutes,
			Equipment:       defaultEquipment,
			Intensity:       fitness.IntensityEasy,
		})
		insights = append(insights, insightFlexDay)
	}

	return Response{
		Sessions: sessions,
		Notes: Notes{
			Summary:       summaryText(req, equipment, windows[0]),
			RecoveryTip:   recoveryTipFor(stress),
			MealAlignment: mealAlignmentText(req),
		},
		Insights: dedupe(insights),
	}
}

func pickWindows(preferred []string) []string {
	valid := make([]string, 0, len(preferred))
	for _, window := range preferred {
		if _, ok := windowLabels[window]; ok {
			valid = append(valid, window)
		}
	}
	if len(valid) == 0 {
		return defaultWindows
	}
	return valid
}

func friendlyWindow(windowKey string) string {
	if label, ok := windowLabels[windowKey]; ok {
		return label
	}
	return strings.ReplaceAll(windowKey, "_", " ")
}

func preferredEquipment(access []string) string {
	lowered := make(map[string]struct{}, len(access))
	for _, item := range access {
		lowered[strings.ToLower(item)] = struct{}{}
	}
	for _, candidate := range equipmentPriority {
		if _, ok := lowered[candidate.Key]; ok {
			return candidate.Label
		}
	}
	return defaultEquipment
}

func summaryText(req Request, equipment, firstWindow string) string {
	summary := fmt.Sprintf("Plan built around %s sessions in your %s window.", equipment, friendlyWindow(firstWindow))
	if req.WeightGoalShort != "" {
		summary += " Short-term focus: " + req.WeightGoalShort + "."
	}
	if req.WeightGoalLong != "" {
		summary += " Long-term aim: " + req.WeightGoalLong + "."
	}
	return summary
}

func mealAlignmentText(req Request) string {
	alignment := fmt.Sprintf("Meals lean toward %s options with matching protein targets.", req.DietPreference.Label())
	if req.DietaryRestrictions != "" {
		alignment += " Avoiding: " + req.DietaryRestrictions + "."
	}
	if req.DietaryPreferences != "" {
		alignment += " Highlighting favorites: " + req.DietaryPreferences + "."
	}
	return alignment
}

func containsString(items []string, needle string) bool {
	for _, item := range items {
		if item == needle {
			return true
		}
	}
	return false
}
