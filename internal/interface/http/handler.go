package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dawarpower/fitcoach-api/internal/domain/coach"
	"github.com/dawarpower/fitcoach-api/internal/domain/exercise"
	"github.com/dawarpower/fitcoach-api/internal/domain/mealplan"
	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
	"github.com/dawarpower/fitcoach-api/internal/domain/user"
	"github.com/dawarpower/fitcoach-api/internal/domain/wellness"
	apperrors "github.com/dawarpower/fitcoach-api/pkg/errors"
)

const defaultWellnessLimit = 20

// Handler wires the HTTP transport to domain services.
type Handler struct {
	exerciseSvc exercise.Service
	userSvc     user.Service
	mealPlanSvc mealplan.Service
	scheduleSvc schedule.Service
	coachSvc    coach.Service
	wellnessSvc wellness.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	exerciseSvc exercise.Service,
	userSvc user.Service,
	mealPlanSvc mealplan.Service,
	scheduleSvc schedule.Service,
	coachSvc coach.Service,
	wellnessSvc wellness.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		exerciseSvc: exerciseSvc,
		userSvc:     userSvc,
		mealPlanSvc: mealPlanSvc,
		scheduleSvc: scheduleSvc,
		coachSvc:    coachSvc,
		wellnessSvc: wellnessSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// --- exercises ---

func (h *Handler) ListExercises(c *gin.Context) {
	records, err := h.exerciseSvc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, toHTTPError(err, "exercise_failed"))
		return
	}
	if records == nil {
		records = []exercise.Exercise{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) CreateExercise(c *gin.Context) {
	var record exercise.Exercise
	if err := c.ShouldBindJSON(&record); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	created, err := h.exerciseSvc.Create(c.Request.Context(), record)
	if err != nil {
		abortWithError(c, toHTTPError(err, "exercise_failed"))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetExercise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	record, err := h.exerciseSvc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, toHTTPError(err, "exercise_failed"))
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) UpdateExercise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var update exercise.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	record, err := h.exerciseSvc.Update(c.Request.Context(), id, update)
	if err != nil {
		abortWithError(c, toHTTPError(err, "exercise_failed"))
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) DeleteExercise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.exerciseSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, toHTTPError(err, "exercise_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- users ---

func (h *Handler) ListUsers(c *gin.Context) {
	records, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, toHTTPError(err, "user_failed"))
		return
	}
	if records == nil {
		records = []user.User{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var record user.User
	if err := c.ShouldBindJSON(&record); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	created, err := h.userSvc.Create(c.Request.Context(), record)
	if err != nil {
		abortWithError(c, toHTTPError(err, "user_failed"))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	record, err := h.userSvc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, toHTTPError(err, "user_failed"))
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var update user.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	record, err := h.userSvc.Update(c.Request.Context(), id, update)
	if err != nil {
		abortWithError(c, toHTTPError(err, "user_failed"))
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.userSvc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, toHTTPError(err, "user_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- meal plans ---

// SampleMealPlan returns the plan for an all-defaults request.
func (h *Handler) SampleMealPlan(c *gin.Context) {
	resp, err := h.mealPlanSvc.Generate(c.Request.Context(), mealplan.Request{})
	if err != nil {
		abortWithError(c, toHTTPError(err, "meal_plan_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GenerateMealPlan(c *gin.Context) {
	var req mealplan.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.mealPlanSvc.Generate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, toHTTPError(err, "meal_plan_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- schedules ---

// GenerateSchedule builds a plan and caches it under the profile fingerprint.
func (h *Handler) GenerateSchedule(c *gin.Context) {
	var req schedule.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, _, err := h.scheduleSvc.Generate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, toHTTPError(err, "schedule_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FetchSchedule returns a cached plan by its fingerprint.
func (h *Handler) FetchSchedule(c *gin.Context) {
	fingerprint := c.Query("profileHash")
	if fingerprint == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "profileHash query parameter is required", nil))
		return
	}
	resp, err := h.scheduleSvc.Lookup(c.Request.Context(), fingerprint)
	if err != nil {
		abortWithError(c, toHTTPError(err, "schedule_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FetchScheduleByProfile recomputes the fingerprint from a full profile and
// returns the cached plan without regenerating it.
func (h *Handler) FetchScheduleByProfile(c *gin.Context) {
	var req schedule.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.scheduleSvc.LookupByProfile(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, toHTTPError(err, "schedule_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- coach ---

func (h *Handler) CoachRecommendation(c *gin.Context) {
	var req coach.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.coachSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, toHTTPError(err, "coach_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- wellness ---

func (h *Handler) RecordWellness(c *gin.Context) {
	var metric wellness.Metric
	if err := c.ShouldBindJSON(&metric); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if err := h.wellnessSvc.Record(c.Request.Context(), metric); err != nil {
		abortWithError(c, toHTTPError(err, "wellness_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

func (h *Handler) ListWellness(c *gin.Context) {
	limit := defaultWellnessLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be an integer", err))
			return
		}
		limit = parsed
	}
	c.JSON(http.StatusOK, h.wellnessSvc.List(c.Request.Context(), limit))
}

func (h *Handler) ImportWellness(c *gin.Context) {
	var payload wellness.ImportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	count, err := h.wellnessSvc.Import(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, toHTTPError(err, "wellness_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "imported", "count": strconv.Itoa(count)})
}

func (h *Handler) FetchWellnessProvider(c *gin.Context) {
	provider := c.Param("provider")
	entries, err := h.wellnessSvc.FetchProvider(c.Request.Context(), provider)
	if err != nil {
		abortWithError(c, toHTTPError(err, "wellness_failed"))
		return
	}
	if entries == nil {
		entries = []wellness.Metric{}
	}
	c.JSON(http.StatusOK, entries)
}

// --- helpers ---

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", name+" must be an integer", err))
		return 0, false
	}
	return id, true
}

// toHTTPError maps domain error codes onto transport status codes.
func toHTTPError(err error, fallbackCode string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "not_found"):
		status = http.StatusNotFound
		code = "not_found"
	case apperrors.IsCode(err, "provider_error"):
		status = http.StatusBadGateway
		code = "provider_error"
	case apperrors.IsCode(err, "storage_error"):
		status = http.StatusInternalServerError
		code = "storage_error"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
