package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dawarpower/fitcoach-api/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	fit := router.Group("/fit")
	{
		fit.GET("/exercise", handler.ListExercises)
		fit.POST("/exercise", handler.CreateExercise)
		fit.GET("/exercise/:id", handler.GetExercise)
		fit.PUT("/exercise/:id", handler.UpdateExercise)
		fit.DELETE("/exercise/:id", handler.DeleteExercise)

		fit.GET("/user", handler.ListUsers)
		fit.POST("/user", handler.CreateUser)
		fit.GET("/user/:id", handler.GetUser)
		fit.PUT("/user/:id", handler.UpdateUser)
		fit.DELETE("/user/:id", handler.DeleteUser)

		fit.GET("/meal-plan", handler.SampleMealPlan)
		fit.POST("/meal-plan", handler.GenerateMealPlan)

		fit.POST("/schedule", handler.GenerateSchedule)
		fit.GET("/schedule", handler.FetchSchedule)
		fit.POST("/schedule/fetch", handler.FetchScheduleByProfile)

		fit.POST("/coach/recommendation", handler.CoachRecommendation)

		fit.POST("/wellness-sync", handler.RecordWellness)
		fit.GET("/wellness-sync", handler.ListWellness)
		fit.POST("/wellness-sync/import", handler.ImportWellness)
		fit.GET("/wellness-sync/provider/:provider", handler.FetchWellnessProvider)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds(), "request_id", c.GetString("request_id"))
	}
}
