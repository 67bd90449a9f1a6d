//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/dawarpower/fitcoach-api/internal/bootstrap"
	"github.com/dawarpower/fitcoach-api/internal/domain/coach"
	"github.com/dawarpower/fitcoach-api/internal/domain/mealplan"
	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
	"github.com/dawarpower/fitcoach-api/internal/infra/config"
	httpiface "github.com/dawarpower/fitcoach-api/internal/interface/http"
	"github.com/dawarpower/fitcoach-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAppState,
		provideScheduleStore,
		providePgxPool,
		provideExerciseRepository,
		provideUserRepository,
		provideExerciseService,
		provideUserService,
		provideMealPlanConfig,
		provideWellnessConfig,
		provideProviderClient,
		provideWellnessService,
		provideMetricSource,
		mealplan.NewService,
		schedule.NewService,
		coach.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
