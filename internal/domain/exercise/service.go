package exercise

import (
	"context"
	"log/slog"

	apperrors "github.com/dawarpower/fitcoach-api/pkg/errors"
)

// Repository abstracts the exercise record store.
type Repository interface {
	List(ctx context.Context) ([]Exercise, error)
	Create(ctx context.Context, record Exercise) (Exercise, error)
	Get(ctx context.Context, id int64) (Exercise, bool, error)
	Update(ctx context.Context, id int64, record Exercise) (Exercise, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service exposes exercise CRUD with validation.
type Service interface {
	List(ctx context.Context) ([]Exercise, error)
	Create(ctx context.Context, record Exercise) (Exercise, error)
	Get(ctx context.Context, id int64) (Exercise, error)
	Update(ctx context.Context, id int64, update Update) (Exercise, error)
	Delete(ctx context.Context, id int64) error
	Seed(ctx context.Context) error
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires up the exercise domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger.With("component", "exercise.service")}
}

func (s *service) List(ctx context.Context) ([]Exercise, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, record Exercise) (Exercise, error) {
	if err := validate(record); err != nil {
		return Exercise{}, err
	}
	record.ID = 0
	return s.repo.Create(ctx, record)
}

func (s *service) Get(ctx context.Context, id int64) (Exercise, error) {
	record, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return Exercise{}, err
	}
	if !ok {
		return Exercise{}, apperrors.Wrap("not_found", "exercise not found", nil)
	}
	return record, nil
}

func (s *service) Update(ctx context.Context, id int64, update Update) (Exercise, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return Exercise{}, err
	}
	updated := update.apply(record)
	if err := validate(updated); err != nil {
		return Exercise{}, err
	}
	return s.repo.Update(ctx, id, updated)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Wrap("not_found", "exercise not found", nil)
	}
	return nil
}

// Seed loads the starter records into an empty store.
func (s *service) Seed(ctx context.Context) error {
	existing, err := s.repo.List(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	samples := []Exercise{
		{
			ExerciseName: "Push Ups",
			Category:     "Chest",
			Description:  "Bodyweight push exercise to strengthen the chest and triceps.",
			Sets:         3,
			Reps:         12,
		},
		{
			ExerciseName: "Squats",
			Category:     "Legs",
			Description:  "Compound lower body movement targeting quads and glutes.",
			Sets:         4,
			Reps:         10,
		},
	}
	for _, sample := range samples {
		if _, err := s.repo.Create(ctx, sample); err != nil {
			return err
		}
	}
	s.logger.Info("exercise store seeded", "count", len(samples))
	return nil
}

func validate(record Exercise) error {
	if record.ExerciseName == "" {
		return apperrors.Wrap("invalid_input", "exerciseName must not be empty", nil)
	}
	if record.Category == "" {
		return apperrors.Wrap("invalid_input", "category must not be empty", nil)
	}
	if record.Description == "" {
		return apperrors.Wrap("invalid_input", "description must not be empty", nil)
	}
	if record.Sets < 0 || record.Reps < 0 {
		return apperrors.Wrap("invalid_input", "sets and reps must not be negative", nil)
	}
	return nil
}
