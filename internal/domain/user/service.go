package user

import (
	"context"
	"log/slog"

	"github.com/dawarpower/fitcoach-api/internal/domain/exercise"
	apperrors "github.com/dawarpower/fitcoach-api/pkg/errors"
)

// Repository abstracts the user record store.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, record User) (User, error)
	Get(ctx context.Context, id int64) (User, bool, error)
	Update(ctx context.Context, id int64, record User) (User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service exposes user CRUD with validation.
type Service interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, record User) (User, error)
	Get(ctx context.Context, id int64) (User, error)
	Update(ctx context.Context, id int64, update Update) (User, error)
	Delete(ctx context.Context, id int64) error
	Seed(ctx context.Context, exercises exercise.Service) error
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires up the user domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger.With("component", "user.service")}
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, record User) (User, error) {
	if err := validate(record); err != nil {
		return User{}, err
	}
	record.UserID = 0
	return s.repo.Create(ctx, record)
}

func (s *service) Get(ctx context.Context, id int64) (User, error) {
	record, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, apperrors.Wrap("not_found", "user not found", nil)
	}
	return record, nil
}

func (s *service) Update(ctx context.Context, id int64, update Update) (User, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return User{}, err
	}
	updated := update.apply(record)
	if err := validate(updated); err != nil {
		return User{}, err
	}
	return s.repo.Update(ctx, id, updated)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Wrap("not_found", "user not found", nil)
	}
	return nil
}

// Seed creates the starter user, attached to the first seeded exercise.
func (s *service) Seed(ctx context.Context, exercises exercise.Service) error {
	existing, err := s.repo.List(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}

	var linked *exercise.Exercise
	if records, err := exercises.List(ctx); err == nil && len(records) > 0 {
		linked = &records[0]
	}

	_, err = s.repo.Create(ctx, User{
		Name:     "Avery Patel",
		Email:    "avery@example.com",
		Password: "demo",
		Exercise: linked,
	})
	if err == nil {
		s.logger.Info("user store seeded")
	}
	return err
}

func validate(record User) error {
	if record.Name == "" {
		return apperrors.Wrap("invalid_input", "name must not be empty", nil)
	}
	if len(record.Email) < 3 {
		return apperrors.Wrap("invalid_input", "email must be at least 3 characters", nil)
	}
	if record.Password == "" {
		return apperrors.Wrap("invalid_input", "password must not be empty", nil)
	}
	return nil
}
