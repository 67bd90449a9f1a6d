package exerciserepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dawarpower/fitcoach-api/internal/domain/exercise"
)

// PostgresRepository persists exercises in Postgres.
//
// Expected schema:
//
//	CREATE TABLE IF NOT EXISTS exercises (
//	    id BIGSERIAL PRIMARY KEY,
//	    exercise_name TEXT NOT NULL,
//	    category TEXT NOT NULL,
//	    description TEXT NOT NULL,
//	    sets INT NOT NULL DEFAULT 0,
//	    reps INT NOT NULL DEFAULT 0,
//	    image TEXT NOT NULL DEFAULT ''
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) List(ctx context.Context) ([]exercise.Exercise, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, exercise_name, category, description, sets, reps, image
		FROM exercises
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []exercise.Exercise
	for rows.Next() {
		record, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, record exercise.Exercise) (exercise.Exercise, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO exercises (exercise_name, category, description, sets, reps, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, exercise_name, category, description, sets, reps, image
	`, record.ExerciseName, record.Category, record.Description, record.Sets, record.Reps, record.Image)
	return scanExercise(row)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (exercise.Exercise, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, exercise_name, category, description, sets, reps, image
		FROM exercises
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return exercise.Exercise{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return exercise.Exercise{}, false, rows.Err()
	}
	record, err := scanExercise(rows)
	if err != nil {
		return exercise.Exercise{}, false, err
	}
	return record, true, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, record exercise.Exercise) (exercise.Exercise, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE exercises
		SET exercise_name = $2, category = $3, description = $4, sets = $5, reps = $6, image = $7
		WHERE id = $1
		RETURNING id, exercise_name, category, description, sets, reps, image
	`, id, record.ExerciseName, record.Category, record.Description, record.Sets, record.Reps, record.Image)
	return scanExercise(row)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (exercise.Exercise, error) {
	var record exercise.Exercise
	err := row.Scan(&record.ID, &record.ExerciseName, &record.Category, &record.Description, &record.Sets, &record.Reps, &record.Image)
	return record, err
}

var _ exercise.Repository = (*PostgresRepository)(nil)
