package userrepo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dawarpower/fitcoach-api/internal/domain/exercise"
	"github.com/dawarpower/fitcoach-api/internal/domain/user"
)

// PostgresRepository persists users in Postgres. The linked exercise is
// stored denormalized as JSONB so a user survives exercise deletion.
//
// Expected schema:
//
//	CREATE TABLE IF NOT EXISTS users (
//	    user_id BIGSERIAL PRIMARY KEY,
//	    name TEXT NOT NULL,
//	    email TEXT NOT NULL,
//	    password TEXT NOT NULL,
//	    exercise JSONB
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, name, email, password, exercise
		FROM users
		ORDER BY user_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		record, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, record user.User) (user.User, error) {
	payload, err := encodeExercise(record.Exercise)
	if err != nil {
		return user.User{}, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password, exercise)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, name, email, password, exercise
	`, record.Name, record.Email, record.Password, payload)
	return scanUser(row)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (user.User, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, name, email, password, exercise
		FROM users
		WHERE user_id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return user.User{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return user.User{}, false, rows.Err()
	}
	record, err := scanUser(rows)
	if err != nil {
		return user.User{}, false, err
	}
	return record, true, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, record user.User) (user.User, error) {
	payload, err := encodeExercise(record.Exercise)
	if err != nil {
		return user.User{}, err
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $2, email = $3, password = $4, exercise = $5
		WHERE user_id = $1
		RETURNING user_id, name, email, password, exercise
	`, id, record.Name, record.Email, record.Password, payload)
	return scanUser(row)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (user.User, error) {
	var record user.User
	var payload []byte
	if err := row.Scan(&record.UserID, &record.Name, &record.Email, &record.Password, &payload); err != nil {
		return user.User{}, err
	}
	if len(payload) > 0 {
		var linked exercise.Exercise
		if err := json.Unmarshal(payload, &linked); err != nil {
			return user.User{}, err
		}
		record.Exercise = &linked
	}
	return record, nil
}

func encodeExercise(linked *exercise.Exercise) ([]byte, error) {
	if linked == nil {
		return nil, nil
	}
	return json.Marshal(linked)
}

var _ user.Repository = (*PostgresRepository)(nil)
