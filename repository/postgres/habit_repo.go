package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
)

type habitRepository struct {
	pool *pgxpool.Pool
}

// NewHabitRepository returns a Postgres-backed implementation of HabitRepository.
func NewHabitRepository(pool *pgxpool.Pool) repository.HabitRepository {
	return &habitRepository{pool: pool}
}

func (r *habitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	const query = `
	SELECT id, user_id, title, frequency, streak, completed_dates, created_at
	FROM habits
	WHERE id = $1
	`
	return scanHabit(r.pool.QueryRow(ctx, query, id))
}

func (r *habitRepository) ListByUser(ctx context.Context, userID string) ([]domain.Habit, error) {
	const query = `
	SELECT id, user_id, title, frequency, streak, completed_dates, created_at
	FROM habits
	WHERE user_id = $1
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []domain.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *habit)
	}
	return habits, rows.Err()
}

func (r *habitRepository) Create(ctx context.Context, habit *domain.Habit) (*domain.Habit, error) {
	if habit == nil {
		return nil, domain.ErrInvalidPayload
	}
	if habit.ID == "" {
		habit.ID = uuid.NewString()
	}
	if habit.Frequency == "" {
		habit.Frequency = "daily"
	}

	const query = `
	INSERT INTO habits (id, user_id, title, frequency, streak, completed_dates)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		habit.ID,
		habit.UserID,
		habit.Title,
		habit.Frequency,
		habit.Streak,
		marshalDates(habit.CompletedDates),
	).Scan(&habit.CreatedAt); err != nil {
		return nil, err
	}

	return habit, nil
}

// CheckIn runs the daily-idempotent streak transition under a row lock. The
// lock serializes concurrent check-ins on one habit: the second caller sees
// today's date already recorded and gets ErrAlreadyCheckedIn instead of
// double-counting the streak.
func (r *habitRepository) CheckIn(ctx context.Context, id string, now time.Time) (*domain.Habit, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const selectQuery = `
	SELECT id, user_id, title, frequency, streak, completed_dates, created_at
	FROM habits
	WHERE id = $1
	FOR UPDATE
	`
	habit, err := scanHabit(tx.QueryRow(ctx, selectQuery, id))
	if err != nil {
		return nil, err
	}

	if err := habit.CheckIn(now); err != nil {
		return nil, err
	}

	const updateQuery = `
	UPDATE habits
	SET streak = $2, completed_dates = $3
	WHERE id = $1
	`
	if _, err := tx.Exec(ctx, updateQuery, habit.ID, habit.Streak, marshalDates(habit.CompletedDates)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return habit, nil
}

func scanHabit(row pgx.Row) (*domain.Habit, error) {
	var habit domain.Habit
	var dates []byte

	if err := row.Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Title,
		&habit.Frequency,
		&habit.Streak,
		&dates,
		&habit.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, err
	}

	habit.CompletedDates = unmarshalDates(dates)
	return &habit, nil
}
