package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
)

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a Postgres-backed implementation of ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) repository.ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.ActivityLog, error) {
	const query = `
	SELECT id, user_id, type, data, date, created_at
	FROM activity_logs
	WHERE user_id = $1
	  AND ($2 = '' OR type = $2)
	  AND ($3::timestamptz IS NULL OR date >= $3)
	ORDER BY date DESC
	`
	var since interface{}
	if !filter.Since.IsZero() {
		since = filter.Since
	}

	rows, err := r.pool.Query(ctx, query, filter.UserID, filter.Type, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.ActivityLog
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, rows.Err()
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.ActivityLog) (*domain.ActivityLog, error) {
	if activity == nil {
		return nil, domain.ErrInvalidPayload
	}
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.Date.IsZero() {
		activity.Date = time.Now().UTC()
	}

	const query = `
	INSERT INTO activity_logs (id, user_id, type, data, date)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		activity.ID,
		activity.UserID,
		activity.Type,
		[]byte(activity.Data),
		activity.Date,
	).Scan(&activity.CreatedAt); err != nil {
		return nil, err
	}

	return activity, nil
}

func scanActivity(row pgx.Row) (*domain.ActivityLog, error) {
	var activity domain.ActivityLog
	var data []byte

	if err := row.Scan(
		&activity.ID,
		&activity.UserID,
		&activity.Type,
		&data,
		&activity.Date,
		&activity.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}

	activity.Data = json.RawMessage(data)
	return &activity, nil
}
