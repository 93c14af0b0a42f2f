package repository

import (
	"context"
	"time"

	"github.com/aadarsh726/smart-life/domain"
)

type ActivityFilter struct {
	UserID string
	Type   string
	Since  time.Time
}

type ActivityRepository interface {
	List(ctx context.Context, filter ActivityFilter) ([]domain.ActivityLog, error)
	Create(ctx context.Context, activity *domain.ActivityLog) (*domain.ActivityLog, error)
}
