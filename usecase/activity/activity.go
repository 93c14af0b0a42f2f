package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
	"github.com/aadarsh726/smart-life/usecase"
)

type UseCase struct {
	activities repository.ActivityRepository
	buffer     usecase.OperationBuffer
	logger     *zap.Logger
}

func New(activities repository.ActivityRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		activities: activities,
		buffer:     buffer,
		logger:     logger,
	}
}

func (uc *UseCase) ListActivities(ctx context.Context, filter repository.ActivityFilter) ([]domain.ActivityLog, error) {
	if filter.Type != "" && !domain.ValidActivityType(filter.Type) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown activity type")
	}
	return uc.activities.List(ctx, filter)
}

func (uc *UseCase) LogActivity(ctx context.Context, activity *domain.ActivityLog) (*domain.ActivityLog, error) {
	if activity == nil {
		return nil, domain.ErrInvalidPayload
	}
	if !domain.ValidActivityType(activity.Type) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown activity type")
	}
	if err := domain.ValidateActivityData(activity.Type, activity.Data); err != nil {
		return nil, err
	}

	created, err := uc.activities.Create(ctx, activity)
	if err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferActivity(ctx, usecase.OperationCreate, activity); bufErr == nil {
				uc.logger.Warn("activity log buffered", zap.String("type", activity.Type))
				return activity, nil
			}
		}
		return nil, err
	}
	return created, nil
}
