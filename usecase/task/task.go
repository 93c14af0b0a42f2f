package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/domain"
	applog "github.com/aadarsh726/smart-life/pkg/logger"
	"github.com/aadarsh726/smart-life/repository"
	"github.com/aadarsh726/smart-life/usecase"
)

// Patch carries a partial task update; nil fields are left untouched.
type Patch struct {
	Title    *string
	Category *string
	Priority *string
	Status   *string
	Deadline *time.Time
}

type UseCase struct {
	tasks  repository.TaskRepository
	users  repository.UserRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
	now    func() time.Time
}

func New(tasks repository.TaskRepository, users repository.UserRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		users:  users,
		buffer: buffer,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || task.Title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "title is required")
	}
	if task.Category == "" {
		task.Category = domain.CategoryOther
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.Status == "" {
		task.Status = domain.StatusPending
	}
	if !domain.ValidCategory(task.Category) || !domain.ValidPriority(task.Priority) || !domain.ValidStatus(task.Status) {
		return nil, domain.ErrInvalidPayload
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, task) {
			return task, nil
		}
		return nil, err
	}
	return created, nil
}

// UpdateTask applies a partial update after the ownership check. The
// Pending-to-Completed transition stamps completed_at and awards XP exactly
// once; re-completing an already completed task changes nothing and awards
// nothing.
func (uc *UseCase) UpdateTask(ctx context.Context, callerID, id string, patch Patch) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != callerID {
		return nil, domain.ErrNotOwner
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Category != nil {
		if !domain.ValidCategory(*patch.Category) {
			return nil, domain.ErrInvalidPayload
		}
		task.Category = *patch.Category
	}
	if patch.Priority != nil {
		if !domain.ValidPriority(*patch.Priority) {
			return nil, domain.ErrInvalidPayload
		}
		task.Priority = *patch.Priority
	}
	if patch.Deadline != nil {
		task.Deadline = patch.Deadline
	}

	completing := false
	if patch.Status != nil {
		if !domain.ValidStatus(*patch.Status) {
			return nil, domain.ErrInvalidPayload
		}
		if *patch.Status == domain.StatusCompleted && !task.IsCompleted() {
			completing = true
			now := uc.now().UTC()
			task.CompletedAt = &now
		}
		task.Status = *patch.Status
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	if completing {
		if _, err := uc.users.AwardXP(ctx, callerID, domain.XPPerTask); err != nil {
			// The task update already committed; losing the award is worth
			// logging but not failing the request over.
			applog.WithRequestID(ctx, uc.logger).Error("xp award failed",
				zap.String("user_id", callerID), zap.Error(err))
		}
	}

	return task, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, callerID, id string) error {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task.UserID != callerID {
		return domain.ErrNotOwner
	}
	return uc.tasks.Delete(ctx, id)
}

// PendingTasks returns the caller's not-yet-completed tasks, newest first.
func (uc *UseCase) PendingTasks(ctx context.Context, callerID string) ([]domain.Task, error) {
	return uc.tasks.List(ctx, repository.TaskFilter{
		UserID: callerID,
		Status: domain.StatusPending,
	})
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, task *domain.Task) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferTask(ctx, operation, task); err != nil {
		uc.logger.Error("failed to buffer task operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("task operation buffered", zap.String("operation", operation))
	return true
}
