package habit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
)

type UseCase struct {
	habits repository.HabitRepository
	logger *zap.Logger
	now    func() time.Time
}

func New(habits repository.HabitRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		habits: habits,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *UseCase) ListHabits(ctx context.Context, callerID string) ([]domain.Habit, error) {
	return uc.habits.ListByUser(ctx, callerID)
}

func (uc *UseCase) CreateHabit(ctx context.Context, habit *domain.Habit) (*domain.Habit, error) {
	if habit == nil || habit.Title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "title is required")
	}
	return uc.habits.Create(ctx, habit)
}

// CheckIn records today's check-in for the caller's habit. The ownership check
// happens here at the API boundary; the repository serializes the actual
// transition per habit.
func (uc *UseCase) CheckIn(ctx context.Context, callerID, habitID string) (*domain.Habit, error) {
	habit, err := uc.habits.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != callerID {
		return nil, domain.ErrNotOwner
	}

	checked, err := uc.habits.CheckIn(ctx, habitID, uc.now())
	if err != nil {
		return nil, err
	}
	uc.logger.Info("habit checked in",
		zap.String("habit_id", habitID),
		zap.Int("streak", checked.Streak))
	return checked, nil
}
