package repository

import (
	"context"
	"time"

	"github.com/aadarsh726/smart-life/domain"
)

type HabitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Habit, error)
	Create(ctx context.Context, habit *domain.Habit) (*domain.Habit, error)
	// CheckIn records one daily check-in at the given instant. The row is
	// locked for the duration of the transaction so two concurrent calls on
	// the same day cannot both commit; the loser gets ErrAlreadyCheckedIn.
	CheckIn(ctx context.Context, id string, now time.Time) (*domain.Habit, error)
}
