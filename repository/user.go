package repository

import (
	"context"

	"github.com/aadarsh726/smart-life/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// AwardXP applies the XP amount and the level-up rule atomically under a
	// per-user row lock, returning the updated user.
	AwardXP(ctx context.Context, id string, amount int) (*domain.User, error)
}
