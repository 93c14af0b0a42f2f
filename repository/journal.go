package repository

import (
	"context"

	"github.com/aadarsh726/smart-life/domain"
)

type JournalRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error)
	Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
}
