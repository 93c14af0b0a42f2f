package journal

import (
	"context"

	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
)

// Analyzer scores free text. Implemented by the ML service client.
type Analyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (moodScore int, label string, err error)
}

type UseCase struct {
	entries  repository.JournalRepository
	analyzer Analyzer
	logger   *zap.Logger
}

func New(entries repository.JournalRepository, analyzer Analyzer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		entries:  entries,
		analyzer: analyzer,
		logger:   logger,
	}
}

func (uc *UseCase) ListEntries(ctx context.Context, callerID string) ([]domain.JournalEntry, error) {
	return uc.entries.ListByUser(ctx, callerID)
}

// CreateEntry analyzes the content and persists the entry. Analyzer failure
// degrades to neutral defaults instead of failing the write: journaling stays
// available when the ML service is down.
func (uc *UseCase) CreateEntry(ctx context.Context, callerID, content string) (*domain.JournalEntry, error) {
	if content == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "content is required")
	}

	moodScore := domain.FallbackMoodScore
	label := domain.FallbackSentiment

	if uc.analyzer != nil {
		if score, got, err := uc.analyzer.AnalyzeSentiment(ctx, content); err != nil {
			uc.logger.Warn("sentiment analysis failed, using neutral defaults", zap.Error(err))
		} else {
			moodScore = score
			label = got
		}
	}

	entry := &domain.JournalEntry{
		UserID:         callerID,
		Content:        content,
		MoodScore:      moodScore,
		SentimentLabel: label,
	}
	return uc.entries.Create(ctx, entry)
}
