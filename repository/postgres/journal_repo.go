package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
)

type journalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository returns a Postgres-backed implementation of JournalRepository.
func NewJournalRepository(pool *pgxpool.Pool) repository.JournalRepository {
	return &journalRepository{pool: pool}
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	const query = `
	SELECT id, user_id, content, mood_score, sentiment_label, date
	FROM journal_entries
	WHERE user_id = $1
	ORDER BY date DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if entry == nil {
		return nil, domain.ErrInvalidPayload
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO journal_entries (id, user_id, content, mood_score, sentiment_label)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING date
	`

	if err := r.pool.QueryRow(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Content,
		entry.MoodScore,
		entry.SentimentLabel,
	).Scan(&entry.Date); err != nil {
		return nil, err
	}

	return entry, nil
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	if err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Content,
		&entry.MoodScore,
		&entry.SentimentLabel,
		&entry.Date,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}
