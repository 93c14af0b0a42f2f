package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/aadarsh726/smart-life/domain"
)

type fakeEntryRepo struct {
	entries []domain.JournalEntry
}

func (r *fakeEntryRepo) ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	entry.ID = "e1"
	r.entries = append(r.entries, *entry)
	return entry, nil
}

type stubAnalyzer struct {
	score int
	label string
	err   error
	calls int
}

func (a *stubAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (int, string, error) {
	a.calls++
	return a.score, a.label, a.err
}

func TestCreateEntryUsesAnalyzer(t *testing.T) {
	repo := &fakeEntryRepo{}
	analyzer := &stubAnalyzer{score: 8, label: domain.SentimentPositive}
	uc := New(repo, analyzer, nil)

	entry, err := uc.CreateEntry(context.Background(), "u1", "great day at work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.MoodScore != 8 || entry.SentimentLabel != domain.SentimentPositive {
		t.Errorf("expected analyzer result on entry, got score=%d label=%s", entry.MoodScore, entry.SentimentLabel)
	}
	if analyzer.calls != 1 {
		t.Errorf("expected one analyzer call, got %d", analyzer.calls)
	}
}

func TestCreateEntryAnalyzerFailureFallsBackNeutral(t *testing.T) {
	repo := &fakeEntryRepo{}
	analyzer := &stubAnalyzer{err: errors.New("connection refused")}
	uc := New(repo, analyzer, nil)

	entry, err := uc.CreateEntry(context.Background(), "u1", "rough day")
	if err != nil {
		t.Fatalf("analyzer failure must not fail the write: %v", err)
	}
	if entry.MoodScore != domain.FallbackMoodScore || entry.SentimentLabel != domain.FallbackSentiment {
		t.Errorf("expected neutral defaults, got score=%d label=%s", entry.MoodScore, entry.SentimentLabel)
	}
	if len(repo.entries) != 1 {
		t.Error("entry must still be persisted")
	}
}

func TestCreateEntryWithoutAnalyzer(t *testing.T) {
	uc := New(&fakeEntryRepo{}, nil, nil)

	entry, err := uc.CreateEntry(context.Background(), "u1", "note to self")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.MoodScore != domain.FallbackMoodScore || entry.SentimentLabel != domain.FallbackSentiment {
		t.Errorf("expected neutral defaults, got score=%d label=%s", entry.MoodScore, entry.SentimentLabel)
	}
}

func TestCreateEntryRequiresContent(t *testing.T) {
	uc := New(&fakeEntryRepo{}, &stubAnalyzer{}, nil)

	_, err := uc.CreateEntry(context.Background(), "u1", "")
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("expected INVALID, got %v", err)
	}
}

func TestListEntriesScopedToOwner(t *testing.T) {
	repo := &fakeEntryRepo{entries: []domain.JournalEntry{
		{ID: "e1", UserID: "u1"},
		{ID: "e2", UserID: "u2"},
	}}
	uc := New(repo, nil, nil)

	entries, err := uc.ListEntries(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "e1" {
		t.Errorf("expected only u1's entries, got %+v", entries)
	}
}
