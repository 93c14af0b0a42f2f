package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
)

type fixtures struct {
	user       *domain.User
	tasks      []domain.Task
	habits     []domain.Habit
	entries    []domain.JournalEntry
	activities []domain.ActivityLog
}

func (f *fixtures) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fixtures) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fixtures) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (f *fixtures) AwardXP(ctx context.Context, id string, amount int) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

type taskSource fixtures

func (s *taskSource) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return nil, domain.ErrTaskNotFound
}

func (s *taskSource) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return s.tasks, nil
}

func (s *taskSource) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return task, nil
}

func (s *taskSource) Update(ctx context.Context, task *domain.Task) error { return nil }

func (s *taskSource) Delete(ctx context.Context, id string) error { return nil }

type habitSource fixtures

func (s *habitSource) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return nil, domain.ErrHabitNotFound
}

func (s *habitSource) ListByUser(ctx context.Context, userID string) ([]domain.Habit, error) {
	return s.habits, nil
}

func (s *habitSource) Create(ctx context.Context, habit *domain.Habit) (*domain.Habit, error) {
	return habit, nil
}

func (s *habitSource) CheckIn(ctx context.Context, id string, now time.Time) (*domain.Habit, error) {
	return nil, domain.ErrHabitNotFound
}

type entrySource fixtures

func (s *entrySource) ListByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	return s.entries, nil
}

func (s *entrySource) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	return entry, nil
}

type activitySource fixtures

func (s *activitySource) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.ActivityLog, error) {
	var out []domain.ActivityLog
	for _, a := range s.activities {
		if !filter.Since.IsZero() && a.Date.Before(filter.Since) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *activitySource) Create(ctx context.Context, activity *domain.ActivityLog) (*domain.ActivityLog, error) {
	return activity, nil
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	done := now.Add(-time.Hour)
	f := &fixtures{
		user: &domain.User{ID: "u1", Level: 3, XP: 120},
		tasks: []domain.Task{
			{ID: "t1", Status: domain.StatusPending},
			{ID: "t2", Status: domain.StatusPending},
			{ID: "t3", Status: domain.StatusCompleted, CompletedAt: &done},
		},
		habits: []domain.Habit{
			{ID: "h1", Streak: 2},
			{ID: "h2", Streak: 9},
		},
		entries: []domain.JournalEntry{
			{MoodScore: 8, Date: now.AddDate(0, 0, -1)},
			{MoodScore: 4, Date: now.AddDate(0, 0, -2)},
			{MoodScore: 10, Date: now.AddDate(0, 0, -20)}, // outside the window
		},
		activities: []domain.ActivityLog{
			{Type: domain.ActivityMeal, Date: now.AddDate(0, 0, -1)},
			{Type: domain.ActivityMeal, Date: now.AddDate(0, 0, -3)},
			{Type: domain.ActivityWorkout, Date: now.AddDate(0, 0, -2)},
			{Type: domain.ActivityWorkout, Date: now.AddDate(0, 0, -30)}, // outside the window
		},
	}

	uc := New(f, (*taskSource)(f), (*habitSource)(f), (*entrySource)(f), (*activitySource)(f), nil)
	uc.now = func() time.Time { return now }

	summary, err := uc.Summarize(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.PendingTasks != 2 || summary.CompletedTasks != 1 {
		t.Errorf("expected 2 pending / 1 completed, got %d/%d", summary.PendingTasks, summary.CompletedTasks)
	}
	if summary.BestStreak != 9 {
		t.Errorf("expected best streak 9, got %d", summary.BestStreak)
	}
	if summary.AverageMood != 6 {
		t.Errorf("expected average mood 6 over the last week, got %v", summary.AverageMood)
	}
	if summary.WeeklyActivity[domain.ActivityMeal] != 2 || summary.WeeklyActivity[domain.ActivityWorkout] != 1 {
		t.Errorf("unexpected weekly activity: %v", summary.WeeklyActivity)
	}
	if summary.Level != 3 || summary.XP != 120 {
		t.Errorf("expected level/XP carried from the user row, got %d/%d", summary.Level, summary.XP)
	}
}

func TestSummarizeUnknownUser(t *testing.T) {
	f := &fixtures{}
	uc := New(f, (*taskSource)(f), (*habitSource)(f), (*entrySource)(f), (*activitySource)(f), nil)

	_, err := uc.Summarize(context.Background(), "ghost")
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestSummarizeNoMoodEntries(t *testing.T) {
	f := &fixtures{user: &domain.User{ID: "u1", Level: 1}}
	uc := New(f, (*taskSource)(f), (*habitSource)(f), (*entrySource)(f), (*activitySource)(f), nil)

	summary, err := uc.Summarize(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.AverageMood != 0 {
		t.Errorf("average mood with no entries must be 0, got %v", summary.AverageMood)
	}
}
