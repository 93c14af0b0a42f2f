package habit

import (
	"context"
	"testing"
	"time"

	"github.com/aadarsh726/smart-life/domain"
)

type fakeHabitRepo struct {
	habits map[string]*domain.Habit
}

func newFakeHabitRepo(habits ...*domain.Habit) *fakeHabitRepo {
	repo := &fakeHabitRepo{habits: map[string]*domain.Habit{}}
	for _, h := range habits {
		copied := *h
		repo.habits[h.ID] = &copied
	}
	return repo
}

func (r *fakeHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	h, ok := r.habits[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	copied := *h
	return &copied, nil
}

func (r *fakeHabitRepo) ListByUser(ctx context.Context, userID string) ([]domain.Habit, error) {
	var out []domain.Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Create(ctx context.Context, habit *domain.Habit) (*domain.Habit, error) {
	if habit.ID == "" {
		habit.ID = "generated"
	}
	copied := *habit
	r.habits[habit.ID] = &copied
	return habit, nil
}

func (r *fakeHabitRepo) CheckIn(ctx context.Context, id string, now time.Time) (*domain.Habit, error) {
	h, ok := r.habits[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	if err := h.CheckIn(now); err != nil {
		return nil, err
	}
	copied := *h
	return &copied, nil
}

func TestCheckInIncrementsStreak(t *testing.T) {
	now := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
	repo := newFakeHabitRepo(&domain.Habit{
		ID:             "h1",
		UserID:         "u1",
		Title:          "morning run",
		Streak:         3,
		CompletedDates: []string{"2024-06-01"},
	})
	uc := New(repo, nil)
	uc.now = func() time.Time { return now }

	checked, err := uc.CheckIn(context.Background(), "u1", "h1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checked.Streak != 4 {
		t.Errorf("expected streak 4, got %d", checked.Streak)
	}
}

func TestCheckInSameDayConflict(t *testing.T) {
	now := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
	repo := newFakeHabitRepo(&domain.Habit{
		ID:             "h1",
		UserID:         "u1",
		Streak:         1,
		CompletedDates: []string{"2024-06-02"},
	})
	uc := New(repo, nil)
	uc.now = func() time.Time { return now }

	_, err := uc.CheckIn(context.Background(), "u1", "h1")
	if !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Errorf("expected CONFLICT, got %v", err)
	}
}

func TestCheckInWrongOwnerForbidden(t *testing.T) {
	repo := newFakeHabitRepo(&domain.Habit{ID: "h1", UserID: "u1"})
	uc := New(repo, nil)

	_, err := uc.CheckIn(context.Background(), "u2", "h1")
	if !domain.IsDomainError(err, domain.ErrCodeForbidden) {
		t.Errorf("expected FORBIDDEN, got %v", err)
	}
}

func TestCheckInUnknownHabit(t *testing.T) {
	uc := New(newFakeHabitRepo(), nil)

	_, err := uc.CheckIn(context.Background(), "u1", "missing")
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateHabitRequiresTitle(t *testing.T) {
	uc := New(newFakeHabitRepo(), nil)

	_, err := uc.CreateHabit(context.Background(), &domain.Habit{UserID: "u1"})
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("expected INVALID, got %v", err)
	}
}

func TestListHabitsScopedToOwner(t *testing.T) {
	repo := newFakeHabitRepo(
		&domain.Habit{ID: "h1", UserID: "u1"},
		&domain.Habit{ID: "h2", UserID: "u2"},
	)
	uc := New(repo, nil)

	habits, err := uc.ListHabits(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(habits) != 1 || habits[0].ID != "h1" {
		t.Errorf("expected only u1's habits, got %+v", habits)
	}
}
