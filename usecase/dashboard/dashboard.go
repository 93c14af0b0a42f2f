package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/repository"
)

// Summary is the aggregated view rendered by the dashboard page.
type Summary struct {
	PendingTasks   int            `json:"pending_tasks"`
	CompletedTasks int            `json:"completed_tasks"`
	BestStreak     int            `json:"best_streak"`
	AverageMood    float64        `json:"average_mood"`
	WeeklyActivity map[string]int `json:"weekly_activity"`
	Level          int            `json:"level"`
	XP             int            `json:"xp"`
}

type UseCase struct {
	users      repository.UserRepository
	tasks      repository.TaskRepository
	habits     repository.HabitRepository
	entries    repository.JournalRepository
	activities repository.ActivityRepository
	logger     *zap.Logger
	now        func() time.Time
}

func New(
	users repository.UserRepository,
	tasks repository.TaskRepository,
	habits repository.HabitRepository,
	entries repository.JournalRepository,
	activities repository.ActivityRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:      users,
		tasks:      tasks,
		habits:     habits,
		entries:    entries,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// Summarize aggregates the caller's last seven UTC days in one read-only pass.
func (uc *UseCase) Summarize(ctx context.Context, callerID string) (*Summary, error) {
	user, err := uc.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		WeeklyActivity: map[string]int{},
		Level:          user.Level,
		XP:             user.XP,
	}

	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: callerID})
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.IsCompleted() {
			summary.CompletedTasks++
		} else {
			summary.PendingTasks++
		}
	}

	habits, err := uc.habits.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	for _, h := range habits {
		if h.Streak > summary.BestStreak {
			summary.BestStreak = h.Streak
		}
	}

	weekAgo := uc.now().UTC().AddDate(0, 0, -7)

	entries, err := uc.entries.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	var moodSum, moodCount int
	for _, e := range entries {
		if e.Date.Before(weekAgo) {
			continue
		}
		moodSum += e.MoodScore
		moodCount++
	}
	if moodCount > 0 {
		summary.AverageMood = float64(moodSum) / float64(moodCount)
	}

	activities, err := uc.activities.List(ctx, repository.ActivityFilter{UserID: callerID, Since: weekAgo})
	if err != nil {
		return nil, err
	}
	for _, a := range activities {
		summary.WeeklyActivity[a.Type]++
	}

	return summary, nil
}
