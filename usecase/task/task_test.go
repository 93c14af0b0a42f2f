package task

import (
	"context"
	"testing"
	"time"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
)

type fakeTaskRepo struct {
	tasks map[string]*domain.Task
}

func newFakeTaskRepo(tasks ...*domain.Task) *fakeTaskRepo {
	repo := &fakeTaskRepo{tasks: map[string]*domain.Task{}}
	for _, t := range tasks {
		copied := *t
		repo.tasks[t.ID] = &copied
	}
	return repo
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTaskRepo) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.ID == "" {
		task.ID = "generated"
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return task, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

type fakeUserRepo struct {
	user   *domain.User
	awards []int
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	copied := *r.user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (r *fakeUserRepo) AwardXP(ctx context.Context, id string, amount int) (*domain.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	r.awards = append(r.awards, amount)
	r.user.AwardXP(amount)
	copied := *r.user
	return &copied, nil
}

func strPtr(s string) *string { return &s }

func pendingTask(id, userID string) *domain.Task {
	return &domain.Task{
		ID:       id,
		UserID:   userID,
		Title:    "write report",
		Category: domain.CategoryWork,
		Priority: domain.PriorityHigh,
		Status:   domain.StatusPending,
	}
}

func TestCompleteTaskAwardsXPOnce(t *testing.T) {
	taskRepo := newFakeTaskRepo(pendingTask("t1", "u1"))
	userRepo := &fakeUserRepo{user: &domain.User{ID: "u1", Level: 1, XP: 60}}
	uc := New(taskRepo, userRepo, nil, nil)

	updated, err := uc.UpdateTask(context.Background(), "u1", "t1", Patch{Status: strPtr(domain.StatusCompleted)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.IsCompleted() {
		t.Error("expected task to be completed")
	}
	if updated.CompletedAt == nil {
		t.Error("expected completed_at to be set")
	}
	if len(userRepo.awards) != 1 || userRepo.awards[0] != domain.XPPerTask {
		t.Errorf("expected one award of %d, got %v", domain.XPPerTask, userRepo.awards)
	}
	if userRepo.user.Level != 2 || userRepo.user.XP != 10 {
		t.Errorf("expected level 2 with 10 XP, got level=%d xp=%d", userRepo.user.Level, userRepo.user.XP)
	}

	// Re-completing must be a no-op for XP.
	if _, err := uc.UpdateTask(context.Background(), "u1", "t1", Patch{Status: strPtr(domain.StatusCompleted)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(userRepo.awards) != 1 {
		t.Errorf("re-completion must not award again, got %v", userRepo.awards)
	}
}

func TestUpdateTaskPartialFields(t *testing.T) {
	taskRepo := newFakeTaskRepo(pendingTask("t1", "u1"))
	userRepo := &fakeUserRepo{user: &domain.User{ID: "u1", Level: 1}}
	uc := New(taskRepo, userRepo, nil, nil)

	updated, err := uc.UpdateTask(context.Background(), "u1", "t1", Patch{Priority: strPtr(domain.PriorityLow)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Priority != domain.PriorityLow {
		t.Errorf("expected priority updated, got %s", updated.Priority)
	}
	if updated.Title != "write report" || updated.Category != domain.CategoryWork || updated.Status != domain.StatusPending {
		t.Errorf("untouched fields must survive a partial update: %+v", updated)
	}
}

func TestUpdateTaskWrongOwnerForbidden(t *testing.T) {
	taskRepo := newFakeTaskRepo(pendingTask("t1", "u1"))
	userRepo := &fakeUserRepo{user: &domain.User{ID: "u2", Level: 1}}
	uc := New(taskRepo, userRepo, nil, nil)

	_, err := uc.UpdateTask(context.Background(), "u2", "t1", Patch{Title: strPtr("stolen")})
	if !domain.IsDomainError(err, domain.ErrCodeForbidden) {
		t.Errorf("expected FORBIDDEN, got %v", err)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	uc := New(newFakeTaskRepo(), &fakeUserRepo{}, nil, nil)

	_, err := uc.UpdateTask(context.Background(), "u1", "missing", Patch{})
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestDeleteTaskWrongOwnerForbidden(t *testing.T) {
	taskRepo := newFakeTaskRepo(pendingTask("t1", "u1"))
	uc := New(taskRepo, &fakeUserRepo{}, nil, nil)

	if err := uc.DeleteTask(context.Background(), "u2", "t1"); !domain.IsDomainError(err, domain.ErrCodeForbidden) {
		t.Errorf("expected FORBIDDEN, got %v", err)
	}
	if _, err := taskRepo.GetByID(context.Background(), "t1"); err != nil {
		t.Error("task must survive a forbidden delete")
	}
}

func TestCreateTaskAppliesDefaults(t *testing.T) {
	uc := New(newFakeTaskRepo(), &fakeUserRepo{}, nil, nil)

	created, err := uc.CreateTask(context.Background(), &domain.Task{UserID: "u1", Title: "read"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Category != domain.CategoryOther || created.Priority != domain.PriorityMedium || created.Status != domain.StatusPending {
		t.Errorf("expected defaults applied, got %+v", created)
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	uc := New(newFakeTaskRepo(), &fakeUserRepo{}, nil, nil)

	_, err := uc.CreateTask(context.Background(), &domain.Task{UserID: "u1"})
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("expected INVALID, got %v", err)
	}
}

func TestCreateTaskRejectsUnknownEnums(t *testing.T) {
	uc := New(newFakeTaskRepo(), &fakeUserRepo{}, nil, nil)

	_, err := uc.CreateTask(context.Background(), &domain.Task{UserID: "u1", Title: "x", Priority: "Urgent"})
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("expected INVALID, got %v", err)
	}
}

func TestListScopedToOwner(t *testing.T) {
	taskRepo := newFakeTaskRepo(pendingTask("t1", "u1"), pendingTask("t2", "u2"))
	uc := New(taskRepo, &fakeUserRepo{}, nil, nil)

	tasks, err := uc.ListTasks(context.Background(), repository.TaskFilter{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Errorf("expected only u1's task, got %+v", tasks)
	}
}

func TestCompletionTimestampIsUTC(t *testing.T) {
	taskRepo := newFakeTaskRepo(pendingTask("t1", "u1"))
	userRepo := &fakeUserRepo{user: &domain.User{ID: "u1", Level: 1}}
	uc := New(taskRepo, userRepo, nil, nil)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("UTC+9", 9*3600))
	uc.now = func() time.Time { return fixed }

	updated, err := uc.UpdateTask(context.Background(), "u1", "t1", Patch{Status: strPtr(domain.StatusCompleted)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc := updated.CompletedAt.Location(); loc != time.UTC {
		t.Errorf("expected UTC timestamp, got %v", loc)
	}
}
