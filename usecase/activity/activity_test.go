package activity

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/repository"
	"github.com/aadarsh726/smart-life/usecase"
)

type fakeActivityRepo struct {
	created []domain.ActivityLog
	failing bool
}

func (r *fakeActivityRepo) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.ActivityLog, error) {
	return r.created, nil
}

func (r *fakeActivityRepo) Create(ctx context.Context, activity *domain.ActivityLog) (*domain.ActivityLog, error) {
	if r.failing {
		return nil, errors.New("connection refused")
	}
	r.created = append(r.created, *activity)
	return activity, nil
}

type fakeBuffer struct {
	activities []domain.ActivityLog
	err        error
}

func (b *fakeBuffer) BufferTask(ctx context.Context, operation string, task *domain.Task) error {
	return b.err
}

func (b *fakeBuffer) BufferActivity(ctx context.Context, operation string, activity *domain.ActivityLog) error {
	if b.err != nil {
		return b.err
	}
	b.activities = append(b.activities, *activity)
	return nil
}

func mealPayload() json.RawMessage {
	return json.RawMessage(`{"name":"lunch","calories":650,"macros":{"p":30,"c":70,"f":20}}`)
}

func TestLogActivity(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := New(repo, nil, nil)

	created, err := uc.LogActivity(context.Background(), &domain.ActivityLog{
		UserID: "u1",
		Type:   domain.ActivityMeal,
		Data:   mealPayload(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Type != domain.ActivityMeal || len(repo.created) != 1 {
		t.Errorf("expected one persisted MEAL activity, got %+v", repo.created)
	}
}

func TestLogActivityUnknownType(t *testing.T) {
	uc := New(&fakeActivityRepo{}, nil, nil)

	_, err := uc.LogActivity(context.Background(), &domain.ActivityLog{
		UserID: "u1",
		Type:   "NAP",
		Data:   json.RawMessage(`{}`),
	})
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("expected INVALID, got %v", err)
	}
}

func TestLogActivityMalformedData(t *testing.T) {
	uc := New(&fakeActivityRepo{}, nil, nil)

	_, err := uc.LogActivity(context.Background(), &domain.ActivityLog{
		UserID: "u1",
		Type:   domain.ActivityWorkout,
		Data:   json.RawMessage(`{"duration":"forty"}`),
	})
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("expected INVALID, got %v", err)
	}
}

func TestLogActivityBuffersOnStorageFailure(t *testing.T) {
	repo := &fakeActivityRepo{failing: true}
	buffer := &fakeBuffer{}
	uc := New(repo, buffer, nil)

	created, err := uc.LogActivity(context.Background(), &domain.ActivityLog{
		UserID: "u1",
		Type:   domain.ActivityMeal,
		Data:   mealPayload(),
	})
	if err != nil {
		t.Fatalf("buffered write must succeed from the caller's view: %v", err)
	}
	if created == nil || len(buffer.activities) != 1 {
		t.Errorf("expected the write parked in the buffer, got %+v", buffer.activities)
	}
}

func TestLogActivityStorageAndBufferBothDown(t *testing.T) {
	repo := &fakeActivityRepo{failing: true}
	buffer := &fakeBuffer{err: errors.New("bolt closed")}
	uc := New(repo, buffer, nil)

	_, err := uc.LogActivity(context.Background(), &domain.ActivityLog{
		UserID: "u1",
		Type:   domain.ActivityMeal,
		Data:   mealPayload(),
	})
	if err == nil {
		t.Fatal("expected the storage error surfaced when buffering also fails")
	}
}

func TestListActivitiesRejectsUnknownTypeFilter(t *testing.T) {
	uc := New(&fakeActivityRepo{}, nil, nil)

	_, err := uc.ListActivities(context.Background(), repository.ActivityFilter{UserID: "u1", Type: "NAP"})
	if !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Errorf("expected INVALID, got %v", err)
	}
}

var _ usecase.OperationBuffer = (*fakeBuffer)(nil)
