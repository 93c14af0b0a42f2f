package usecase

import (
	"context"

	"github.com/aadarsh726/smart-life/domain"
)

// Operation names understood by the offline buffer.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the buffer processor so use cases stay storage-agnostic.
// Task and activity writes may be parked here when Postgres is down; habit
// check-ins and journal entries never are (check-ins need the row lock for
// their daily-conflict semantics, journal writes must answer synchronously).
type OperationBuffer interface {
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
	BufferActivity(ctx context.Context, operation string, activity *domain.ActivityLog) error
}
