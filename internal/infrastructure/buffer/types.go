package buffer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entities the buffer knows how to replay.
const (
	EntityTask     = "task"
	EntityActivity = "activity"
)

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// Item represents a write that should be retried when Postgres comes back.
type Item struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Entity    string          `json:"entity"`
	Operation string          `json:"operation"`
	Data      json.RawMessage `json:"data"`
	Retries   int             `json:"retries"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}

// drainRank orders replay: task mutations first, then activity logs.
func (i *Item) drainRank() int {
	if i.Entity == EntityTask {
		return 1
	}
	return 2
}
