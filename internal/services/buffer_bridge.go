package services

import (
	"context"
	"encoding/json"

	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/internal/infrastructure/buffer"
	"github.com/aadarsh726/smart-life/usecase"
)

// BufferBridge adapts the processor to the usecase.OperationBuffer port.
type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferTask(ctx context.Context, operation string, task *domain.Task) error {
	if b.processor == nil || task == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        task.ID,
		UserID:    task.UserID,
		Entity:    buffer.EntityTask,
		Operation: operation,
		Data:      payload,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferActivity(ctx context.Context, operation string, activity *domain.ActivityLog) error {
	if b.processor == nil || activity == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(activity)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        activity.ID,
		UserID:    activity.UserID,
		Entity:    buffer.EntityActivity,
		Operation: operation,
		Data:      payload,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
