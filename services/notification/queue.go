package notification

import (
	"context"
	"fmt"

	"wavehouse/models"
	"wavehouse/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is the part of *asynq.Client the queue notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier hands notifications to the background worker so requests never wait on email delivery.
type QueueNotifier struct {
	client Enqueuer
}

func NewQueueNotifier(client Enqueuer) *QueueNotifier {
	return &QueueNotifier{client: client}
}

func (q *QueueNotifier) Notify(ctx context.Context, n models.Notification) error {
	task, opts, err := tasks.NewNotificationTask(n)
	if err != nil {
		return err
	}
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	zap.L().Debug("notification queued", zap.String("task_id", info.ID), zap.String("kind", n.Kind))
	return nil
}
