package tasks

import (
	"encoding/json"
	"time"

	"wavehouse/models"

	"github.com/hibiken/asynq"
)

const TypeNotificationSend = "notification:send"

// NewNotificationTask wraps a notification for the worker. Delivery is retried with backoff.
func NewNotificationTask(n models.Notification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotificationSend, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// ParseNotification decodes a notification task payload.
func ParseNotification(t *asynq.Task) (models.Notification, error) {
	var n models.Notification
	err := json.Unmarshal(t.Payload(), &n)
	return n, err
}
