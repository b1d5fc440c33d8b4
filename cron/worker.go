package cron

import (
	"context"
	"fmt"
	"time"

	"wavehouse/config"
	"wavehouse/services/notification"
	"wavehouse/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt returns the connection options of the notification queue DB.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NotificationWorker delivers queued notifications in the background.
type NotificationWorker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

// NewNotificationWorker builds a worker that hands each task to sender.
func NewNotificationWorker(opt asynq.RedisClientOpt, sender notification.Notifier) *NotificationWorker {
	srv := asynq.NewServer(
		opt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: zap.S().Named("asynq"),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotificationSend, HandleNotificationTask(sender))

	return &NotificationWorker{srv: srv, mux: mux}
}

// Start runs the worker, retrying with backoff while Redis is unreachable.
func (w *NotificationWorker) Start() {
	go func() {
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				zap.L().Info("notification worker started")
				return
			}
			zap.L().Warn("notification worker failed to start",
				zap.Int("attempt", attempts), zap.Int("max_attempts", maxAttempts), zap.Error(err))
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
		zap.L().Error("notification worker gave up; notifications stay queued until restart")
	}()
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *NotificationWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleNotificationTask decodes a notification task and delivers it.
func HandleNotificationTask(sender notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := tasks.ParseNotification(task)
		if err != nil {
			zap.L().Error("invalid notification payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}
		if _, _, err := notification.Compose(n); err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		if err := sender.Notify(ctx, n); err != nil {
			zap.L().Warn("notification delivery failed", zap.String("kind", n.Kind), zap.Error(err))
			return err
		}
		return nil
	}
}
