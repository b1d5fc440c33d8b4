package notification

import (
	"context"

	"wavehouse/models"

	"go.uber.org/zap"
)

// LogNotifier writes notifications to the log. Used when no email provider is configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(_ context.Context, n models.Notification) error {
	subject, _, err := Compose(n)
	if err != nil {
		return err
	}
	l.logger.Info(subject,
		zap.String("kind", n.Kind),
		zap.String("name", n.Name),
		zap.String("email", n.Email),
		zap.String("date", n.Date),
		zap.String("time", n.Time),
		zap.Int("duration", n.Duration),
	)
	return nil
}
