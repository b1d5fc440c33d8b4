package notification

import (
	"context"
	"fmt"

	"wavehouse/models"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailNotifier sends notifications to the studio inbox through Resend.
type EmailNotifier struct {
	client *resend.Client
	from   string
	to     []string
}

func NewEmailNotifier(apiKey, from, to string) *EmailNotifier {
	return &EmailNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     []string{to},
	}
}

func (e *EmailNotifier) Notify(ctx context.Context, n models.Notification) error {
	subject, body, err := Compose(n)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    e.from,
		To:      e.to,
		Subject: subject,
		Html:    body,
	}
	if n.Email != "" {
		params.ReplyTo = n.Email
	}

	sent, err := e.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	zap.L().Info("notification emailed", zap.String("kind", n.Kind), zap.String("message_id", sent.Id))
	return nil
}
