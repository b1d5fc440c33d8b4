package contact

import (
	"context"
	"fmt"
	"strings"

	"wavehouse/database/repository"
	"wavehouse/models"
	"wavehouse/services/booking"
	"wavehouse/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactService stores contact form messages and forwards them to the studio.
type ContactService interface {
	Submit(ctx context.Context, in models.ContactInput) (*models.ContactMessage, error)
}

type DefaultContactService struct {
	repo     repository.ContactRepository
	notifier notification.Notifier
	logger   *zap.Logger
}

func NewContactService(repo repository.ContactRepository, notifier notification.Notifier) *DefaultContactService {
	return &DefaultContactService{repo: repo, notifier: notifier, logger: zap.L().Named("contact")}
}

func (s *DefaultContactService) Submit(ctx context.Context, in models.ContactInput) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		ID:      uuid.New().String(),
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Message: strings.TrimSpace(in.Message),
		Status:  "unread",
	}
	if msg.Name == "" {
		return nil, &booking.ValidationError{Field: "name", Message: "name is required"}
	}
	if msg.Message == "" {
		return nil, &booking.ValidationError{Field: "message", Message: "message is required"}
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	if s.notifier != nil {
		err := s.notifier.Notify(ctx, models.Notification{
			Kind:    models.NotifyContact,
			Name:    msg.Name,
			Email:   msg.Email,
			Message: msg.Message,
		})
		if err != nil {
			s.logger.Warn("contact notification failed", zap.String("id", msg.ID), zap.Error(err))
		}
	}
	return msg, nil
}
