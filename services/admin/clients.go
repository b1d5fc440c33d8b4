package admin

import (
	"context"
	"strings"

	"wavehouse/models"

	"go.uber.org/zap"
)

// Clients lists every client, most recently updated first.
func (s *DefaultAdminService) Clients(ctx context.Context) ([]models.Client, error) {
	return s.repos.Clients.List()
}

// VerifyClient records the outcome of an ID check.
func (s *DefaultAdminService) VerifyClient(ctx context.Context, id string, in models.ClientVerificationInput) (*models.Client, error) {
	switch in.Status {
	case models.VerificationPending, models.VerificationVerified, models.VerificationFailed, models.VerificationManualReview:
	default:
		return nil, ErrInvalidStatus
	}

	client, err := s.repos.Clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	client.VerificationStatus = in.Status
	client.IsVerified = in.Status == models.VerificationVerified
	if client.IsVerified {
		now := s.now()
		client.VerificationDate = &now
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		client.AdminNotes = notes
	}
	if err := s.repos.Clients.Update(client); err != nil {
		return nil, err
	}
	s.logger.Info("client verification updated", zap.String("client_id", id), zap.String("status", in.Status))
	return client, nil
}

// ContactMessages lists contact form messages, newest first.
func (s *DefaultAdminService) ContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repos.Contacts.List()
}
