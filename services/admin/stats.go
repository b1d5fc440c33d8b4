package admin

import (
	"context"
	"fmt"

	"wavehouse/database/repository"
	"wavehouse/models"
)

// Stats computes the dashboard counters on demand.
func (s *DefaultAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	total, err := s.repos.Bookings.Count(repository.BookingFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	pending, err := s.repos.Bookings.Count(repository.BookingFilter{Statuses: []string{models.StatusPending}})
	if err != nil {
		return nil, fmt.Errorf("failed to count pending bookings: %w", err)
	}
	confirmed, err := s.repos.Bookings.Count(repository.BookingFilter{Statuses: []string{models.StatusConfirmed}})
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}
	blocked, err := s.repos.BlockedSlots.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count blocked slots: %w", err)
	}
	return &models.AdminStats{Total: total, Pending: pending, Confirmed: confirmed, Blocked: blocked}, nil
}
