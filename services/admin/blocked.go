package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wavehouse/database/repository"
	"wavehouse/models"
	"wavehouse/services/booking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxBulkDays caps a bulk block range.
const maxBulkDays = 366

const defaultBlockReason = "Blocked by admin"

// BlockSlot blocks a single hour.
func (s *DefaultAdminService) BlockSlot(ctx context.Context, in models.BlockedSlotInput) (*models.BlockedSlot, error) {
	if _, err := booking.ParseDate(in.Date); err != nil {
		return nil, err
	}
	start, err := booking.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = defaultBlockReason
	}

	slot := &models.BlockedSlot{
		ID:        uuid.New().String(),
		Date:      strings.TrimSpace(in.Date),
		Start:     start,
		Reason:    reason,
		CreatedAt: s.now(),
	}
	if err := s.repos.BlockedSlots.Create(slot); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, ErrSlotExists
		}
		return nil, err
	}
	s.cache.Invalidate(ctx, slot.Date)
	s.logger.Info("slot blocked", zap.String("date", slot.Date), zap.String("time", booking.FormatClock(start)))
	return slot, nil
}

// BulkBlock blocks every listed time on the matching weekdays (Sunday=0) of an
// inclusive date range. Hours that are already blocked are skipped.
func (s *DefaultAdminService) BulkBlock(ctx context.Context, in models.BulkBlockInput) (int, error) {
	from, err := booking.ParseDate(in.StartDate)
	if err != nil {
		return 0, &booking.ValidationError{Field: "start_date", Message: err.Error()}
	}
	to, err := booking.ParseDate(in.EndDate)
	if err != nil {
		return 0, &booking.ValidationError{Field: "end_date", Message: err.Error()}
	}
	if to.Before(from) {
		return 0, &booking.ValidationError{Field: "end_date", Message: "end date is before start date"}
	}
	if int(to.Sub(from).Hours()/24) >= maxBulkDays {
		return 0, &booking.ValidationError{Field: "end_date", Message: fmt.Sprintf("range is limited to %d days", maxBulkDays)}
	}
	if len(in.Days) == 0 {
		return 0, &booking.ValidationError{Field: "days", Message: "select at least one weekday"}
	}
	if len(in.Times) == 0 {
		return 0, &booking.ValidationError{Field: "times", Message: "select at least one time"}
	}

	weekdays := map[int]bool{}
	for _, d := range in.Days {
		if d < 0 || d > 6 {
			return 0, &booking.ValidationError{Field: "days", Message: fmt.Sprintf("weekday %d out of range 0-6", d)}
		}
		weekdays[d] = true
	}
	starts := make([]int, 0, len(in.Times))
	seen := map[int]bool{}
	for _, t := range in.Times {
		m, err := booking.ParseClock(t)
		if err != nil {
			return 0, err
		}
		if !seen[m] {
			seen[m] = true
			starts = append(starts, m)
		}
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = defaultBlockReason
	}

	now := s.now()
	var (
		slots []models.BlockedSlot
		dates []string
	)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !weekdays[int(d.Weekday())] {
			continue
		}
		date := d.Format(booking.DateLayout)
		dates = append(dates, date)
		for _, m := range starts {
			slots = append(slots, models.BlockedSlot{
				ID:        uuid.New().String(),
				Date:      date,
				Start:     m,
				Reason:    reason,
				CreatedAt: now,
			})
		}
	}

	added, err := s.repos.BlockedSlots.CreateMany(slots)
	if err != nil {
		return added, fmt.Errorf("failed to block slots: %w", err)
	}
	s.cache.Invalidate(ctx, dates...)
	s.logger.Info("bulk block",
		zap.String("from", in.StartDate), zap.String("to", in.EndDate),
		zap.Int("requested", len(slots)), zap.Int("blocked", added))
	return added, nil
}

// BlockedSlots returns every blocked slot grouped by date, ordered by time within a date.
func (s *DefaultAdminService) BlockedSlots(ctx context.Context) (map[string][]models.BlockedSlotView, error) {
	slots, err := s.repos.BlockedSlots.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked slots: %w", err)
	}
	grouped := make(map[string][]models.BlockedSlotView)
	for _, slot := range slots {
		grouped[slot.Date] = append(grouped[slot.Date], models.BlockedSlotView{
			ID:     slot.ID,
			Time:   booking.FormatClock(slot.Start),
			Reason: slot.Reason,
		})
	}
	return grouped, nil
}

// DeleteBlockedSlot removes one slot. A missing id yields booking.ErrNotFound.
func (s *DefaultAdminService) DeleteBlockedSlot(ctx context.Context, id string) error {
	slot, err := s.repos.BlockedSlots.Delete(id)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, slot.Date)
	s.logger.Info("blocked slot deleted", zap.String("id", id), zap.String("date", slot.Date))
	return nil
}

// DeleteBlockedSlotsByDate removes every slot of date and reports how many were removed.
func (s *DefaultAdminService) DeleteBlockedSlotsByDate(ctx context.Context, date string) (int64, error) {
	if _, err := booking.ParseDate(date); err != nil {
		return 0, err
	}
	n, err := s.repos.BlockedSlots.DeleteByDate(date)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx, date)
	s.logger.Info("blocked slots deleted for date", zap.String("date", date), zap.Int64("count", n))
	return n, nil
}
