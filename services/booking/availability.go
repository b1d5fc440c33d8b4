package booking

import (
	"context"
	"fmt"
	"sort"

	"wavehouse/database/repository"
	"wavehouse/models"
)

// Availability returns the unavailable hourly labels per date: blocked hours plus
// the occupied hours of confirmed bookings. An empty date covers every date.
func (s *DefaultBookingService) Availability(ctx context.Context, date string) (map[string][]string, error) {
	if date != "" {
		if _, err := ParseDate(date); err != nil {
			return nil, err
		}
		if labels, ok := s.Cache.Get(ctx, date); ok {
			return map[string][]string{date: labels}, nil
		}
	}

	var (
		blocked []models.BlockedSlot
		err     error
	)
	if date != "" {
		blocked, err = s.BlockedSlots.ListByDate(date)
	} else {
		blocked, err = s.BlockedSlots.ListAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked slots: %w", err)
	}
	confirmed, err := s.Bookings.List(repository.BookingFilter{Date: date, Statuses: []string{models.StatusConfirmed}})
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	byDate := map[string]map[int]struct{}{}
	mark := func(d string, m int) {
		if byDate[d] == nil {
			byDate[d] = map[int]struct{}{}
		}
		byDate[d][m] = struct{}{}
	}
	for _, slot := range blocked {
		mark(slot.Date, slot.Start)
	}
	for _, b := range confirmed {
		if b.Date == "" {
			continue
		}
		for _, m := range OccupiedHours(b.Start, b.Duration) {
			mark(b.Date, m)
		}
	}

	out := make(map[string][]string, len(byDate))
	for d, set := range byDate {
		starts := make([]int, 0, len(set))
		for m := range set {
			starts = append(starts, m)
		}
		sort.Ints(starts)
		labels := make([]string, len(starts))
		for i, m := range starts {
			labels[i] = FormatClock(m)
		}
		out[d] = labels
	}

	if date != "" {
		labels := out[date]
		if labels == nil {
			labels = []string{}
			out[date] = labels
		}
		s.Cache.Set(ctx, date, labels)
	}
	return out, nil
}
