package blockedRepo

import "wavehouse/models"

// BlockedSlotRepository defines methods for blocked slot data access.
// A date holds at most one slot per start time.
type BlockedSlotRepository interface {
	// Create inserts a slot. It returns ErrDuplicate when the hour is already blocked.
	Create(slot *models.BlockedSlot) error
	// CreateMany inserts the slots that are not blocked yet and returns how many were added.
	CreateMany(slots []models.BlockedSlot) (int, error)
	// ListByDate returns the slots of a date ordered by start time.
	ListByDate(date string) ([]models.BlockedSlot, error)
	// ListAll returns every slot ordered by date then start time.
	ListAll() ([]models.BlockedSlot, error)
	// Delete removes a slot by its ID and returns it.
	Delete(id string) (*models.BlockedSlot, error)
	// DeleteByDate removes all slots of a date and returns how many were removed.
	DeleteByDate(date string) (int64, error)
	// Count returns the number of blocked slots.
	Count() (int64, error)
}
