package models

import "time"

// BlockedSlot is an hour marked unavailable for booking.
type BlockedSlot struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"`                         // "2025-02-25"
	Start     int       `bson:"start" json:"start"`                       // minutes from midnight
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"` // e.g. "Monthly client rental"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// BlockedSlotView is the admin listing entry, grouped under its date.
type BlockedSlotView struct {
	ID     string `json:"id"`
	Time   string `json:"time"`
	Reason string `json:"reason,omitempty"`
}

// BlockedSlotInput is the payload of POST /api/blocked-slots.
type BlockedSlotInput struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason"`
}

// BulkBlockInput blocks every listed time on the selected weekdays of a date range.
type BulkBlockInput struct {
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	Days      []int    `json:"days" binding:"required"` // 0=Sunday ... 6=Saturday
	Times     []string `json:"times" binding:"required"`
	Reason    string   `json:"reason"`
}

// DeleteSlotInput is the payload of POST /api/delete-blocked-slot.
type DeleteSlotInput struct {
	SlotID string `json:"slot_id" binding:"required"`
}

// DeleteSlotsByDateInput is the payload of POST /api/delete-blocked-slots-by-date.
type DeleteSlotsByDateInput struct {
	Date string `json:"date" binding:"required"`
}
