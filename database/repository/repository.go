package repository

import (
	blockedRepo "wavehouse/database/repository/blockedslot"
	bookingRepo "wavehouse/database/repository/booking"
	clientRepo "wavehouse/database/repository/client"
	contactRepo "wavehouse/database/repository/contact"
	"wavehouse/database/repository/memory"
)

// Re-export the BookingRepository interface and constructors.
type BookingRepository = bookingRepo.BookingRepository

type BookingFilter = bookingRepo.BookingFilter

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the BlockedSlotRepository interface and constructor.
type BlockedSlotRepository = blockedRepo.BlockedSlotRepository

var NewMongoBlockedSlotRepo = blockedRepo.NewMongoBlockedSlotRepo

var ErrDuplicateSlot = blockedRepo.ErrDuplicate

// Re-export the ClientRepository interface and constructor.
type ClientRepository = clientRepo.ClientRepository

var NewMongoClientRepo = clientRepo.NewMongoClientRepo

// Re-export the ContactRepository interface and constructor.
type ContactRepository = contactRepo.ContactRepository

var NewMongoContactRepo = contactRepo.NewMongoContactRepo

// Repositories groups the stores the services depend on.
type Repositories struct {
	Bookings     BookingRepository
	BlockedSlots BlockedSlotRepository
	Clients      ClientRepository
	Contacts     ContactRepository
}

// NewMongoRepositories builds the MongoDB backed stores. database.InitDB must have succeeded.
func NewMongoRepositories() Repositories {
	return Repositories{
		Bookings:     NewMongoBookingRepo(),
		BlockedSlots: NewMongoBlockedSlotRepo(),
		Clients:      NewMongoClientRepo(),
		Contacts:     NewMongoContactRepo(),
	}
}

// NewMemoryRepositories builds in-process stores.
func NewMemoryRepositories() Repositories {
	return Repositories{
		Bookings:     memory.NewBookingRepo(),
		BlockedSlots: memory.NewBlockedSlotRepo(),
		Clients:      memory.NewClientRepo(),
		Contacts:     memory.NewContactRepo(),
	}
}
