// Package memory holds in-process repositories used when no DATABASE_URL is configured and in tests.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"wavehouse/database"
	blockedRepo "wavehouse/database/repository/blockedslot"
	bookingRepo "wavehouse/database/repository/booking"
	clientRepo "wavehouse/database/repository/client"
	contactRepo "wavehouse/database/repository/contact"
	"wavehouse/models"
)

// BookingRepo is an in-memory BookingRepository.
type BookingRepo struct {
	mu    sync.RWMutex
	items map[string]models.Booking
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{items: map[string]models.Booking{}}
}

var _ bookingRepo.BookingRepository = (*BookingRepo)(nil)

func matches(b models.Booking, f bookingRepo.BookingFilter) bool {
	if f.Date != "" && b.Date != f.Date {
		return false
	}
	if f.ServiceType != "" && b.ServiceType != f.ServiceType {
		return false
	}
	if f.Email != "" && !strings.EqualFold(b.Email, f.Email) {
		return false
	}
	if len(f.Statuses) > 0 {
		for _, s := range f.Statuses {
			if b.Status == s {
				return true
			}
		}
		return false
	}
	return true
}

func (r *BookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	r.items[b.ID] = *b
	return nil
}

func (r *BookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &b, nil
}

func (r *BookingRepo) List(f bookingRepo.BookingFilter) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range r.items {
		if matches(b, f) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *BookingRepo) Count(f bookingRepo.BookingFilter) (int64, error) {
	list, _ := r.List(f)
	return int64(len(list)), nil
}

func (r *BookingRepo) update(id string, fn func(*models.Booking)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return database.ErrNotFound
	}
	fn(&b)
	r.items[id] = b
	return nil
}

func (r *BookingRepo) UpdateStatus(id, status string) error {
	return r.update(id, func(b *models.Booking) { b.Status = status })
}

func (r *BookingRepo) UpdatePayment(id, paymentStatus string, amount float64, intentID string) error {
	return r.update(id, func(b *models.Booking) {
		b.PaymentStatus = paymentStatus
		b.PaymentAmount = amount
		b.PaymentIntentID = intentID
	})
}

func (r *BookingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return database.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// BlockedSlotRepo is an in-memory BlockedSlotRepository.
type BlockedSlotRepo struct {
	mu    sync.RWMutex
	items map[string]models.BlockedSlot
}

func NewBlockedSlotRepo() *BlockedSlotRepo {
	return &BlockedSlotRepo{items: map[string]models.BlockedSlot{}}
}

var _ blockedRepo.BlockedSlotRepository = (*BlockedSlotRepo)(nil)

func (r *BlockedSlotRepo) existsLocked(date string, start int) bool {
	for _, s := range r.items {
		if s.Date == date && s.Start == start {
			return true
		}
	}
	return false
}

func (r *BlockedSlotRepo) Create(slot *models.BlockedSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsLocked(slot.Date, slot.Start) {
		return blockedRepo.ErrDuplicate
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now().UTC()
	}
	r.items[slot.ID] = *slot
	return nil
}

func (r *BlockedSlotRepo) CreateMany(slots []models.BlockedSlot) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	added := 0
	for _, s := range slots {
		if r.existsLocked(s.Date, s.Start) {
			continue
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		r.items[s.ID] = s
		added++
	}
	return added, nil
}

func (r *BlockedSlotRepo) filter(keep func(models.BlockedSlot) bool) []models.BlockedSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.BlockedSlot{}
	for _, s := range r.items {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Start < out[j].Start
	})
	return out
}

func (r *BlockedSlotRepo) ListByDate(date string) ([]models.BlockedSlot, error) {
	return r.filter(func(s models.BlockedSlot) bool { return s.Date == date }), nil
}

func (r *BlockedSlotRepo) ListAll() ([]models.BlockedSlot, error) {
	return r.filter(func(models.BlockedSlot) bool { return true }), nil
}

func (r *BlockedSlotRepo) Delete(id string) (*models.BlockedSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	delete(r.items, id)
	return &slot, nil
}

func (r *BlockedSlotRepo) DeleteByDate(date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.items {
		if s.Date == date {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *BlockedSlotRepo) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// ClientRepo is an in-memory ClientRepository.
type ClientRepo struct {
	mu    sync.RWMutex
	items map[string]models.Client
}

func NewClientRepo() *ClientRepo {
	return &ClientRepo{items: map[string]models.Client{}}
}

var _ clientRepo.ClientRepository = (*ClientRepo)(nil)

func (r *ClientRepo) GetByID(id string) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &c, nil
}

func (r *ClientRepo) GetByEmail(email string) (*models.Client, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *ClientRepo) Create(c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.CreatedAt = now
	c.UpdatedAt = now
	r.items[c.ID] = *c
	return nil
}

func (r *ClientRepo) Update(c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return database.ErrNotFound
	}
	c.UpdatedAt = time.Now().UTC()
	r.items[c.ID] = *c
	return nil
}

func (r *ClientRepo) List() ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Client, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

// ContactRepo is an in-memory ContactRepository.
type ContactRepo struct {
	mu    sync.Mutex
	items []models.ContactMessage
}

func NewContactRepo() *ContactRepo {
	return &ContactRepo{}
}

var _ contactRepo.ContactRepository = (*ContactRepo)(nil)

func (r *ContactRepo) Create(m *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	r.items = append(r.items, *m)
	return nil
}

func (r *ContactRepo) List() ([]models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ContactMessage, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}
