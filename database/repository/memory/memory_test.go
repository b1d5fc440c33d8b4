package memory

import (
	"testing"

	"wavehouse/database"
	blockedRepo "wavehouse/database/repository/blockedslot"
	bookingRepo "wavehouse/database/repository/booking"
	"wavehouse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockedSlotRepoRejectsDuplicateHour(t *testing.T) {
	repo := NewBlockedSlotRepo()
	require.NoError(t, repo.Create(&models.BlockedSlot{ID: "a", Date: "2025-02-25", Start: 14 * 60}))

	err := repo.Create(&models.BlockedSlot{ID: "b", Date: "2025-02-25", Start: 14 * 60})
	assert.ErrorIs(t, err, blockedRepo.ErrDuplicate)

	added, err := repo.CreateMany([]models.BlockedSlot{
		{ID: "c", Date: "2025-02-25", Start: 14 * 60},
		{ID: "d", Date: "2025-02-25", Start: 9 * 60},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	slots, _ := repo.ListByDate("2025-02-25")
	require.Len(t, slots, 2)
	assert.Equal(t, "d", slots[0].ID)
	assert.Equal(t, "a", slots[1].ID)
}

func TestBlockedSlotRepoDeleteByDate(t *testing.T) {
	repo := NewBlockedSlotRepo()
	_, _ = repo.CreateMany([]models.BlockedSlot{
		{ID: "a", Date: "2025-02-25", Start: 600},
		{ID: "b", Date: "2025-02-25", Start: 660},
		{ID: "c", Date: "2025-02-26", Start: 600},
	})

	n, err := repo.DeleteByDate("2025-02-25")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.DeleteByDate("2025-02-25")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.Delete("a")
	assert.ErrorIs(t, err, database.ErrNotFound)
	slot, err := repo.Delete("c")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-26", slot.Date)
	count, _ := repo.Count()
	assert.Zero(t, count)
}

func TestBookingRepoFilters(t *testing.T) {
	repo := NewBookingRepo()
	require.NoError(t, repo.Create(&models.Booking{ID: "1", Date: "2025-03-01", Status: models.StatusPending}))
	require.NoError(t, repo.Create(&models.Booking{ID: "2", Date: "2025-03-01", Status: models.StatusConfirmed}))
	require.NoError(t, repo.Create(&models.Booking{ID: "3", Date: "2025-03-02", Status: models.StatusConfirmed}))

	confirmed, err := repo.Count(bookingRepo.BookingFilter{Statuses: []string{models.StatusConfirmed}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), confirmed)

	onDate, _ := repo.List(bookingRepo.BookingFilter{Date: "2025-03-01", Statuses: []string{models.StatusConfirmed}})
	require.Len(t, onDate, 1)
	assert.Equal(t, "2", onDate[0].ID)

	require.NoError(t, repo.UpdateStatus("1", models.StatusCancelled))
	b, _ := repo.GetByID("1")
	assert.Equal(t, models.StatusCancelled, b.Status)
	assert.ErrorIs(t, repo.UpdateStatus("missing", models.StatusConfirmed), database.ErrNotFound)
}

func TestClientRepoEmailIsCaseInsensitive(t *testing.T) {
	repo := NewClientRepo()
	require.NoError(t, repo.Create(&models.Client{ID: "c1", Email: " Artist@Example.com "}))

	c, err := repo.GetByEmail("artist@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, database.ErrNotFound)
}
