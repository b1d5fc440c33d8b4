package admin

import (
	"context"
	"testing"
	"time"

	"wavehouse/database/repository"
	"wavehouse/models"
	"wavehouse/services/booking"
	"wavehouse/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdmin(t *testing.T) (*DefaultAdminService, repository.Repositories) {
	t.Helper()
	hash, err := ResolvePasswordHash("", "letmein")
	require.NoError(t, err)
	repos := repository.NewMemoryRepositories()
	svc := NewAdminService(repos, Options{
		PasswordHash: hash,
		SessionTTL:   time.Hour,
		Signer:       utils.NewTokenSigner("test-secret"),
	})
	return svc, repos
}

func TestLoginLogout(t *testing.T) {
	svc, _ := newTestAdmin(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	sess, err := svc.Login(ctx, "letmein")
	require.NoError(t, err)
	require.NoError(t, svc.Authenticate(ctx, sess.Token))

	require.NoError(t, svc.Logout(ctx, sess.Token))
	assert.ErrorIs(t, svc.Authenticate(ctx, sess.Token), ErrUnauthorized)
	assert.ErrorIs(t, svc.Authenticate(ctx, "garbage"), ErrUnauthorized)
}

func TestAuthenticateRejectsTokenWithoutSession(t *testing.T) {
	svc, _ := newTestAdmin(t)
	token, _, err := utils.NewTokenSigner("test-secret").GenerateToken(utils.AdminSubject, time.Hour)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Authenticate(context.Background(), token), ErrUnauthorized)
}

func TestLoginDisabledWithoutPassword(t *testing.T) {
	svc := NewAdminService(repository.NewMemoryRepositories(), Options{Signer: utils.NewTokenSigner("x")})
	_, err := svc.Login(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrAdminDisabled)
}

func TestResolvePasswordHashPrefersHash(t *testing.T) {
	hash, err := HashPassword("from-hash")
	require.NoError(t, err)

	got, err := ResolvePasswordHash(string(hash), "plain")
	require.NoError(t, err)
	assert.Equal(t, hash, got)

	_, err = ResolvePasswordHash("not-a-hash", "")
	assert.Error(t, err)

	none, err := ResolvePasswordHash("", "")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestStats(t *testing.T) {
	svc, repos := newTestAdmin(t)
	for i, status := range []string{models.StatusPending, models.StatusPending, models.StatusConfirmed, models.StatusCancelled} {
		require.NoError(t, repos.Bookings.Create(&models.Booking{ID: string(rune('a' + i)), Status: status}))
	}
	_, err := svc.BlockSlot(context.Background(), models.BlockedSlotInput{Date: "2025-03-01", Time: "2:00 PM"})
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.AdminStats{Total: 4, Pending: 2, Confirmed: 1, Blocked: 1}, stats)
}

func TestBlockSlotRejectsDuplicate(t *testing.T) {
	svc, _ := newTestAdmin(t)
	ctx := context.Background()

	slot, err := svc.BlockSlot(ctx, models.BlockedSlotInput{Date: "2025-03-01", Time: "14:00"})
	require.NoError(t, err)
	assert.Equal(t, 14*60, slot.Start)
	assert.Equal(t, defaultBlockReason, slot.Reason)

	_, err = svc.BlockSlot(ctx, models.BlockedSlotInput{Date: "2025-03-01", Time: "2:00 PM"})
	assert.ErrorIs(t, err, ErrSlotExists)
}

func TestBulkBlockWeekdaysAndSkips(t *testing.T) {
	svc, _ := newTestAdmin(t)
	ctx := context.Background()

	// 2025-03-02 is a Sunday.
	_, err := svc.BlockSlot(ctx, models.BlockedSlotInput{Date: "2025-03-02", Time: "10:00 AM"})
	require.NoError(t, err)

	n, err := svc.BulkBlock(ctx, models.BulkBlockInput{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-09",
		Days:      []int{0, 6},
		Times:     []string{"10:00 AM", "11:00", "10:00"},
		Reason:    "Monthly client rental",
	})
	require.NoError(t, err)
	// Sat 1, Sun 2, Sat 8, Sun 9 times two hours, minus the existing Sunday slot.
	assert.Equal(t, 7, n)

	grouped, err := svc.BlockedSlots(ctx)
	require.NoError(t, err)
	assert.Len(t, grouped, 4)
	require.Len(t, grouped["2025-03-02"], 2)
	assert.Equal(t, "10:00 AM", grouped["2025-03-02"][0].Time)
	assert.Equal(t, "11:00 AM", grouped["2025-03-02"][1].Time)
	assert.NotContains(t, grouped, "2025-03-03")
}

func TestBulkBlockValidation(t *testing.T) {
	svc, _ := newTestAdmin(t)
	ctx := context.Background()
	base := models.BulkBlockInput{StartDate: "2025-03-10", EndDate: "2025-03-01", Days: []int{1}, Times: []string{"9:00 AM"}, Reason: "x"}

	_, err := svc.BulkBlock(ctx, base)
	var verr *booking.ValidationError
	assert.ErrorAs(t, err, &verr)

	long := base
	long.StartDate, long.EndDate = "2025-01-01", "2026-06-01"
	_, err = svc.BulkBlock(ctx, long)
	assert.ErrorAs(t, err, &verr)

	badDay := base
	badDay.EndDate = "2025-03-20"
	badDay.Days = []int{7}
	_, err = svc.BulkBlock(ctx, badDay)
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteBlockedSlots(t *testing.T) {
	svc, _ := newTestAdmin(t)
	ctx := context.Background()
	a, err := svc.BlockSlot(ctx, models.BlockedSlotInput{Date: "2025-03-01", Time: "9:00 AM"})
	require.NoError(t, err)
	_, err = svc.BlockSlot(ctx, models.BlockedSlotInput{Date: "2025-03-01", Time: "10:00 AM"})
	require.NoError(t, err)
	_, err = svc.BlockSlot(ctx, models.BlockedSlotInput{Date: "2025-03-02", Time: "10:00 AM"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBlockedSlot(ctx, a.ID))
	assert.ErrorIs(t, svc.DeleteBlockedSlot(ctx, a.ID), booking.ErrNotFound)

	grouped, _ := svc.BlockedSlots(ctx)
	require.Len(t, grouped["2025-03-01"], 1)
	assert.Equal(t, "10:00 AM", grouped["2025-03-01"][0].Time)

	n, err := svc.DeleteBlockedSlotsByDate(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	grouped, _ = svc.BlockedSlots(ctx)
	assert.NotContains(t, grouped, "2025-03-01")
	assert.Contains(t, grouped, "2025-03-02")

	n, err = svc.DeleteBlockedSlotsByDate(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestVerifyClient(t *testing.T) {
	svc, repos := newTestAdmin(t)
	require.NoError(t, repos.Clients.Create(&models.Client{ID: "c1", Email: "a@b.co", VerificationStatus: models.VerificationPending}))

	c, err := svc.VerifyClient(context.Background(), "c1", models.ClientVerificationInput{Status: models.VerificationVerified, Notes: "ID checked at door"})
	require.NoError(t, err)
	assert.True(t, c.IsVerified)
	assert.NotNil(t, c.VerificationDate)
	assert.False(t, c.NeedsVerification())

	_, err = svc.VerifyClient(context.Background(), "c1", models.ClientVerificationInput{Status: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = svc.VerifyClient(context.Background(), "nope", models.ClientVerificationInput{Status: models.VerificationFailed})
	assert.ErrorIs(t, err, booking.ErrNotFound)
}
