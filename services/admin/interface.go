package admin

import (
	"context"
	"time"

	"wavehouse/database/repository"
	"wavehouse/models"
	"wavehouse/services/booking"
	"wavehouse/utils"

	"go.uber.org/zap"
)

// AdminService backs the admin overlay and the admin API.
type AdminService interface {
	Login(ctx context.Context, password string) (*models.AdminSession, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) error

	Stats(ctx context.Context) (*models.AdminStats, error)

	BlockSlot(ctx context.Context, in models.BlockedSlotInput) (*models.BlockedSlot, error)
	BulkBlock(ctx context.Context, in models.BulkBlockInput) (int, error)
	BlockedSlots(ctx context.Context) (map[string][]models.BlockedSlotView, error)
	DeleteBlockedSlot(ctx context.Context, id string) error
	DeleteBlockedSlotsByDate(ctx context.Context, date string) (int64, error)

	Clients(ctx context.Context) ([]models.Client, error)
	VerifyClient(ctx context.Context, id string, in models.ClientVerificationInput) (*models.Client, error)
	ContactMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	repos    repository.Repositories
	sessions SessionStore
	signer   *utils.TokenSigner
	cache    booking.AvailabilityCache

	passwordHash []byte
	sessionTTL   time.Duration

	logger *zap.Logger
	now    func() time.Time
}

// Options configures DefaultAdminService.
type Options struct {
	PasswordHash []byte // bcrypt hash; empty disables admin login
	SessionTTL   time.Duration
	Signer       *utils.TokenSigner
	Sessions     SessionStore
	Cache        booking.AvailabilityCache
}

func NewAdminService(repos repository.Repositories, opts Options) *DefaultAdminService {
	if opts.Sessions == nil {
		opts.Sessions = NewMemorySessionStore()
	}
	if opts.Cache == nil {
		opts.Cache = booking.NoopCache{}
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 12 * time.Hour
	}
	return &DefaultAdminService{
		repos:        repos,
		sessions:     opts.Sessions,
		signer:       opts.Signer,
		cache:        opts.Cache,
		passwordHash: opts.PasswordHash,
		sessionTTL:   opts.SessionTTL,
		logger:       zap.L().Named("admin"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}
