package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wavehouse/config"
	"wavehouse/cron"
	"wavehouse/database"
	"wavehouse/database/repository"
	"wavehouse/handlers"
	"wavehouse/middleware"
	"wavehouse/routes"
	"wavehouse/services/admin"
	"wavehouse/services/booking"
	"wavehouse/services/catalog"
	"wavehouse/services/contact"
	"wavehouse/services/notification"
	"wavehouse/services/payment"
	"wavehouse/services/storage"
	"wavehouse/utils"
	"wavehouse/web"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// repositories.
	var repos repository.Repositories
	var pingDB func(ctx context.Context) error
	if cfg.DatabaseURL != "" {
		if err := database.InitDB(cfg.DatabaseURL); err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		repos = repository.NewMongoRepositories()
		pingDB = database.Ping
	} else {
		logger.Warn("main: DATABASE_URL not set, using in-memory storage")
		repos = repository.NewMemoryRepositories()
	}

	// redis-backed sessions, cache and notification queue.
	var (
		sessions   admin.SessionStore
		availCache booking.AvailabilityCache = booking.NoopCache{}
		notifier   notification.Notifier
		worker     *cron.NotificationWorker
		queue      *asynq.Client
	)
	sender := newSender(cfg, logger)
	if utils.RedisEnabled() {
		if err := utils.InitCache(); err != nil {
			logger.Fatal("main: redis cache", zap.Error(err))
		}
		if err := utils.InitAuthCache(); err != nil {
			logger.Fatal("main: redis auth cache", zap.Error(err))
		}
		sessions = admin.NewRedisSessionStore(utils.AuthCacheClient)
		availCache = booking.NewRedisCache(utils.CacheClient)

		queue = asynq.NewClient(cron.QueueRedisOpt())
		notifier = notification.NewQueueNotifier(queue)
		worker = cron.NewNotificationWorker(cron.QueueRedisOpt(), sender)
		worker.Start()
	} else {
		logger.Warn("main: REDIS_ADDR not set, sessions are in-memory and notifications are sent inline")
		sessions = admin.NewMemorySessionStore()
		notifier = sender
	}

	// payments.
	var gateway payment.Gateway
	if cfg.StripeKey != "" {
		g, err := payment.NewStripeGateway(cfg.StripeKey)
		if err != nil {
			logger.Fatal("main: stripe", zap.Error(err))
		}
		gateway = g
	} else {
		logger.Info("main: STRIPE_KEY not set, deposits disabled")
	}

	// page images.
	var assets storage.AssetResolver = storage.LocalAssets{}
	if cfg.CloudinaryCloudName != "" {
		ca, err := storage.NewCloudinaryAssets(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			logger.Fatal("main: failed to initialize cloudinary", zap.Error(err))
		}
		assets = ca
	}

	// services.
	passwordHash, err := admin.ResolvePasswordHash(cfg.AdminPasswordHash, cfg.AdminPassword)
	if err != nil {
		logger.Fatal("main: admin password", zap.Error(err))
	}
	if passwordHash == nil {
		logger.Warn("main: ADMIN_PASSWORD not set, admin login disabled")
	}

	bookingService := booking.NewBookingService(repos, notifier, gateway, availCache, cfg.DepositRate)
	adminService := admin.NewAdminService(repos, admin.Options{
		PasswordHash: passwordHash,
		SessionTTL:   time.Duration(cfg.AdminSessionHours) * time.Hour,
		Signer:       utils.NewTokenSigner(jwtSecret(cfg.JWTSecret, logger)),
		Sessions:     sessions,
		Cache:        availCache,
	})
	contactService := contact.NewContactService(repos.Contacts, notifier)

	cat, err := catalog.New(assets)
	if err != nil {
		logger.Fatal("main: failed to render catalog", zap.Error(err))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	health := utils.NewHealthMonitor(pingDB, utils.RedisClients())
	health.Start(ctx, 30*time.Second)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService),
		Admin:        handlers.NewAdminHandler(adminService),
		Blocked:      handlers.NewBlockedSlotHandler(adminService),
		Contact:      handlers.NewContactHandler(contactService),
		Page:         handlers.NewPageHandler(cat, health),
		AdminAuth:    middleware.AdminAuthMiddleware(adminService, isUnauthorized),
		LoginLimiter: middleware.RateLimitMiddleware(cfg.LoginAttemptsPerMin, cfg.LoginAttemptsPerMin),
	}

	tmpl, err := web.Templates()
	if err != nil {
		logger.Fatal("main: failed to parse templates", zap.Error(err))
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, cfg.MaxRequestsPerMin/4))
	router.SetHTMLTemplate(tmpl)

	routes.RegisterRoutes(router, handlerBundle, cfg.AllowedOrigins())

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		_ = queue.Close()
	}
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Warn("main: failed to close database", zap.Error(err))
	}
	utils.CloseCache()

	logger.Sugar().Info("main: server stopped gracefully")
	_ = logger.Sync()
}

// newSender picks the notifier that actually delivers messages.
func newSender(cfg config.Config, logger *zap.Logger) notification.Notifier {
	if cfg.ResendAPIKey == "" {
		logger.Info("main: RESEND_API_KEY not set, notifications are logged only")
		return notification.NewLogNotifier(logger)
	}
	return notification.NewEmailNotifier(cfg.ResendAPIKey, cfg.NotifyFrom, cfg.NotifyTo)
}

func isUnauthorized(err error) bool {
	return errors.Is(err, admin.ErrUnauthorized)
}

// jwtSecret returns the configured secret or a random one, which invalidates sessions on restart.
func jwtSecret(secret string, logger *zap.Logger) string {
	if secret != "" {
		return secret
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		logger.Fatal("main: failed to generate JWT secret", zap.Error(err))
	}
	logger.Warn("main: JWT_SECRET not set, using a random per-process secret")
	return hex.EncodeToString(buf)
}
