package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/app"
	"github.com/daltekdz/daltekdz_bot/internal/config"
	"github.com/daltekdz/daltekdz_bot/internal/controller"
	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/httpapi"
	"github.com/daltekdz/daltekdz_bot/internal/httpapi/api"
	"github.com/daltekdz/daltekdz_bot/internal/httpapi/middleware"
	"github.com/daltekdz/daltekdz_bot/internal/kv"
	"github.com/daltekdz/daltekdz_bot/internal/notification"
	"github.com/daltekdz/daltekdz_bot/internal/pkg/clock"
	"github.com/daltekdz/daltekdz_bot/internal/pkg/jwt"
	"github.com/daltekdz/daltekdz_bot/internal/repository"
	"github.com/daltekdz/daltekdz_bot/internal/service"
	"github.com/daltekdz/daltekdz_bot/migrations"
)

const kvPrefix = "daltekdz:"

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)

	defer logger.Sync()

	logger.Sugar().Infow("Starting salon booking bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("✅ Connected to PostgreSQL")

	migrator, err := app.NewMigrator(pool, migrations.FS, cfg.Scheduler.MigrationsDir, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		_ = migrator.Close()
		return err
	}
	_ = migrator.Close()

	redisClient, err := kv.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	store := kv.NewRedisStore(redisClient, kvPrefix)
	logger.Info("✅ Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	clk := clock.NewRealClock()

	// Репозитории
	userRepo := repository.NewUserRepository(pool)
	storeRepo := repository.NewStoreRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	// Уведомления
	messenger := notification.NewBotMessenger(b)
	notificationService := notification.NewService(notificationRepo, messenger, cfg.Admin.ChatID, logger)
	chatNotifier := notification.NewChatNotifier(messenger, cfg.Store.Phone, cfg.Store.ChatID, logger)

	// Сервисы
	userService := service.NewUserService(userRepo, store, logger)
	catalogService := service.NewCatalogService(catalogRepo, logger)
	storeService := service.NewStoreService(storeRepo, logger)
	bookingService := service.NewBookingService(bookingRepo, notificationService, chatNotifier, logger)
	authService := service.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash,
		jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clk), logger)
	featuredService := featured.NewService(featured.NewKVRepository(store), storeService, notificationService, clk, logger)

	scheduler := app.NewScheduler(featuredService, cfg.Scheduler.SweepInterval, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	// HTTP API
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	httpapi.NewRouter(engine,
		httpapi.RouterConfig{
			CORSAllowOrigins:   cfg.HTTP.CORSAllowOrigins,
			LoginRatePerMinute: cfg.HTTP.LoginRatePerMinute,
		},
		httpapi.Handlers{
			Auth:         api.NewAuthHandler(authService),
			Store:        api.NewStoreHandler(storeService),
			Featured:     api.NewFeaturedHandler(featuredService),
			Notification: api.NewNotificationHandler(notificationService),
			Catalog:      api.NewCatalogHandler(catalogService),
		},
		middleware.NewAuthMiddleware(authService, logger),
		logger,
	)
	server := httpapi.NewServer(cfg.HTTP.Port, engine, logger)
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
	defer func() {
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("HTTP server shutdown failed", zap.Error(err))
		}
	}()

	// Telegram бот
	botController := controller.NewBotController(b, userService, catalogService, bookingService, featuredService, clk, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	return botController.Start(ctx)
}
