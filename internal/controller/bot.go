package controller

import (
	"context"

	"github.com/daltekdz/daltekdz_bot/internal/controller/callbacks"
	"github.com/daltekdz/daltekdz_bot/internal/controller/flow"
	"github.com/daltekdz/daltekdz_bot/internal/controller/handlers"
	"github.com/daltekdz/daltekdz_bot/internal/controller/state"
	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/pkg/clock"
	"github.com/daltekdz/daltekdz_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	catalogService *service.CatalogService,
	bookingService *service.BookingService,
	featuredService *featured.Service,
	clk clock.Clock,
	logger *zap.Logger,
) *BotController {
	// Сессии мастера бронирования живут в памяти процесса
	stateManager := state.NewManager()
	bookingFlow := flow.New(catalogService, bookingService, stateManager, clk, logger)

	cmdHandlers := handlers.NewHandlers(
		userService,
		bookingService,
		featuredService,
		bookingFlow,
		logger,
	)

	callbackHandler := callbacks.NewHandler(bookingFlow, logger)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/book", bot.MatchTypeExact, c.handlers.HandleBook)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mybookings", bot.MatchTypeExact, c.handlers.HandleMyBookings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/featured", bot.MatchTypeExact, c.handlers.HandleFeatured)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/language", bot.MatchTypePrefix, c.handlers.HandleLanguage)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Обработчик текстовых сообщений (ввод контактных данных)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Démarrer"},
		{Command: "book", Description: "📅 Réserver un rendez-vous"},
		{Command: "mybookings", Description: "📋 Mes réservations"},
		{Command: "featured", Description: "⭐ Salons à la une"},
		{Command: "language", Description: "🌐 Langue préférée"},
		{Command: "cancel", Description: "✖️ Annuler la réservation en cours"},
		{Command: "help", Description: "❓ Aide"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
