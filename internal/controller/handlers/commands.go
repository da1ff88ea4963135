package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/daltekdz/daltekdz_bot/internal/controller/flow"
	"github.com/daltekdz/daltekdz_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.ensureUser(ctx, b, update)
	if !ok {
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Bonjour %s !\n\n"+
			"Bienvenue chez Daltek DZ, la réservation de salons de beauté en Algérie.\n\n"+
			"Commandes disponibles :\n"+
			"/book - Réserver un rendez-vous\n"+
			"/mybookings - Mes réservations\n"+
			"/featured - Salons à la une\n"+
			"/help - Aide",
		html.EscapeString(user.FirstName),
	)

	h.sendHTML(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Aide\n\n" +
		"/book - Réserver en 5 étapes : service, employé, date et heure, coordonnées, confirmation\n" +
		"/mybookings - Vos dernières réservations\n" +
		"/featured - Salons mis en avant\n" +
		"/language fr|ar|en - Langue préférée\n" +
		"/cancel - Annuler la réservation en cours\n\n" +
		"Pendant la saisie des coordonnées, répondez simplement par message."

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   helpText,
	})
}

// HandleBook обрабатывает команду /book - новый мастер бронирования
func (h *Handlers) HandleBook(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.ensureUser(ctx, b, update); !ok {
		return
	}

	target := flow.Target{
		ChatID:     update.Message.Chat.ID,
		TelegramID: update.Message.From.ID,
	}
	if err := h.flow.Start(ctx, b, target); err != nil {
		h.logger.Error("Failed to start booking wizard",
			zap.Int64("telegram_id", target.TelegramID),
			zap.Error(err))
		h.sendError(ctx, b, target.ChatID, "❌ Impossible de démarrer la réservation. Réessayez plus tard.")
	}
}

// HandleCancel обрабатывает команду /cancel - отмена текущего бронирования
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "✅ Réservation annulée.\n\nUtilisez /book pour recommencer."
	if !h.flow.Cancel(update.Message.From.ID) {
		text = "❌ Aucune réservation en cours."
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}

// HandleMyBookings обрабатывает команду /mybookings
func (h *Handlers) HandleMyBookings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	h.logger.Info("HandleMyBookings called", zap.Int64("telegram_id", telegramID))

	bookings, err := h.bookingService.ListByTelegramID(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to get bookings", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Impossible de charger vos réservations.")
		return
	}

	if len(bookings) == 0 {
		h.sendHTML(ctx, b, update.Message.Chat.ID, "📭 Vous n'avez pas encore de réservation.\n\n/book pour en créer une.")
		return
	}

	parts := make([]string, 0, len(bookings)+1)
	parts = append(parts, "📋 <b>Mes réservations</b>")
	for _, booking := range bookings {
		parts = append(parts, FormatBooking(booking))
	}
	h.sendHTML(ctx, b, update.Message.Chat.ID, strings.Join(parts, "\n\n"))
}

// HandleFeatured обрабатывает команду /featured
func (h *Handlers) HandleFeatured(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	entries, err := h.featuredService.Active(ctx)
	if err != nil {
		h.logger.Error("Failed to list featured stores", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Impossible de charger les salons à la une.")
		return
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, FormatFeatured(entries))
}

// HandleLanguage обрабатывает команду /language [fr|ar|en]
func (h *Handlers) HandleLanguage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	fields := strings.Fields(update.Message.Text)

	if len(fields) < 2 {
		lang, err := h.userService.Language(ctx, telegramID)
		if err != nil {
			h.logger.Error("Failed to get language", zap.Int64("telegram_id", telegramID), zap.Error(err))
			h.sendError(ctx, b, chatID, "❌ Une erreur est survenue.")
			return
		}
		h.sendHTML(ctx, b, chatID, fmt.Sprintf("🌐 Langue actuelle : <b>%s</b>\nUtilisez /language fr|ar|en", lang))
		return
	}

	lang := strings.ToLower(fields[1])
	err := h.userService.SetLanguage(ctx, telegramID, lang)
	switch {
	case errors.Is(err, service.ErrUnsupportedLanguage):
		h.sendError(ctx, b, chatID, "❌ Langue non prise en charge. Choix : fr, ar, en.")
	case err != nil:
		h.logger.Error("Failed to set language", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Une erreur est survenue.")
	default:
		h.sendHTML(ctx, b, chatID, fmt.Sprintf("✅ Langue enregistrée : <b>%s</b>", lang))
	}
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	target := flow.Target{
		ChatID:     update.Message.Chat.ID,
		TelegramID: update.Message.From.ID,
	}

	handled, err := h.flow.HandleText(ctx, b, target, update.Message.Text)
	if err != nil {
		h.logger.Error("Failed to handle contact input",
			zap.Int64("telegram_id", target.TelegramID),
			zap.Error(err))
		h.sendError(ctx, b, target.ChatID, "❌ Une erreur est survenue. Utilisez /book pour recommencer.")
		return
	}
	if !handled {
		h.logger.Debug("No active input, ignoring message", zap.Int64("telegram_id", target.TelegramID))
	}
}
