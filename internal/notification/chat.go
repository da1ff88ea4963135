package notification

import (
	"context"
	"errors"
	"html"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/notification/whatsapp"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

// ErrNoStoreChat чат владельца салона не настроен
var ErrNoStoreChat = errors.New("store chat is not configured")

// ChatNotifier передаёт бронирование владельцу салона: кнопка со ссылкой wa.me и QR код.
// Успех означает только доставку ссылки в чат владельца.
type ChatNotifier struct {
	messenger   Messenger
	storePhone  string
	storeChatID int64
	logger      *zap.Logger
}

func NewChatNotifier(messenger Messenger, storePhone string, storeChatID int64, logger *zap.Logger) *ChatNotifier {
	return &ChatNotifier{
		messenger:   messenger,
		storePhone:  storePhone,
		storeChatID: storeChatID,
		logger:      logger,
	}
}

// BookingLink ссылка wa.me на номер салона с текстом бронирования
func (c *ChatNotifier) BookingLink(s wizard.Summary) string {
	return whatsapp.Link(c.storePhone, whatsapp.FormatBookingMessage(s))
}

// ShareBooking отправляет бронирование в чат владельца
func (c *ChatNotifier) ShareBooking(ctx context.Context, s wizard.Summary) error {
	if c.storeChatID == 0 {
		return ErrNoStoreChat
	}

	text := whatsapp.FormatBookingMessage(s)
	link := c.BookingLink(s)

	markup := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "📲 Ouvrir WhatsApp", URL: link}},
		},
	}
	if err := c.messenger.SendText(ctx, c.storeChatID, html.EscapeString(text), markup); err != nil {
		return err
	}

	png, err := whatsapp.QRCode(link)
	if err != nil {
		return err
	}
	if err := c.messenger.SendPhoto(ctx, c.storeChatID, "booking.png", png, "Scannez pour ouvrir WhatsApp"); err != nil {
		return err
	}

	c.logger.Info("Booking shared with store",
		zap.Int64("chat_id", c.storeChatID),
		zap.String("service", s.ServiceName),
		zap.String("date", s.Date),
		zap.String("time", s.Time),
	)

	return nil
}
