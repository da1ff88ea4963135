package notification

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Messenger отправляет сообщения в чаты Telegram
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) error
	SendPhoto(ctx context.Context, chatID int64, filename string, data []byte, caption string) error
}

// BotMessenger реализация Messenger поверх бота
type BotMessenger struct {
	bot *bot.Bot
}

func NewBotMessenger(b *bot.Bot) *BotMessenger {
	return &BotMessenger{bot: b}
}

func (m *BotMessenger) SendText(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) error {
	_, err := m.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: markup,
	})
	if err != nil {
		return fmt.Errorf("send message to %d: %w", chatID, err)
	}
	return nil
}

func (m *BotMessenger) SendPhoto(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	_, err := m.bot.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: filename, Data: bytes.NewReader(data)},
		Caption: caption,
	})
	if err != nil {
		return fmt.Errorf("send photo to %d: %w", chatID, err)
	}
	return nil
}
