package common

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseValue возвращает часть callback data после префикса.
// Например: "wiz_time:14:30" -> "14:30"
func ParseValue(data, prefix string) (string, error) {
	if !strings.HasPrefix(data, prefix) {
		return "", ErrInvalidFormat
	}
	return strings.TrimPrefix(data, prefix), nil
}

// ParseID извлекает числовой ID после префикса.
// Например: "wiz_svc:123" -> 123
func ParseID(data, prefix string) (int64, error) {
	value, err := ParseValue(data, prefix)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return id, nil
}
