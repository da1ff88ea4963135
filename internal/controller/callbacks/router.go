package callbacks

import (
	"context"
	"strings"

	"github.com/daltekdz/daltekdz_bot/internal/controller/callbacks/booking"
	"github.com/daltekdz/daltekdz_bot/internal/controller/callbacks/callbacktypes"
	"github.com/daltekdz/daltekdz_bot/internal/controller/callbacks/common"
	"github.com/daltekdz/daltekdz_bot/internal/controller/flow"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Route направляет callback в обработчик по callback data
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	case data == flow.CallbackNoop:
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Мастер бронирования =====
	case strings.HasPrefix(data, flow.CallbackService):
		booking.HandleService(ctx, b, callback, h)
	case strings.HasPrefix(data, flow.CallbackStaff):
		booking.HandleStaff(ctx, b, callback, h)
	case data == flow.CallbackDateReset:
		booking.HandleDateReset(ctx, b, callback, h)
	case strings.HasPrefix(data, flow.CallbackDate):
		booking.HandleDate(ctx, b, callback, h)
	case strings.HasPrefix(data, flow.CallbackTime):
		booking.HandleTime(ctx, b, callback, h)
	case data == flow.CallbackBack:
		booking.HandleBack(ctx, b, callback, h)
	case data == flow.CallbackNext:
		booking.HandleNext(ctx, b, callback, h)
	case data == flow.CallbackSkipNotes:
		booking.HandleSkipNotes(ctx, b, callback, h)
	case data == flow.CallbackNew:
		booking.HandleNew(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
