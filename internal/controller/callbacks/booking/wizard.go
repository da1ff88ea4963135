package booking

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/daltekdz/daltekdz_bot/internal/controller/callbacks/callbacktypes"
	"github.com/daltekdz/daltekdz_bot/internal/controller/callbacks/common"
	"github.com/daltekdz/daltekdz_bot/internal/controller/flow"
	"github.com/daltekdz/daltekdz_bot/internal/model"
)

// step общая обвязка: контекст, экран, ответ на callback
func step(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler,
	action string, run func(hc *common.HandlerContext, t flow.Target) error) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	t, err := hc.Target()
	if err == nil {
		err = run(hc, t)
	}
	if err != nil {
		hc.AnswerError(action, err)
		return
	}
	hc.Answer("")
}

// HandleService выбор услуги: wiz_svc:<id>
func HandleService(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	step(ctx, b, callback, h, "select_service", func(hc *common.HandlerContext, t flow.Target) error {
		id, err := common.ParseID(callback.Data, flow.CallbackService)
		if err != nil {
			return err
		}
		return h.Flow.SelectService(ctx, b, t, id)
	})
}

// HandleStaff выбор мастера: wiz_staff:<id|any>
func HandleStaff(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	step(ctx, b, callback, h, "select_staff", func(hc *common.HandlerContext, t flow.Target) error {
		value, err := common.ParseValue(callback.Data, flow.CallbackStaff)
		if err != nil {
			return err
		}

		id := model.AnyStaffID
		if value != flow.StaffAny {
			if id, err = common.ParseID(callback.Data, flow.CallbackStaff); err != nil {
				return err
			}
		}
		return h.Flow.SelectStaff(ctx, b, t, id)
	})
}

// HandleDate выбор даты: wiz_date:2025-03-10
func HandleDate(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	step(ctx, b, callback, h, "select_date", func(hc *common.HandlerContext, t flow.Target) error {
		date, err := common.ParseValue(callback.Data, flow.CallbackDate)
		if err != nil || date == "" {
			return common.ErrInvalidFormat
		}
		return h.Flow.SelectDate(ctx, b, t, date)
	})
}

// HandleDateReset возврат к выбору даты
func HandleDateReset(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	step(ctx, b, callback, h, "reset_date", func(hc *common.HandlerContext, t flow.Target) error {
		return h.Flow.SelectDate(ctx, b, t, "")
	})
}

// HandleTime выбор времени: wiz_time:14:30
func HandleTime(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	step(ctx, b, callback, h, "select_time", func(hc *common.HandlerContext, t flow.Target) error {
		hhmm, err := common.ParseValue(callback.Data, flow.CallbackTime)
		if err != nil {
			return err
		}
		return h.Flow.SelectTime(ctx, b, t, hhmm)
	})
}

func HandleBack(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	step(ctx, b, callback, h, "back", func(hc *common.HandlerContext, t flow.Target) error {
		return h.Flow.Back(ctx, b, t)
	})
}

func HandleNext(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	step(ctx, b, callback, h, "next", func(hc *common.HandlerContext, t flow.Target) error {
		return h.Flow.Next(ctx, b, t)
	})
}

// HandleSkipNotes пропуск примечания, завершает ввод контактов
func HandleSkipNotes(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	step(ctx, b, callback, h, "skip_notes", func(hc *common.HandlerContext, t flow.Target) error {
		return h.Flow.SkipNotes(ctx, b, t)
	})
}

// HandleNew начинает новое бронирование новым сообщением
func HandleNew(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	step(ctx, b, callback, h, "new_booking", func(hc *common.HandlerContext, t flow.Target) error {
		t.MessageID = 0
		return h.Flow.Start(ctx, b, t)
	})
}
