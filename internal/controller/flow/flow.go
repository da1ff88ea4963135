package flow

import (
	"context"
	"errors"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/controller/state"
	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/pkg/clock"
	"github.com/daltekdz/daltekdz_bot/internal/service"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

var (
	ErrNoSession       = errors.New("no booking session")
	ErrUnavailableSlot = errors.New("slot is not available")
	ErrStaleScreen     = errors.New("screen is no longer active")
)

// anyStep разрешает операцию на любом шаге
const anyStep wizard.Step = -1

// Sender подмножество методов *bot.Bot, нужное мастеру
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
}

// Catalog источник услуг и мастеров
type Catalog interface {
	ListServices(ctx context.Context) ([]*model.Service, error)
	GetService(ctx context.Context, id int64) (*model.Service, error)
	ListStaffFor(ctx context.Context, category string) ([]*model.StaffMember, error)
	GetStaff(ctx context.Context, id int64) (*model.StaffMember, error)
}

// Booker сохраняет подтверждённое бронирование
type Booker interface {
	Confirm(ctx context.Context, telegramID int64, details wizard.BookingDetails) (*service.Confirmation, error)
}

// Flow ведёт пользователя по мастеру бронирования в Telegram
type Flow struct {
	catalog  Catalog
	bookings Booker
	sessions *state.Manager
	clock    clock.Clock
	logger   *zap.Logger
}

func New(catalog Catalog, bookings Booker, sessions *state.Manager, clk clock.Clock, logger *zap.Logger) *Flow {
	return &Flow{
		catalog:  catalog,
		bookings: bookings,
		sessions: sessions,
		clock:    clk,
		logger:   logger,
	}
}

// Target куда отрисовать экран: MessageID == 0 означает новое сообщение
type Target struct {
	ChatID     int64
	TelegramID int64
	MessageID  int
}

type outcome struct {
	warning      string
	confirmation *service.Confirmation
	confirmErr   error
}

// Start начинает новое бронирование
func (f *Flow) Start(ctx context.Context, s Sender, t Target) error {
	sess := f.sessions.Session(t.TelegramID)
	sess.Lock()
	defer sess.Unlock()

	sess.Wizard.Reset()
	sess.Draft = model.Customer{}
	f.sessions.SetState(t.TelegramID, state.StateNone)

	f.logger.Info("Booking wizard started", zap.Int64("telegram_id", t.TelegramID))
	return f.render(ctx, s, t, sess, outcome{})
}

// Cancel сбрасывает сессию бронирования. false если сессии не было.
func (f *Flow) Cancel(telegramID int64) bool {
	if !f.sessions.HasSession(telegramID) {
		return false
	}
	f.sessions.ClearState(telegramID)
	return true
}

// SelectService шаг 1
func (f *Flow) SelectService(ctx context.Context, s Sender, t Target, serviceID int64) error {
	svc, err := f.catalog.GetService(ctx, serviceID)
	if err != nil {
		return err
	}
	return f.apply(ctx, s, t, wizard.StepService, func(w *wizard.Wizard) (wizard.Transition, error) {
		return w.SelectService(svc)
	})
}

// SelectStaff шаг 2. model.AnyStaffID выбирает любого свободного мастера.
func (f *Flow) SelectStaff(ctx context.Context, s Sender, t Target, staffID int64) error {
	staff, err := f.catalog.GetStaff(ctx, staffID)
	if err != nil {
		return err
	}
	return f.apply(ctx, s, t, wizard.StepStaff, func(w *wizard.Wizard) (wizard.Transition, error) {
		return w.SelectStaff(staff)
	})
}

// SelectDate шаг 3, выбор даты. Пустая дата возвращает к списку дат.
func (f *Flow) SelectDate(ctx context.Context, s Sender, t Target, date string) error {
	now := f.clock.Now()
	if date != "" && !IsAvailableDate(date, now) {
		return ErrUnavailableSlot
	}
	return f.apply(ctx, s, t, wizard.StepDateTime, func(w *wizard.Wizard) (wizard.Transition, error) {
		// Время выбиралось для прежней даты: сбрасываем до SetDate, иначе шаг пройдёт без проверки слота
		prev := w.Details()
		if prev.Time != "" && (date != prev.Date || !IsAvailableTime(date, prev.Time, now)) {
			if tr, err := w.SetTime(""); err != nil {
				return tr, err
			}
		}
		return w.SetDate(date)
	})
}

// SelectTime шаг 3, выбор времени
func (f *Flow) SelectTime(ctx context.Context, s Sender, t Target, hhmm string) error {
	return f.apply(ctx, s, t, wizard.StepDateTime, func(w *wizard.Wizard) (wizard.Transition, error) {
		date := w.Details().Date
		if date == "" || !IsAvailableTime(date, hhmm, f.clock.Now()) {
			return wizard.Transition{From: w.Current(), To: w.Current()}, ErrUnavailableSlot
		}
		return w.SetTime(hhmm)
	})
}

// Back возвращает на предыдущий шаг
func (f *Flow) Back(ctx context.Context, s Sender, t Target) error {
	return f.apply(ctx, s, t, anyStep, func(w *wizard.Wizard) (wizard.Transition, error) {
		return w.Prev()
	})
}

// Next переходит вперёд по уже заполненному шагу
func (f *Flow) Next(ctx context.Context, s Sender, t Target) error {
	return f.apply(ctx, s, t, anyStep, func(w *wizard.Wizard) (wizard.Transition, error) {
		return w.Next()
	})
}

// SkipNotes завершает ввод контактов без примечания
func (f *Flow) SkipNotes(ctx context.Context, s Sender, t Target) error {
	sess, err := f.session(t.TelegramID)
	if err != nil {
		return err
	}
	sess.Lock()
	defer sess.Unlock()

	if f.sessions.GetState(t.TelegramID) != state.StateContactNotes {
		return wizard.ErrStepIncomplete
	}
	sess.Draft.Notes = ""
	return f.submitContact(ctx, s, t, sess)
}

// HandleText принимает ввод контактных данных.
// false если пользователь сейчас ничего не вводит.
func (f *Flow) HandleText(ctx context.Context, s Sender, t Target, text string) (bool, error) {
	input := f.sessions.GetState(t.TelegramID)
	if !input.IsContactInput() || !f.sessions.HasSession(t.TelegramID) {
		return false, nil
	}

	sess := f.sessions.Session(t.TelegramID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Wizard.Current() != wizard.StepContact {
		f.sessions.SetState(t.TelegramID, state.StateNone)
		return false, nil
	}

	text = strings.TrimSpace(text)
	var out outcome

	switch input {
	case state.StateContactName:
		if text == "" {
			out.warning = "Le nom est requis"
			break
		}
		sess.Draft.Name = text
		f.sessions.SetState(t.TelegramID, state.StateContactEmail)
	case state.StateContactEmail:
		sess.Draft.Email = text
		out.warning = wizard.ValidateContact(sess.Draft).Email
		f.sessions.SetState(t.TelegramID, state.StateContactPhone)
	case state.StateContactPhone:
		sess.Draft.Phone = text
		out.warning = wizard.ValidateContact(sess.Draft).Phone
		f.sessions.SetState(t.TelegramID, state.StateContactNotes)
	case state.StateContactNotes:
		sess.Draft.Notes = text
		return true, f.submitContact(ctx, s, t, sess)
	}

	// Ответ на текст всегда новым сообщением под вводом пользователя
	t.MessageID = 0
	return true, f.render(ctx, s, t, sess, out)
}

func (f *Flow) submitContact(ctx context.Context, s Sender, t Target, sess *state.Session) error {
	tr, err := sess.Wizard.SetContact(sess.Draft)
	if err != nil {
		return err
	}
	f.sessions.SetState(t.TelegramID, state.StateNone)

	t.MessageID = 0
	return f.after(ctx, s, t, sess, tr)
}

func (f *Flow) apply(ctx context.Context, s Sender, t Target, step wizard.Step, op func(w *wizard.Wizard) (wizard.Transition, error)) error {
	sess, err := f.session(t.TelegramID)
	if err != nil {
		return err
	}
	sess.Lock()
	defer sess.Unlock()

	// Кнопки со старых экранов не должны менять уже пройденные шаги
	if step != anyStep && sess.Wizard.Current() != step {
		return ErrStaleScreen
	}

	tr, err := op(sess.Wizard)
	if err != nil {
		return err
	}
	return f.after(ctx, s, t, sess, tr)
}

// after обрабатывает переход и перерисовывает экран
func (f *Flow) after(ctx context.Context, s Sender, t Target, sess *state.Session, tr wizard.Transition) error {
	var out outcome

	switch {
	case tr.Confirmed:
		out.confirmation, out.confirmErr = f.bookings.Confirm(ctx, t.TelegramID, sess.Wizard.Details())
		if out.confirmErr != nil {
			f.logger.Error("Failed to confirm booking",
				zap.Int64("telegram_id", t.TelegramID),
				zap.Error(out.confirmErr))
		}
	case tr.To == wizard.StepContact && tr.From != tr.To:
		sess.Draft = sess.Wizard.Details().Customer
		f.sessions.SetState(t.TelegramID, state.StateContactName)
	case tr.From == wizard.StepContact && tr.To != tr.From:
		f.sessions.SetState(t.TelegramID, state.StateNone)
	}

	return f.render(ctx, s, t, sess, out)
}

func (f *Flow) session(telegramID int64) (*state.Session, error) {
	if !f.sessions.HasSession(telegramID) {
		return nil, ErrNoSession
	}
	return f.sessions.Session(telegramID), nil
}

func (f *Flow) view(ctx context.Context, t Target, sess *state.Session, out outcome) (View, error) {
	w := sess.Wizard
	details := w.Details()

	v := View{
		Steps:      w.Steps(),
		Current:    w.Current(),
		Details:    details,
		Input:      f.sessions.GetState(t.TelegramID),
		Draft:      sess.Draft,
		Warning:    out.warning,
		ConfirmErr: out.confirmErr,
	}
	if c := out.confirmation; c != nil {
		v.Booking = c.Booking
		v.WhatsAppLink = c.WhatsAppLink
		v.SharedWithStore = c.SharedWithStore
	}
	v.CanNext = v.Current < wizard.StepContact && w.IsStepValid(v.Current)

	var err error
	switch v.Current {
	case wizard.StepService:
		v.Services, err = f.catalog.ListServices(ctx)
	case wizard.StepStaff:
		if details.Service != nil {
			v.Staff, err = f.catalog.ListStaffFor(ctx, details.Service.Category)
		}
	case wizard.StepDateTime:
		now := f.clock.Now()
		if details.Date == "" {
			v.Dates = AvailableDates(now)
		} else {
			v.Times = AvailableTimes(details.Date, now)
		}
	}
	return v, err
}

func (f *Flow) render(ctx context.Context, s Sender, t Target, sess *state.Session, out outcome) error {
	v, err := f.view(ctx, t, sess, out)
	if err != nil {
		return err
	}
	text, kb := BuildScreen(v)

	if t.MessageID != 0 {
		_, err = s.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      t.ChatID,
			MessageID:   t.MessageID,
			Text:        text,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
		if err == nil || isMessageNotModified(err) {
			sess.MessageID = t.MessageID
			return nil
		}
		f.logger.Warn("Failed to edit wizard message, sending new one", zap.Error(err))
	}

	msg, err := s.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      t.ChatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	if err != nil {
		return err
	}
	if msg != nil {
		sess.MessageID = msg.ID
	}
	return nil
}

func isMessageNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
