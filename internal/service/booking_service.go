package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

// HistoryLimit сколько бронирований показывает /mybookings
const HistoryLimit = 10

var ErrIncompleteBooking = errors.New("booking details are incomplete")

// Confirmation результат подтверждения
type Confirmation struct {
	Booking *model.Booking
	// WhatsAppLink клиент сам отправляет по ней бронирование салону
	WhatsAppLink string
	// SharedWithStore ссылка отправлена в Telegram чат владельца. Это не доставка в WhatsApp.
	SharedWithStore bool
}

type BookingService struct {
	bookingRepo BookingRepository
	notifier    Notifier
	sharer      BookingSharer
	logger      *zap.Logger
}

func NewBookingService(
	bookingRepo BookingRepository,
	notifier Notifier,
	sharer BookingSharer,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		sharer:      sharer,
		logger:      logger,
	}
}

// Confirm сохраняет бронирование, затем создаёт одно уведомление для админки
// и один раз передаёт бронирование владельцу салона. Ошибка передачи не возвращается,
// её результат виден в Confirmation.SharedWithStore.
func (s *BookingService) Confirm(ctx context.Context, telegramID int64, details wizard.BookingDetails) (*Confirmation, error) {
	if details.Service == nil || details.Staff == nil || details.Date == "" || details.Time == "" {
		return nil, ErrIncompleteBooking
	}

	booking := &model.Booking{
		TelegramID: telegramID,
		ServiceID:  details.Service.ID,
		Date:       details.Date,
		Time:       details.Time,
		Customer:   details.Customer,
		Status:     model.BookingStatusConfirmed,
		Service:    details.Service,
		Staff:      details.Staff,
	}
	if !details.Staff.IsAny() {
		staffID := details.Staff.ID
		booking.StaffID = &staffID
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.logger.Info("Booking confirmed",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("telegram_id", telegramID),
		zap.Int64("service_id", booking.ServiceID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time),
	)

	summary := wizard.SummaryOf(details)

	s.notifier.Notify(ctx, &model.Notification{
		Kind:    model.NotificationBookingCreated,
		Title:   "Nouvelle réservation",
		Message: fmt.Sprintf("%s a réservé %s le %s à %s", summary.Customer.Name, summary.ServiceName, summary.Date, summary.Time),
		Payload: map[string]string{
			"booking_id":    fmt.Sprint(booking.ID),
			"customer_name": summary.Customer.Name,
			"service":       summary.ServiceName,
			"date":          summary.Date,
			"time":          summary.Time,
			"phone":         summary.Customer.Phone,
		},
	})

	conf := &Confirmation{
		Booking:      booking,
		WhatsAppLink: s.sharer.BookingLink(summary),
	}
	if err := s.sharer.ShareBooking(ctx, summary); err != nil {
		s.logger.Warn("Failed to share booking with store",
			zap.Int64("booking_id", booking.ID),
			zap.Error(err),
		)
	} else {
		conf.SharedWithStore = true
	}

	return conf, nil
}

// ListByTelegramID последние бронирования клиента
func (s *BookingService) ListByTelegramID(ctx context.Context, telegramID int64) ([]*model.Booking, error) {
	bookings, err := s.bookingRepo.GetByTelegramID(ctx, telegramID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
