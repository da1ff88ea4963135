package model

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed" // Подтверждено
	BookingStatusCompleted BookingStatus = "completed" // Завершено
	BookingStatusCanceled  BookingStatus = "canceled"  // Отменено
)

// Customer контактные данные клиента из шага Contact
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"` // необязательно
}

type Booking struct {
	ID         int64         `json:"id"`
	TelegramID int64         `json:"telegram_id"`
	ServiceID  int64         `json:"service_id"`
	StaffID    *int64        `json:"staff_id"` // nil = любой свободный мастер
	Date       string        `json:"date"`     // YYYY-MM-DD
	Time       string        `json:"time"`     // HH:MM
	Customer   Customer      `json:"customer"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`

	// Дополнительные поля для удобства (не из БД)
	Service *Service     `json:"service,omitempty"`
	Staff   *StaffMember `json:"staff,omitempty"`
}
