package formatting

import "github.com/daltekdz/daltekdz_bot/internal/model"

// StatusDisplay emoji и подпись статуса
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetBookingStatusDisplay возвращает отображение статуса бронирования
func GetBookingStatusDisplay(status model.BookingStatus) StatusDisplay {
	switch status {
	case model.BookingStatusConfirmed:
		return StatusDisplay{Emoji: "✅", Text: "Confirmée"}
	case model.BookingStatusCompleted:
		return StatusDisplay{Emoji: "✔️", Text: "Terminée"}
	case model.BookingStatusCanceled:
		return StatusDisplay{Emoji: "❌", Text: "Annulée"}
	default:
		return StatusDisplay{Emoji: "❓", Text: string(status)}
	}
}
