package handlers

import (
	"fmt"
	"html"
	"strings"

	cmdfmt "github.com/daltekdz/daltekdz_bot/internal/controller/callbacks/common/formatting"
	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/model"
)

// FormatBooking форматирует бронирование для /mybookings
func FormatBooking(booking *model.Booking) string {
	display := cmdfmt.GetBookingStatusDisplay(booking.Status)

	serviceName := fmt.Sprintf("Service #%d", booking.ServiceID)
	if booking.Service != nil {
		serviceName = booking.Service.Name
	}
	staffName := model.AnyStaffName
	if booking.Staff != nil {
		staffName = booking.Staff.Name
	}

	return fmt.Sprintf(
		"%s <b>%s</b> · #%d\n"+
			"📅 %s à %s\n"+
			"👤 %s\n"+
			"📊 %s",
		display.Emoji,
		html.EscapeString(serviceName),
		booking.ID,
		cmdfmt.FormatDateLong(booking.Date),
		booking.Time,
		html.EscapeString(staffName),
		display.Text,
	)
}

// FormatFeatured форматирует список активных продвижений
func FormatFeatured(entries []featured.Entry) string {
	if len(entries) == 0 {
		return "Aucun salon mis en avant pour le moment."
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "⭐ <b>Salons à la une</b>")
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s · encore %s",
			i+1, html.EscapeString(e.StoreName), cmdfmt.PluralizeDays(e.DaysRemaining)))
	}
	return strings.Join(lines, "\n")
}
