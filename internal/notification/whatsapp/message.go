// Package whatsapp готовит бронирование к отправке через ссылку wa.me
package whatsapp

import (
	"fmt"
	"strings"

	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

// FormatBookingMessage собирает текст бронирования для владельца салона
func FormatBookingMessage(s wizard.Summary) string {
	var b strings.Builder

	b.WriteString("Nouvelle réservation\n\n")
	fmt.Fprintf(&b, "Service : %s\n", s.ServiceName)
	if s.Price > 0 || s.Duration > 0 {
		fmt.Fprintf(&b, "Prix : %d DA (%d min)\n", s.Price, s.Duration)
	}
	fmt.Fprintf(&b, "Employé : %s\n", s.StaffName)
	fmt.Fprintf(&b, "Date : %s à %s\n\n", s.Date, s.Time)
	fmt.Fprintf(&b, "Client : %s\n", s.Customer.Name)
	fmt.Fprintf(&b, "Téléphone : %s\n", s.Customer.Phone)
	fmt.Fprintf(&b, "E-mail : %s", s.Customer.Email)
	if notes := strings.TrimSpace(s.Customer.Notes); notes != "" {
		fmt.Fprintf(&b, "\nNotes : %s", notes)
	}

	return b.String()
}
