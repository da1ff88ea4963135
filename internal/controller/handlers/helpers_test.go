package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/model"
)

func TestFormatBooking(t *testing.T) {
	text := FormatBooking(&model.Booking{
		ID:      12,
		Date:    "2025-03-10",
		Time:    "14:30",
		Status:  model.BookingStatusConfirmed,
		Service: &model.Service{Name: "Coupe & barbe"},
	})

	assert.Contains(t, text, "Coupe &amp; barbe")
	assert.Contains(t, text, "#12")
	assert.Contains(t, text, "lundi 10 mars 2025 à 14:30")
	assert.Contains(t, text, model.AnyStaffName)
	assert.Contains(t, text, "Confirmée")
}

func TestFormatFeatured(t *testing.T) {
	assert.Equal(t, "Aucun salon mis en avant pour le moment.", FormatFeatured(nil))

	text := FormatFeatured([]featured.Entry{
		{StoreName: "Salon Yasmine", DaysRemaining: 7},
		{StoreName: "Barber House Oran", DaysRemaining: 1},
	})
	assert.Contains(t, text, "1. Salon Yasmine · encore 7 jours")
	assert.Contains(t, text, "2. Barber House Oran · encore 1 jour")
}
