package formatting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "800 DA", FormatPrice(800))
	assert.Equal(t, "2 500 DA", FormatPrice(2500))
	assert.Equal(t, "1 250 000 DA", FormatPrice(1250000))
	assert.Equal(t, "0 DA", FormatPrice(0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "30 min", FormatDuration(30))
	assert.Equal(t, "1 h", FormatDuration(60))
	assert.Equal(t, "2 h 05", FormatDuration(125))
}

func TestFormatDates(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "lun. 10/03", FormatDayButton(day))
	assert.Equal(t, "lundi 10 mars 2025", FormatDateLong("2025-03-10"))
	assert.Equal(t, "garbage", FormatDateLong("garbage"))
}

func TestPluralizeDays(t *testing.T) {
	assert.Equal(t, "0 jour", PluralizeDays(0))
	assert.Equal(t, "1 jour", PluralizeDays(1))
	assert.Equal(t, "15 jours", PluralizeDays(15))
}

func TestGetBookingStatusDisplay(t *testing.T) {
	assert.Equal(t, "Confirmée", GetBookingStatusDisplay("confirmed").Text)
	assert.Equal(t, "❓", GetBookingStatusDisplay("weird").Emoji)
}
