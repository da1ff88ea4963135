package formatting

import (
	"fmt"
	"time"
)

var weekdaysShort = [...]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."}

var months = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// DateLayout формат даты в callback data и в бронировании
const DateLayout = "2006-01-02"

// FormatDayButton подпись кнопки даты: "lun. 10/03"
func FormatDayButton(t time.Time) string {
	return fmt.Sprintf("%s %s", weekdaysShort[t.Weekday()], t.Format("02/01"))
}

// FormatDateLong дата для сводки: "lundi 10 mars 2025"
func FormatDateLong(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %d %s %d", weekdayLong(t.Weekday()), t.Day(), months[t.Month()-1], t.Year())
}

func weekdayLong(d time.Weekday) string {
	return [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}[d]
}

// FormatDuration форматирует длительность в минутах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d h", hours)
	}
	return fmt.Sprintf("%d h %02d", hours, mins)
}

// PluralizeDays "1 jour", "7 jours"
func PluralizeDays(count int) string {
	if count <= 1 {
		return fmt.Sprintf("%d jour", count)
	}
	return fmt.Sprintf("%d jours", count)
}
