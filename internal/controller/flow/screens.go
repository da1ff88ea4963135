package flow

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/daltekdz/daltekdz_bot/internal/controller/callbacks/common/formatting"
	"github.com/daltekdz/daltekdz_bot/internal/controller/callbacks/common/keyboard"
	"github.com/daltekdz/daltekdz_bot/internal/controller/state"
	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

// Callback data мастера бронирования
const (
	CallbackService   = "wiz_svc:"   // wiz_svc:<service_id>
	CallbackStaff     = "wiz_staff:" // wiz_staff:<staff_id|any>
	CallbackDate      = "wiz_date:"  // wiz_date:2025-03-10
	CallbackTime      = "wiz_time:"  // wiz_time:14:30
	CallbackDateReset = "wiz_date_reset"
	CallbackBack      = "wiz_back"
	CallbackNext      = "wiz_next"
	CallbackSkipNotes = "wiz_skip_notes"
	CallbackNew       = "wiz_new"
	CallbackNoop      = "noop"

	StaffAny = "any"
)

// Расписание салона
const (
	BookingDays     = 14
	OpeningMinutes  = 9 * 60
	ClosingMinutes  = 19 * 60
	SlotStepMinutes = 30
)

// SalonLocation часовой пояс салонов (Алжир, без перехода на летнее время)
var SalonLocation = time.FixedZone("CET", 60*60)

// View данные для отрисовки текущего шага
type View struct {
	Steps   []wizard.BookingStep
	Current wizard.Step
	Details wizard.BookingDetails
	CanNext bool

	Services []*model.Service
	Staff    []*model.StaffMember
	Dates    []time.Time
	Times    []string

	Input   state.UserState
	Draft   model.Customer
	Warning string

	Booking    *model.Booking
	ConfirmErr error
	// WhatsAppLink ссылка wa.me для отправки бронирования салону
	WhatsAppLink string
	// SharedWithStore салону отправлено сообщение в Telegram
	SharedWithStore bool
}

// BuildScreen возвращает текст и клавиатуру экрана мастера
func BuildScreen(v View) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>Étape %d/%d · %s</b>\n", v.Current.Number(), wizard.StepCount, v.Current.Title()))
	sb.WriteString(progressLine(v.Steps))
	sb.WriteString("\n\n")

	kb := keyboard.NewBuilder()

	switch v.Current {
	case wizard.StepService:
		buildServiceStep(&sb, kb, v)
	case wizard.StepStaff:
		buildStaffStep(&sb, kb, v)
	case wizard.StepDateTime:
		buildDateTimeStep(&sb, kb, v)
	case wizard.StepContact:
		buildContactStep(&sb, kb, v)
	case wizard.StepConfirmation:
		buildConfirmation(&sb, kb, v)
	}

	if v.Warning != "" {
		sb.WriteString("\n\n⚠️ ")
		sb.WriteString(html.EscapeString(v.Warning))
	}

	return sb.String(), kb.Build()
}

func progressLine(steps []wizard.BookingStep) string {
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		switch {
		case s.Completed:
			parts = append(parts, "✅")
		case s.Active:
			parts = append(parts, "🔵")
		default:
			parts = append(parts, "⚪")
		}
	}
	return strings.Join(parts, " ")
}

func navigation(v View) []models.InlineKeyboardButton {
	back := ""
	if v.Current != wizard.StepService {
		back = CallbackBack
	}
	next := ""
	if v.CanNext {
		next = CallbackNext
	}
	return keyboard.NavigationRow(back, next)
}

func buildServiceStep(sb *strings.Builder, kb *keyboard.Builder, v View) {
	if len(v.Services) == 0 {
		sb.WriteString("Aucun service disponible pour le moment.")
		return
	}

	sb.WriteString("Quel service souhaitez-vous réserver ?")
	for _, s := range v.Services {
		label := fmt.Sprintf("%s · %s · %s", s.Name, formatting.FormatPrice(s.Price), formatting.FormatDuration(s.Duration))
		if v.Details.Service != nil && v.Details.Service.ID == s.ID {
			label = "✔️ " + label
		}
		kb.Row(keyboard.Button(label, fmt.Sprintf("%s%d", CallbackService, s.ID)))
	}
	kb.AddRow(navigation(v))
}

func buildStaffStep(sb *strings.Builder, kb *keyboard.Builder, v View) {
	if v.Details.Service != nil {
		sb.WriteString(fmt.Sprintf("Service : <b>%s</b>\n", html.EscapeString(v.Details.Service.Name)))
	}
	sb.WriteString("Avec qui souhaitez-vous prendre rendez-vous ?")

	for _, s := range v.Staff {
		data := fmt.Sprintf("%s%d", CallbackStaff, s.ID)
		label := "👥 " + s.Name
		if s.IsAny() {
			data = CallbackStaff + StaffAny
		} else {
			label = fmt.Sprintf("%s ⭐ %.1f", s.Name, s.Rating)
		}
		if v.Details.Staff != nil && v.Details.Staff.ID == s.ID {
			label = "✔️ " + label
		}
		kb.Row(keyboard.Button(label, data))
	}
	kb.AddRow(navigation(v))
}

func buildDateTimeStep(sb *strings.Builder, kb *keyboard.Builder, v View) {
	if v.Details.Date == "" {
		sb.WriteString("Choisissez une date :")
		buttons := make([]models.InlineKeyboardButton, 0, len(v.Dates))
		for _, d := range v.Dates {
			buttons = append(buttons, keyboard.Button(
				formatting.FormatDayButton(d),
				CallbackDate+d.Format(formatting.DateLayout),
			))
		}
		kb.AddRows(keyboard.Grid(buttons, 2))
		kb.AddRow(navigation(v))
		return
	}

	sb.WriteString(fmt.Sprintf("Date : <b>%s</b>\n", formatting.FormatDateLong(v.Details.Date)))
	if len(v.Times) == 0 {
		sb.WriteString("Plus aucun créneau ce jour-là. Choisissez une autre date.")
	} else {
		sb.WriteString("Choisissez une heure :")
	}

	buttons := make([]models.InlineKeyboardButton, 0, len(v.Times))
	for _, t := range v.Times {
		label := t
		if t == v.Details.Time {
			label = "✔️ " + t
		}
		buttons = append(buttons, keyboard.Button(label, CallbackTime+t))
	}
	kb.AddRows(keyboard.Grid(buttons, 4))
	kb.Row(keyboard.Button("📅 Changer de date", CallbackDateReset))
	kb.AddRow(navigation(v))
}

func buildContactStep(sb *strings.Builder, kb *keyboard.Builder, v View) {
	if v.Draft.Name != "" {
		sb.WriteString(fmt.Sprintf("Nom : %s\n", html.EscapeString(v.Draft.Name)))
	}
	if v.Draft.Email != "" {
		sb.WriteString(fmt.Sprintf("E-mail : %s\n", html.EscapeString(v.Draft.Email)))
	}
	if v.Draft.Phone != "" {
		sb.WriteString(fmt.Sprintf("Téléphone : %s\n", html.EscapeString(v.Draft.Phone)))
	}

	switch v.Input {
	case state.StateContactEmail:
		sb.WriteString("✉️ Entrez votre adresse e-mail :")
	case state.StateContactPhone:
		sb.WriteString("📞 Entrez votre numéro de téléphone :")
	case state.StateContactNotes:
		sb.WriteString("📝 Une remarque pour le salon ? Envoyez-la ou appuyez sur « Passer ».")
		kb.Row(keyboard.Button("Passer ⏭", CallbackSkipNotes))
	default:
		sb.WriteString("👤 Entrez votre nom complet :")
	}
	kb.AddRow(navigation(v))
}

func buildConfirmation(sb *strings.Builder, kb *keyboard.Builder, v View) {
	if v.ConfirmErr != nil {
		sb.WriteString("❌ Votre réservation n'a pas pu être enregistrée. Veuillez réessayer.")
		kb.Row(keyboard.Button("🔄 Recommencer", CallbackNew))
		return
	}

	sb.WriteString("🎉 <b>Réservation confirmée !</b>\n\n")
	sb.WriteString(FormatSummary(wizard.SummaryOf(v.Details)))
	if v.Booking != nil {
		sb.WriteString(fmt.Sprintf("\n\nRéférence : <code>#%d</code>", v.Booking.ID))
	}
	if v.SharedWithStore {
		sb.WriteString("\n\n🔔 Le salon a été prévenu sur Telegram.")
	} else {
		sb.WriteString("\n\n⚠️ Le salon n'a pas encore été prévenu.")
	}
	if v.WhatsAppLink != "" {
		sb.WriteString("\n📲 Envoyez-lui votre demande sur WhatsApp avec le bouton ci-dessous.")
		kb.Row(keyboard.URLButton("📲 Envoyer sur WhatsApp", v.WhatsAppLink))
	}
	kb.Row(keyboard.Button("➕ Nouvelle réservation", CallbackNew))
}

// FormatSummary сводка бронирования в HTML
func FormatSummary(s wizard.Summary) string {
	lines := []string{
		fmt.Sprintf("💇 Service : <b>%s</b>", html.EscapeString(s.ServiceName)),
		fmt.Sprintf("💰 Prix : %s · %s", formatting.FormatPrice(s.Price), formatting.FormatDuration(s.Duration)),
		fmt.Sprintf("👤 Employé : %s", html.EscapeString(s.StaffName)),
		fmt.Sprintf("📅 Date : %s à %s", formatting.FormatDateLong(s.Date), s.Time),
		fmt.Sprintf("🙋 Client : %s", html.EscapeString(s.Customer.Name)),
		fmt.Sprintf("📞 %s · ✉️ %s", html.EscapeString(s.Customer.Phone), html.EscapeString(s.Customer.Email)),
	}
	if s.Customer.Notes != "" {
		lines = append(lines, fmt.Sprintf("📝 %s", html.EscapeString(s.Customer.Notes)))
	}
	return strings.Join(lines, "\n")
}

// AvailableDates ближайшие BookingDays дней начиная с сегодняшнего
func AvailableDates(now time.Time) []time.Time {
	local := now.In(SalonLocation)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, SalonLocation)

	dates := make([]time.Time, 0, BookingDays)
	for i := 0; i < BookingDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}
	return dates
}

// AvailableTimes слоты с шагом SlotStepMinutes в часы работы.
// Для сегодняшней даты прошедшие слоты отбрасываются.
func AvailableTimes(date string, now time.Time) []string {
	local := now.In(SalonLocation)
	isToday := local.Format(formatting.DateLayout) == date
	nowMinutes := local.Hour()*60 + local.Minute()

	times := make([]string, 0, (ClosingMinutes-OpeningMinutes)/SlotStepMinutes)
	for m := OpeningMinutes; m < ClosingMinutes; m += SlotStepMinutes {
		if isToday && m <= nowMinutes {
			continue
		}
		times = append(times, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return times
}

// IsAvailableDate проверяет что дата входит в окно бронирования
func IsAvailableDate(date string, now time.Time) bool {
	for _, d := range AvailableDates(now) {
		if d.Format(formatting.DateLayout) == date {
			return true
		}
	}
	return false
}

// IsAvailableTime проверяет что время есть среди слотов даты
func IsAvailableTime(date, t string, now time.Time) bool {
	for _, slot := range AvailableTimes(date, now) {
		if slot == t {
			return true
		}
	}
	return false
}
