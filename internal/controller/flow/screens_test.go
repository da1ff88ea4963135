package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daltekdz/daltekdz_bot/internal/controller/state"
	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

func TestAvailableDates(t *testing.T) {
	// 23:30 UTC уже следующий день в Алжире
	now := time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)

	dates := AvailableDates(now)

	require.Len(t, dates, BookingDays)
	assert.Equal(t, "2025-03-02", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2025-03-15", dates[BookingDays-1].Format("2006-01-02"))
	assert.True(t, IsAvailableDate("2025-03-10", now))
	assert.False(t, IsAvailableDate("2025-03-01", now))
}

func TestAvailableTimes(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) // 13:00 местного

	all := AvailableTimes("2025-03-05", now)
	require.Len(t, all, 20)
	assert.Equal(t, "09:00", all[0])
	assert.Equal(t, "18:30", all[len(all)-1])

	today := AvailableTimes("2025-03-01", now)
	assert.Equal(t, "13:30", today[0])
	assert.True(t, IsAvailableTime("2025-03-01", "18:00", now))
	assert.False(t, IsAvailableTime("2025-03-01", "13:00", now))
	assert.False(t, IsAvailableTime("2025-03-05", "19:00", now))
}

func TestBuildScreen_Service(t *testing.T) {
	w := wizard.New()
	text, kb := BuildScreen(View{
		Steps:    w.Steps(),
		Current:  w.Current(),
		Services: []*model.Service{{ID: 3, Name: "Soin visage", Price: 2500, Duration: 60}},
	})

	assert.Contains(t, text, "Étape 1/5")
	assert.Contains(t, text, "🔵 ⚪ ⚪ ⚪ ⚪")
	require.Len(t, kb.InlineKeyboard, 1)
	assert.Equal(t, "Soin visage · 2 500 DA · 1 h", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "wiz_svc:3", kb.InlineKeyboard[0][0].CallbackData)
}

func TestBuildScreen_StaffHasAnyAndBack(t *testing.T) {
	_, kb := BuildScreen(View{
		Current: wizard.StepStaff,
		Details: wizard.BookingDetails{Service: &model.Service{Name: "Coupe"}},
		Staff:   []*model.StaffMember{model.AnyStaff(), {ID: 4, Name: "Lina Saadi", Rating: 4.9}},
		CanNext: true,
	})

	require.Len(t, kb.InlineKeyboard, 3)
	assert.Equal(t, "wiz_staff:any", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "wiz_staff:4", kb.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, CallbackBack, kb.InlineKeyboard[2][0].CallbackData)
	assert.Equal(t, CallbackNext, kb.InlineKeyboard[2][1].CallbackData)
}

func TestBuildScreen_NotesOffersSkip(t *testing.T) {
	text, kb := BuildScreen(View{
		Current: wizard.StepContact,
		Input:   state.StateContactNotes,
		Draft:   model.Customer{Name: "<b>Amine</b>"},
	})

	assert.Contains(t, text, "&lt;b&gt;Amine&lt;/b&gt;")
	assert.Equal(t, CallbackSkipNotes, kb.InlineKeyboard[0][0].CallbackData)
}

func TestBuildScreen_ConfirmationReportsShareOutcome(t *testing.T) {
	tests := []struct {
		name       string
		view       View
		wantText   string
		wantButton string
	}{
		{
			name:     "nothing shared",
			view:     View{Current: wizard.StepConfirmation, Booking: &model.Booking{ID: 1}},
			wantText: "pas encore été prévenu",
		},
		{
			name:       "link only",
			view:       View{Current: wizard.StepConfirmation, Booking: &model.Booking{ID: 1}, WhatsAppLink: "https://wa.me/213555123456"},
			wantText:   "pas encore été prévenu",
			wantButton: "https://wa.me/213555123456",
		},
		{
			name: "owner notified",
			view: View{
				Current: wizard.StepConfirmation, Booking: &model.Booking{ID: 1},
				WhatsAppLink: "https://wa.me/213555123456", SharedWithStore: true,
			},
			wantText:   "prévenu sur Telegram",
			wantButton: "https://wa.me/213555123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, kb := BuildScreen(tt.view)

			assert.Contains(t, text, tt.wantText)
			assert.NotContains(t, text, "reçu votre demande sur WhatsApp")

			last := kb.InlineKeyboard[len(kb.InlineKeyboard)-1][0]
			assert.Equal(t, CallbackNew, last.CallbackData)
			if tt.wantButton == "" {
				assert.Len(t, kb.InlineKeyboard, 1)
				return
			}
			require.Len(t, kb.InlineKeyboard, 2)
			assert.Equal(t, tt.wantButton, kb.InlineKeyboard[0][0].URL)
		})
	}
}

func TestFormatSummary(t *testing.T) {
	text := FormatSummary(wizard.Summary{
		ServiceName: "Coupe masculine classique",
		Price:       800,
		Duration:    30,
		StaffName:   model.AnyStaffName,
		Date:        "2025-03-10",
		Time:        "14:30",
		Customer:    model.Customer{Name: "Amine", Phone: "0555123456", Email: "a@b.dz"},
	})

	assert.Contains(t, text, "lundi 10 mars 2025 à 14:30")
	assert.Contains(t, text, "800 DA · 30 min")
	assert.NotContains(t, text, "📝")
}
