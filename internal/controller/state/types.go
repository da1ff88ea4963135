package state

import (
	"sync"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Ввод контактных данных на шаге Contact
	StateContactName  UserState = "contact_name"
	StateContactEmail UserState = "contact_email"
	StateContactPhone UserState = "contact_phone"
	StateContactNotes UserState = "contact_notes"
)

// IsContactInput проверяет что пользователь вводит контактные данные
func (s UserState) IsContactInput() bool {
	switch s {
	case StateContactName, StateContactEmail, StateContactPhone, StateContactNotes:
		return true
	}
	return false
}

// Session сессия бронирования пользователя.
// Перед работой с Wizard и Draft нужно взять Lock.
type Session struct {
	mu sync.Mutex

	Wizard    *wizard.Wizard
	Draft     model.Customer // накапливается до отправки в мастер целиком
	MessageID int            // сообщение с текущим экраном мастера
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// UserData хранит состояние и сессию пользователя
type UserData struct {
	State   UserState
	Session *Session
}
