package state

import (
	"sync"

	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

// Manager управляет состояниями пользователей
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя. Сессия не затрагивается.
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData, exists := sm.states[telegramID]
	if !exists {
		if state == StateNone {
			return
		}
		userData = &UserData{}
		sm.states[telegramID] = userData
	}
	userData.State = state
}

// Session возвращает сессию бронирования, создавая её при необходимости
func (sm *Manager) Session(telegramID int64) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData, exists := sm.states[telegramID]
	if !exists {
		userData = &UserData{}
		sm.states[telegramID] = userData
	}
	if userData.Session == nil {
		userData.Session = &Session{Wizard: wizard.New()}
	}
	return userData.Session
}

// HasSession проверяет есть ли у пользователя сессия бронирования
func (sm *Manager) HasSession(telegramID int64) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	userData, exists := sm.states[telegramID]
	return exists && userData.Session != nil
}

// ClearState очищает состояние и сессию пользователя
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}
