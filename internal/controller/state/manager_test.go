package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

func TestManager_State(t *testing.T) {
	sm := NewManager()

	assert.Equal(t, StateNone, sm.GetState(1))

	sm.SetState(1, StateContactEmail)
	assert.Equal(t, StateContactEmail, sm.GetState(1))
	assert.True(t, sm.GetState(1).IsContactInput())

	sm.SetState(1, StateNone)
	assert.Equal(t, StateNone, sm.GetState(1))

	// StateNone для неизвестного пользователя не создаёт запись
	sm.SetState(2, StateNone)
	assert.False(t, sm.HasSession(2))
}

func TestManager_SessionSurvivesStateReset(t *testing.T) {
	sm := NewManager()

	sess := sm.Session(7)
	require.NotNil(t, sess.Wizard)
	assert.Equal(t, wizard.StepService, sess.Wizard.Current())

	sm.SetState(7, StateContactName)
	sm.SetState(7, StateNone)

	assert.True(t, sm.HasSession(7))
	assert.Same(t, sess, sm.Session(7))

	sm.ClearState(7)
	assert.False(t, sm.HasSession(7))
	assert.NotSame(t, sess, sm.Session(7))
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	sm := NewManager()

	var wg sync.WaitGroup
	sessions := make([]*Session, 20)
	for i := range sessions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = sm.Session(int64(i))
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(sessions); i++ {
		assert.NotSame(t, sessions[0], sessions[i])
	}
}
