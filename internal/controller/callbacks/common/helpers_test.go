package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daltekdz/daltekdz_bot/internal/controller/flow"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("wiz_svc:12", flow.CallbackService)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = ParseID("wiz_svc:abc", flow.CallbackService)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseID("other:1", flow.CallbackService)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseValue_KeepsColons(t *testing.T) {
	v, err := ParseValue("wiz_time:14:30", flow.CallbackTime)
	assert.NoError(t, err)
	assert.Equal(t, "14:30", v)
}

func TestErrorMessage(t *testing.T) {
	assert.Contains(t, ErrorMessage(flow.ErrNoSession), "/book")
	assert.Contains(t, ErrorMessage(wizard.ErrWizardFinished), "déjà confirmée")
	assert.Equal(t, "❌ Une erreur est survenue.", ErrorMessage(errors.New("boom")))
	assert.True(t, IsMessageNotModifiedError(errors.New("Bad Request: message is not modified")))
	assert.False(t, IsMessageNotModifiedError(nil))
}
