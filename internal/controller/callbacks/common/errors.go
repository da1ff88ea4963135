package common

import (
	"errors"
	"strings"

	"github.com/daltekdz/daltekdz_bot/internal/controller/flow"
	"github.com/daltekdz/daltekdz_bot/internal/service"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, flow.ErrNoSession):
		return "⌛ Session expirée. Utilisez /book pour recommencer."
	case errors.Is(err, flow.ErrStaleScreen):
		return "Cet écran n'est plus actif."
	case errors.Is(err, flow.ErrUnavailableSlot):
		return "❌ Ce créneau n'est pas disponible."
	case errors.Is(err, wizard.ErrWizardFinished):
		return "✅ Réservation déjà confirmée. /book pour une nouvelle."
	case errors.Is(err, wizard.ErrStepIncomplete):
		return "Veuillez compléter cette étape."
	case errors.Is(err, wizard.ErrAtFirstStep):
		return "Vous êtes déjà à la première étape."
	case errors.Is(err, service.ErrServiceNotFound):
		return "❌ Service introuvable."
	case errors.Is(err, service.ErrStaffNotFound):
		return "❌ Employé introuvable."
	case errors.Is(err, ErrNoMessage):
		return "❌ Erreur de traitement du message."
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Format de données invalide."
	default:
		return "❌ Une erreur est survenue."
	}
}

// IsMessageNotModifiedError проверяет ошибку Telegram о неизменённом сообщении
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
