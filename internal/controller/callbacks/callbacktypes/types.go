package callbacktypes

import (
	"github.com/daltekdz/daltekdz_bot/internal/controller/flow"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	Flow   *flow.Flow
	Logger *zap.Logger
}
