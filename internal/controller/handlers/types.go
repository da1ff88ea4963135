package handlers

import (
	"github.com/daltekdz/daltekdz_bot/internal/controller/flow"
	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService     *service.UserService
	bookingService  *service.BookingService
	featuredService *featured.Service
	flow            *flow.Flow
	logger          *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	bookingService *service.BookingService,
	featuredService *featured.Service,
	bookingFlow *flow.Flow,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:     userService,
		bookingService:  bookingService,
		featuredService: featuredService,
		flow:            bookingFlow,
		logger:          logger,
	}
}
