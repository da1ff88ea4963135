package service

import (
	"context"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

type CatalogRepository interface {
	ListActiveServices(ctx context.Context) ([]*model.Service, error)
	GetService(ctx context.Context, id int64) (*model.Service, error)
	ListStaffBySpecialty(ctx context.Context, category string) ([]*model.StaffMember, error)
	GetStaff(ctx context.Context, id int64) (*model.StaffMember, error)
}

type StoreRepository interface {
	List(ctx context.Context) ([]*model.Store, error)
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	UpdateStatus(ctx context.Context, id int64, status model.StoreStatus) (bool, error)
	UpdatePlan(ctx context.Context, id int64, plan model.StorePlan) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByTelegramID(ctx context.Context, telegramID int64, limit int) ([]*model.Booking, error)
}

// Notifier создаёт уведомление для админки. Ошибки не возвращаются.
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification)
}

// BookingSharer передаёт бронирование владельцу салона
type BookingSharer interface {
	ShareBooking(ctx context.Context, s wizard.Summary) error
	// BookingLink ссылка wa.me на номер салона с текстом бронирования
	BookingLink(s wizard.Summary) string
}
