package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/model"
)

type AuthService interface {
	Login(username, pass string) (string, time.Time, error)
}

type StoreService interface {
	List(ctx context.Context) ([]*model.Store, error)
	SetStatus(ctx context.Context, id int64, status model.StoreStatus) error
	SetPlan(ctx context.Context, id int64, plan model.StorePlan) error
	Delete(ctx context.Context, id int64) error
}

type FeaturedService interface {
	List(ctx context.Context) ([]featured.Entry, error)
	Active(ctx context.Context) ([]featured.Entry, error)
	Add(ctx context.Context, storeID int64, durationDays int) (*model.FeaturedStore, error)
	Remove(ctx context.Context, id uuid.UUID) error
	Extend(ctx context.Context, id uuid.UUID, durationDays int) (*model.FeaturedStore, error)
	Reorder(ctx context.Context, index, direction int) error
}

type NotificationService interface {
	List(ctx context.Context, limit int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

type CatalogService interface {
	ListServices(ctx context.Context) ([]*model.Service, error)
}
