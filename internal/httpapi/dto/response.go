package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/daltekdz/daltekdz_bot/internal/model"
)

type LoginResponse struct {
	AdminToken string    `json:"adminToken"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type StoreResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	OwnerName     string            `json:"ownerName"`
	OwnerEmail    string            `json:"ownerEmail"`
	OwnerPhone    string            `json:"ownerPhone"`
	WilayaCode    int               `json:"wilayaCode"`
	WilayaName    string            `json:"wilayaName"`
	Plan          model.StorePlan   `json:"plan"`
	Status        model.StoreStatus `json:"status"`
	Rating        float64           `json:"rating"`
	BookingsCount int               `json:"bookingsCount"`
	ServicesCount int               `json:"servicesCount"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type FeaturedResponse struct {
	ID            uuid.UUID `json:"id"`
	StoreID       int64     `json:"storeId"`
	StoreName     string    `json:"storeName"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	IsActive      bool      `json:"isActive"`
	DaysRemaining int       `json:"daysRemaining"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ServiceResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Duration    int    `json:"duration"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type NotificationResponse struct {
	ID        int64                  `json:"id"`
	Kind      model.NotificationKind `json:"kind"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Payload   map[string]string      `json:"payload,omitempty"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"createdAt"`
}

// CopyList копирует список моделей в список ответов по совпадающим именам полей
func CopyList[T any](from any) ([]T, error) {
	out := make([]T, 0)
	if err := copier.Copy(&out, from); err != nil {
		return nil, fmt.Errorf("copy response: %w", err)
	}
	return out, nil
}

// CopyOne копирует модель в ответ
func CopyOne[T any](from any) (*T, error) {
	out := new(T)
	if err := copier.Copy(out, from); err != nil {
		return nil, fmt.Errorf("copy response: %w", err)
	}
	return out, nil
}
