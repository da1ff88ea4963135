package model

import (
	"time"

	"github.com/google/uuid"
)

// FeaturedStore продвижение салона на главной на ограниченный срок
type FeaturedStore struct {
	ID        uuid.UUID `json:"id"`
	StoreID   int64     `json:"storeId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsExpired проверяет что срок продвижения истёк
func (f *FeaturedStore) IsExpired(now time.Time) bool {
	return f.EndDate.Before(now)
}
