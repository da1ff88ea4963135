package model

import "time"

type StorePlan string

const (
	StorePlanSilver   StorePlan = "silver"
	StorePlanGold     StorePlan = "gold"
	StorePlanPlatinum StorePlan = "platinum"
)

// IsValid проверяет что тариф известен
func (p StorePlan) IsValid() bool {
	switch p {
	case StorePlanSilver, StorePlanGold, StorePlanPlatinum:
		return true
	}
	return false
}

type StoreStatus string

const (
	StoreStatusActive    StoreStatus = "active"
	StoreStatusPending   StoreStatus = "pending"
	StoreStatusSuspended StoreStatus = "suspended"
	StoreStatusCancelled StoreStatus = "cancelled"
)

// IsValid проверяет что статус известен
func (s StoreStatus) IsValid() bool {
	switch s {
	case StoreStatusActive, StoreStatusPending, StoreStatusSuspended, StoreStatusCancelled:
		return true
	}
	return false
}

// Store салон-партнёр (vendor)
type Store struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	OwnerName     string      `json:"owner_name"`
	OwnerEmail    string      `json:"owner_email"`
	OwnerPhone    string      `json:"owner_phone"`
	WilayaCode    int         `json:"wilaya_code"`
	WilayaName    string      `json:"wilaya_name"`
	Plan          StorePlan   `json:"plan"`
	Status        StoreStatus `json:"status"`
	Rating        float64     `json:"rating"`
	BookingsCount int         `json:"bookings_count"`
	ServicesCount int         `json:"services_count"`
	CreatedAt     time.Time   `json:"created_at"`
}
