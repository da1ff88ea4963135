package model

import "time"

// Service услуга салона
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Duration    int       `json:"duration"` // в минутах
	Price       int       `json:"price"`    // в динарах
	Description string    `json:"description"`
	Image       string    `json:"image"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
