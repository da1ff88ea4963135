package model

import "time"

type NotificationKind string

const (
	NotificationBookingCreated   NotificationKind = "booking_created"
	NotificationFeaturedAdded    NotificationKind = "featured_added"
	NotificationFeaturedRemoved  NotificationKind = "featured_removed"
	NotificationFeaturedExtended NotificationKind = "featured_extended"
	NotificationFeaturedExpired  NotificationKind = "featured_expired"
)

type Notification struct {
	ID        int64             `json:"id"`
	Kind      NotificationKind  `json:"kind"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Payload   map[string]string `json:"payload,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"created_at"`
}
