package models

import "time"

// Notification is a broadcast, append-only entry in the 'notifications'
// collection. It carries no recipient: whichever session holds the store
// sees the full list.
type Notification struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
