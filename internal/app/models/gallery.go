package models

import "time"

// GalleryImage is an inline-encoded image in the 'gallery' collection.
// Data holds the base64 payload (data URL) rather than a file reference.
type GalleryImage struct {
	ID         string    `json:"id"`
	Data       string    `json:"data"`
	Caption    string    `json:"caption,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}
