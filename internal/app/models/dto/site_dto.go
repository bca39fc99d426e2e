package dto

import "github.com/clubhub-app/clubhub/internal/app/models"

// UpdateThemeSettingsRequest replaces the whole palette
type UpdateThemeSettingsRequest struct {
	Light models.ThemeColors `json:"light" binding:"required"`
	Dark  models.ThemeColors `json:"dark" binding:"required"`
}

// UpdateThemeModeRequest switches the site-wide default mode
type UpdateThemeModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=light dark"`
}

// UpdateLogoRequest replaces the inline-encoded site logo
type UpdateLogoRequest struct {
	Data string `json:"data" binding:"required"`
}

// TestimonialRequest creates or replaces a testimonial
type TestimonialRequest struct {
	Author string `json:"author" binding:"required"`
	Role   string `json:"role,omitempty"`
	Quote  string `json:"quote" binding:"required"`
}

// ImpactStatRequest creates or replaces a landing-page figure
type ImpactStatRequest struct {
	Label string `json:"label" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// UploadImageRequest adds an inline-encoded gallery image
type UploadImageRequest struct {
	Data    string `json:"data" binding:"required"`
	Caption string `json:"caption,omitempty"`
}

// CreateNotificationRequest posts a broadcast notification
type CreateNotificationRequest struct {
	Content string `json:"content" binding:"required"`
}
