package models

import "time"

// ColorChannels is an RGB triple stored as decimal channel values
type ColorChannels struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ThemeColors is one mode's palette
type ThemeColors struct {
	Primary    ColorChannels `json:"primary"`
	Secondary  ColorChannels `json:"secondary"`
	Background ColorChannels `json:"background"`
	Foreground ColorChannels `json:"foreground"`
}

// ThemeSettings holds the admin-editable palette per display mode,
// stored under the scalar 'themeSettings' key
type ThemeSettings struct {
	Light ThemeColors `json:"light"`
	Dark  ThemeColors `json:"dark"`
}

// DefaultThemeSettings returns the palette used before an admin edit
func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{
		Light: ThemeColors{
			Primary:    ColorChannels{R: 79, G: 70, B: 229},
			Secondary:  ColorChannels{R: 236, G: 72, B: 153},
			Background: ColorChannels{R: 255, G: 255, B: 255},
			Foreground: ColorChannels{R: 17, G: 24, B: 39},
		},
		Dark: ThemeColors{
			Primary:    ColorChannels{R: 129, G: 140, B: 248},
			Secondary:  ColorChannels{R: 244, G: 114, B: 182},
			Background: ColorChannels{R: 17, G: 24, B: 39},
			Foreground: ColorChannels{R: 243, G: 244, B: 246},
		},
	}
}

// Testimonial is a public quote shown on the landing page
type Testimonial struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role,omitempty"`
	Quote     string    `json:"quote"`
	CreatedAt time.Time `json:"createdAt"`
}

// ImpactStat is a landing-page headline figure ("40+ clubs", "1200 members")
type ImpactStat struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// SiteLogo is the inline-encoded site logo stored under the scalar
// 'siteLogo' key; empty Data means the built-in logo is used
type SiteLogo struct {
	Data      string    `json:"data,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
