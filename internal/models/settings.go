package models

import "time"

const (
	// StoreSettingsID is the fixed key of the single settings document
	StoreSettingsID = "store"
	DefaultTheme    = "default"
)

// Settings is the single store-wide settings document
type Settings struct {
	ID        string     `json:"_id" bson:"_id"`
	Theme     string     `json:"theme" bson:"theme"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// DefaultSettings returns the settings used when none are stored
func DefaultSettings() Settings {
	return Settings{ID: StoreSettingsID, Theme: DefaultTheme}
}

// ThemeUpdateRequest is the body of PUT /api/settings/theme
type ThemeUpdateRequest struct {
	Theme string `json:"theme"`
}

// ThemeUpdateResponse confirms a theme change
type ThemeUpdateResponse struct {
	Message string `json:"message"`
	Theme   string `json:"theme"`
}
