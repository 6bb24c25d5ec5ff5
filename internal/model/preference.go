package model

import (
	"time"

	"gorm.io/datatypes"
)

// Theme is the UI color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// PreferenceSettings is the preference document stored per user
type PreferenceSettings struct {
	Theme       Theme  `json:"theme"`
	DefaultSort string `json:"defaultSort"`
	RowsPerPage int    `json:"rowsPerPage"`
}

// DefaultPreferenceSettings returns the settings used when none are stored
func DefaultPreferenceSettings() PreferenceSettings {
	return PreferenceSettings{
		Theme:       ThemeLight,
		DefaultSort: DefaultSort,
		RowsPerPage: DefaultPageSize,
	}
}

// Preference is the API view of a user's settings
type Preference struct {
	UserID string `json:"userId"`
	PreferenceSettings
}

// PreferenceRecord is the stored document, keyed by user identity
type PreferenceRecord struct {
	UserID    string                                 `gorm:"primaryKey;type:varchar(64)"`
	Document  datatypes.JSONType[PreferenceSettings] `gorm:"not null"`
	UpdatedAt time.Time
}

func (PreferenceRecord) TableName() string {
	return "preferences"
}

// PreferenceInput is the payload for replacing preferences. Omitted fields
// take their defaults rather than the previously stored values.
type PreferenceInput struct {
	Theme       *Theme  `json:"theme,omitempty" validate:"omitnil,oneof=light dark"`
	DefaultSort *string `json:"defaultSort,omitempty" validate:"omitnil,min=1"`
	RowsPerPage *int    `json:"rowsPerPage,omitempty" validate:"omitnil,gt=0"`
}

// Resolve returns the full settings document the input stands for
func (in PreferenceInput) Resolve() PreferenceSettings {
	settings := DefaultPreferenceSettings()
	if in.Theme != nil {
		settings.Theme = *in.Theme
	}
	if in.DefaultSort != nil {
		settings.DefaultSort = *in.DefaultSort
	}
	if in.RowsPerPage != nil {
		settings.RowsPerPage = *in.RowsPerPage
	}
	return settings
}

// Input returns a payload that reproduces s exactly
func (s PreferenceSettings) Input() PreferenceInput {
	theme, sort, rows := s.Theme, s.DefaultSort, s.RowsPerPage
	return PreferenceInput{Theme: &theme, DefaultSort: &sort, RowsPerPage: &rows}
}
