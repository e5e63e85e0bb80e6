package models

import "github.com/julianstephens/daybook/internal/constants"

// Profile represents the journal owner's display identity
type Profile struct {
	Name        string `json:"name"`
	AccentColor string `json:"accent_color"` // #RGB, #RRGGBB or #AARRGGBB
}

// DefaultProfile returns the profile used before the user customizes anything.
func DefaultProfile() Profile {
	return Profile{
		Name:        constants.DefaultProfileName,
		AccentColor: constants.DefaultAccentColor,
	}
}
