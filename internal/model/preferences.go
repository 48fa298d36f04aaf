package model

// Theme is the persisted colour scheme of the interactive UI.
type Theme string

const (
	// ThemeDay is the light scheme and the default.
	ThemeDay Theme = "day"
	// ThemeNight is the dark scheme.
	ThemeNight Theme = "night"
)

// ThemeKey is the preference key the theme is stored under.
const ThemeKey = "weather-theme"

// ParseTheme returns the theme for s, or false when s is not a known theme.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDay, ThemeNight:
		return Theme(s), true
	default:
		return "", false
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeNight {
		return ThemeDay
	}

	return ThemeNight
}
