package controller

import (
	"strings"

	m "github.com/mouse-blink/weather-explorer/internal/model"
)

// weatherGlyph maps an OpenWeather icon id (e.g. "10d") to a single-cell symbol.
func weatherGlyph(iconID string) string {
	if len(iconID) < 2 {
		return ""
	}

	night := strings.HasSuffix(iconID, "n")

	switch iconID[:2] {
	case "01":
		if night {
			return "☾"
		}

		return "☼"
	case "02", "03", "04":
		return "☁"
	case "09", "10":
		return "☂"
	case "11":
		return "ϟ"
	case "13":
		return "❄"
	case "50":
		return "≡"
	default:
		return ""
	}
}

func conditionsLine(c m.Conditions) string {
	desc := c.Description
	if desc == "" {
		desc = "unknown"
	}

	if glyph := weatherGlyph(c.IconID); glyph != "" {
		return glyph + " " + desc
	}

	return desc
}
