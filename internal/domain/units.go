package domain

import (
	"fmt"
	"math"

	m "github.com/mouse-blink/weather-explorer/internal/model"
)

const mpsToMph = 2.23694

// CelsiusToFahrenheit converts a temperature.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// MsToMph converts a wind speed from metres per second to miles per hour.
func MsToMph(ms float64) float64 {
	return ms * mpsToMph
}

// FormatTemperature renders a Celsius reading in the given unit system, rounded
// to the nearest degree (halves round up). A nil reading renders as "".
func FormatTemperature(tempC *float64, units m.UnitSystem) string {
	if tempC == nil {
		return ""
	}

	if units == m.UnitsImperial {
		return fmt.Sprintf("%d°F", roundHalfUp(CelsiusToFahrenheit(*tempC)))
	}

	return fmt.Sprintf("%d°C", roundHalfUp(*tempC))
}

// FormatWindSpeed renders a m/s reading with one decimal. A nil reading renders as "".
func FormatWindSpeed(speedMs *float64, units m.UnitSystem) string {
	if speedMs == nil {
		return ""
	}

	if units == m.UnitsImperial {
		return fmt.Sprintf("%.1f mph", MsToMph(*speedMs))
	}

	return fmt.Sprintf("%.1f m/s", *speedMs)
}

// FormatHumidity renders a relative humidity percentage.
func FormatHumidity(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
