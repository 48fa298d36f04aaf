package model

// UnitSystem selects how canonical metric values are displayed.
type UnitSystem string

const (
	// UnitsMetric displays Celsius and metres per second.
	UnitsMetric UnitSystem = "metric"
	// UnitsImperial displays Fahrenheit and miles per hour.
	UnitsImperial UnitSystem = "imperial"
)

// ParseUnitSystem accepts "metric"/"imperial" and the short forms "c"/"f".
func ParseUnitSystem(s string) (UnitSystem, bool) {
	switch s {
	case "metric", "c", "C", "celsius":
		return UnitsMetric, true
	case "imperial", "f", "F", "fahrenheit":
		return UnitsImperial, true
	default:
		return "", false
	}
}

// Conditions is a current-conditions reading, always in metric units.
type Conditions struct {
	TemperatureC float64
	FeelsLikeC   float64
	HumidityPct  int
	WindSpeedMs  float64
	Description  string
	IconID       string // empty when the provider sent no icon
}

// WeatherSnapshot is the conditions reading bound to the location it was fetched for.
type WeatherSnapshot struct {
	LocationLabel string
	Conditions
}
