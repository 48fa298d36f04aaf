// Package controller provides the user interfaces of the weather explorer.
package controller

import (
	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

// Session is the set of actions the interactive UI drives.
type Session interface {
	QueryChanged(text string)
	Choose(candidate m.Candidate)
	Submit(text string)
	ToggleTheme(current m.Theme) (m.Theme, error)
	Reveal(input string) m.RevealMessage
	IsSecretCode(input string) bool
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	session      Session
	units        m.UnitSystem
	theme        m.Theme
	initialQuery string
	pixelRatio   float64
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{
		units:      m.UnitsMetric,
		theme:      m.ThemeDay,
		pixelRatio: 1,
	}

	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// WithSession connects the interactive UI to a running session.
func WithSession(session Session) StartOption {
	return func(c *StartConfig) {
		c.session = session
	}
}

// WithUnits sets the initial unit system.
func WithUnits(units m.UnitSystem) StartOption {
	return func(c *StartConfig) {
		if units != "" {
			c.units = units
		}
	}
}

// WithTheme sets the initial theme.
func WithTheme(theme m.Theme) StartOption {
	return func(c *StartConfig) {
		if theme != "" {
			c.theme = theme
		}
	}
}

// WithInitialQuery pre-fills the search box and submits it.
func WithInitialQuery(query string) StartOption {
	return func(c *StartConfig) {
		c.initialQuery = query
	}
}

// WithPixelRatio sets the backing-store density of the scratch card.
func WithPixelRatio(ratio float64) StartOption {
	return func(c *StartConfig) {
		if ratio > 0 {
			c.pixelRatio = ratio
		}
	}
}

// UI defines the interface for presenting weather explorer output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplaySuggestions(state domain.SuggestionState) error
	DisplayWeather(state domain.WeatherState) error
	DisplayTheme(theme m.Theme) error
}
