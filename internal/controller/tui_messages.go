package controller

import (
	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

// Message types.
type suggestionsMsg struct {
	state domain.SuggestionState
}

type weatherMsg struct {
	state domain.WeatherState
}

type themeMsg struct {
	theme m.Theme
	err   error
}

// List item types.
type candidateItem struct {
	candidate m.Candidate
	index     int
}

func (c candidateItem) FilterValue() string {
	return c.candidate.Label()
}
