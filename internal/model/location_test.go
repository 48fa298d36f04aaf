package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidate_Label(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		want      string
	}{
		{"name only", Candidate{Name: "Springfield"}, "Springfield"},
		{"with region", Candidate{Name: "Austin", Region: "Texas"}, "Austin, Texas"},
		{"with country", Candidate{Name: "Paris", Country: "FR"}, "Paris, FR"},
		{"full", Candidate{Name: "Austin", Region: "Texas", Country: "US"}, "Austin, Texas, US"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.Label())
		})
	}
}

func TestCandidate_KeyDistinguishesDuplicates(t *testing.T) {
	c := Candidate{Name: "Springfield", Latitude: 39.8, Longitude: -89.6}

	assert.NotEqual(t, c.Key(0), c.Key(1))
	assert.Equal(t, "39.8--89.6-0", c.Key(0))
}

func TestCandidate_Resolve(t *testing.T) {
	c := Candidate{Name: "Kochi", Region: "Kerala", Country: "IN", Latitude: 9.93, Longitude: 76.26}

	got := c.Resolve()

	assert.Equal(t, ResolvedLocation{Label: "Kochi, Kerala, IN", Latitude: 9.93, Longitude: 76.26}, got)
}

func TestParseTheme_AndToggle(t *testing.T) {
	theme, ok := ParseTheme("night")
	assert.True(t, ok)
	assert.Equal(t, ThemeNight, theme)
	assert.Equal(t, ThemeDay, theme.Toggle())
	assert.Equal(t, ThemeNight, ThemeDay.Toggle())

	_, ok = ParseTheme("dusk")
	assert.False(t, ok)
}

func TestParseUnitSystem(t *testing.T) {
	u, ok := ParseUnitSystem("f")
	assert.True(t, ok)
	assert.Equal(t, UnitsImperial, u)

	u, ok = ParseUnitSystem("metric")
	assert.True(t, ok)
	assert.Equal(t, UnitsMetric, u)

	_, ok = ParseUnitSystem("kelvin")
	assert.False(t, ok)
}
