// Package model defines the data structures shared by the weather explorer.
package model

import (
	"fmt"
	"strings"
)

// Candidate is a single geocoded match for a free-text query.
type Candidate struct {
	Name      string
	Region    string // optional admin region (state, province)
	Country   string // optional country code
	Latitude  float64
	Longitude float64
}

// Label joins the name with the optional region and country, e.g. "Austin, Texas, US".
func (c Candidate) Label() string {
	parts := []string{c.Name}
	if c.Region != "" {
		parts = append(parts, c.Region)
	}

	if c.Country != "" {
		parts = append(parts, c.Country)
	}

	return strings.Join(parts, ", ")
}

// Key identifies the candidate inside a rendered list. Names can repeat,
// so the coordinates and the position are used together.
func (c Candidate) Key(index int) string {
	return fmt.Sprintf("%v-%v-%d", c.Latitude, c.Longitude, index)
}

// Resolve turns the candidate into the location used for a weather lookup.
func (c Candidate) Resolve() ResolvedLocation {
	return ResolvedLocation{
		Label:     c.Label(),
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

// ResolvedLocation is the coordinate pair chosen for a weather lookup.
type ResolvedLocation struct {
	Label     string
	Latitude  float64
	Longitude float64
}
