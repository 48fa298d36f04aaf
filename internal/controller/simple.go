package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/weather-explorer/internal/adapter"
	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

// SimpleUI implements UI by printing tables to the command's output.
type SimpleUI struct {
	cmd   *cobra.Command
	units m.UnitSystem
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, units: m.UnitsMetric}
}

// Start records the display options. Session options are ignored.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	s.units = cfg.units

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; SimpleUI has nothing running.
func (s *SimpleUI) Wait() {

}

// DisplaySuggestions prints the candidate list.
func (s *SimpleUI) DisplaySuggestions(state domain.SuggestionState) error {
	if len(state.Candidates) == 0 {
		s.printf("No matches for %q\n", state.Query)
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Location", "Latitude", "Longitude"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for i, candidate := range state.Candidates {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			candidate.Label(),
			fmt.Sprintf("%.4f", candidate.Latitude),
			fmt.Sprintf("%.4f", candidate.Longitude),
		})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayWeather prints the conditions card, or the error message when the fetch failed.
func (s *SimpleUI) DisplayWeather(state domain.WeatherState) error {
	switch state.Status {
	case domain.WeatherFailed:
		s.printf("%s\n", state.Message())
		return state.Err
	case domain.WeatherReady:
	default:
		return nil
	}

	if state.Snapshot == nil {
		return nil
	}

	snapshot := state.Snapshot

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(":")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	rows := [][]string{
		{"Location", snapshot.LocationLabel},
		{"Conditions", conditionsLine(snapshot.Conditions)},
		{"Temperature", domain.FormatTemperature(&snapshot.TemperatureC, s.units)},
		{"Feels like", domain.FormatTemperature(&snapshot.FeelsLikeC, s.units)},
		{"Humidity", domain.FormatHumidity(snapshot.HumidityPct)},
		{"Wind", domain.FormatWindSpeed(&snapshot.WindSpeedMs, s.units)},
	}

	if icon := adapter.IconURL(snapshot.IconID); icon != "" {
		rows = append(rows, []string{"Icon", icon})
	}

	table.AppendBulk(rows)
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayTheme prints the current theme.
func (s *SimpleUI) DisplayTheme(theme m.Theme) error {
	s.printf("Theme: %s\n", theme)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
