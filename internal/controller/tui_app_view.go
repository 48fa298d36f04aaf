package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/weather-explorer/internal/adapter"
	"github.com/mouse-blink/weather-explorer/internal/domain"
	"github.com/mouse-blink/weather-explorer/internal/model"
)

func (m appModel) View() string {
	sections := []string{m.viewAbove()}

	if card := m.viewCard(); card != "" {
		sections = append(sections, card)
	}

	sections = append(sections, m.viewFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m appModel) boxWidth() int {
	width := m.width - 2
	if width < minBoxWidth+2 {
		width = minBoxWidth + 2
	}

	return width
}

// viewAbove renders everything drawn above the scratch card.
func (m appModel) viewAbove() string {
	pal := m.palette

	header := pal.title().Render("☂ Weather Explorer")
	status := lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(fmt.Sprintf("%s %s   %s %s",
		pal.label().Render("Units:"), pal.value().Render(string(m.units)),
		pal.label().Render("Theme:"), pal.value().Render(string(m.theme)),
	))

	sections := []string{header, status, m.viewSearch()}

	if len(m.suggest.Candidates) > 0 {
		sections = append(sections, pal.box(m.focus == focusSuggestions).
			Width(m.boxWidth()).
			Render(m.suggestions.View()))
	}

	sections = append(sections, pal.box(false).Width(m.boxWidth()).Render(m.viewWeather()))

	if !m.secretVisible() {
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, pal.box(m.focus == focusSecret).Width(m.boxWidth()).Render(m.secret.View()))

	if m.reveal.Kind == model.RevealPlain {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(pal.accent).
			Bold(true).
			Padding(0, 0, 0, 3).
			Render(m.reveal.Text))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m appModel) viewSearch() string {
	line := m.search.View()
	if m.suggest.Loading {
		line += " " + m.spinner.View()
	}

	return m.palette.box(m.focus == focusSearch).Width(m.boxWidth()).Render(line)
}

func (m appModel) viewWeather() string {
	pal := m.palette
	state := m.weather

	switch state.Status {
	case domain.WeatherLoading:
		text := "Loading weather…"
		if state.Location != nil {
			text = fmt.Sprintf("Loading weather for %s…", state.Location.Label)
		}

		return m.spinner.View() + " " + pal.label().Render(text)
	case domain.WeatherFailed:
		return pal.errorText().Render(state.Message())
	case domain.WeatherReady:
		if state.Snapshot != nil {
			return m.viewConditions(*state.Snapshot)
		}
	}

	return pal.label().Render("Search for a city to see current conditions.")
}

func (m appModel) viewConditions(snapshot model.WeatherSnapshot) string {
	pal := m.palette

	row := func(label, value string) string {
		return pal.label().Width(12).Render(label) + pal.value().Render(value)
	}

	humidity := m.humidity.ViewAs(float64(snapshot.HumidityPct)/100) + " " +
		pal.value().Render(domain.FormatHumidity(snapshot.HumidityPct))

	lines := []string{
		lipgloss.NewStyle().Foreground(pal.accent).Bold(true).Render(snapshot.LocationLabel),
		pal.label().Render(conditionsLine(snapshot.Conditions)),
		row("Temperature", domain.FormatTemperature(&snapshot.TemperatureC, m.units)),
		row("Feels like", domain.FormatTemperature(&snapshot.FeelsLikeC, m.units)),
		pal.label().Width(12).Render("Humidity") + humidity,
		row("Wind", domain.FormatWindSpeed(&snapshot.WindSpeedMs, m.units)),
	}

	if icon := adapter.IconURL(snapshot.IconID); icon != "" {
		lines = append(lines, row("Icon", icon))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewCard renders the scratch card, one terminal cell per cellWidth×cellHeight
// logical block. A cell shows the occlusion shade while most of it is covered.
func (m appModel) viewCard() string {
	if !m.cardShown() {
		return ""
	}

	message := cardCells(m.surface.Message())

	rows := make([]string, 0, cardRows)
	for r := range cardRows {
		var cells []string
		if r == cardRows/2 {
			cells = message
		}

		rows = append(rows, m.cardRow(r, cells))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.palette.occlusion).
		Margin(0, 1).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}

func (m appModel) cardRow(r int, cells []string) string {
	occlusion := lipgloss.NewStyle().Foreground(m.palette.occlusion)
	text := lipgloss.NewStyle().Foreground(m.palette.accent).Bold(true)

	var b strings.Builder

	for c := 0; c < cardCols; c++ {
		ch := " "
		if cells != nil && cells[c] != "" {
			ch = cells[c]
		}

		if m.cellCovered(c, r) {
			b.WriteString(occlusion.Render(shade))
			continue
		}

		// A double-width glyph needs both of its cells uncovered.
		if cells != nil && c+1 < cardCols && cells[c] != "" && cells[c+1] == "" {
			if m.cellCovered(c+1, r) {
				b.WriteString(" ")
				continue
			}

			b.WriteString(text.Render(ch))
			c++

			continue
		}

		b.WriteString(text.Render(ch))
	}

	return b.String()
}

func (m appModel) cellCovered(c, r int) bool {
	region := domain.Box{
		Left:   float64(c) * cellWidth,
		Top:    float64(r) * cellHeight,
		Width:  cellWidth,
		Height: cellHeight,
	}

	return m.surface.Coverage(region) > 0.5
}

// cardCells centres text on a cardCols-wide row and splits it into cells. The
// second cell of a double-width glyph is "".
func cardCells(text string) []string {
	line := lipgloss.PlaceHorizontal(cardCols, lipgloss.Center, text)

	cells := make([]string, 0, cardCols)

	for _, r := range line {
		w := lipgloss.Width(string(r))
		if w == 0 {
			if len(cells) > 0 {
				cells[len(cells)-1] += string(r)
			}

			continue
		}

		cells = append(cells, string(r))
		for i := 1; i < w; i++ {
			cells = append(cells, "")
		}
	}

	for len(cells) < cardCols {
		cells = append(cells, " ")
	}

	return cells[:cardCols]
}

// layoutCard tells the surface where the card is on screen.
func (m appModel) layoutCard() appModel {
	if !m.cardShown() {
		m.card = domain.Box{}
		return m
	}

	top := lipgloss.Height(m.viewAbove())

	m.card = domain.Box{
		Left:   cardInsetX,
		Top:    float64(top + 1),
		Width:  cardCols,
		Height: cardRows,
	}
	m.surface.Layout(m.card)

	return m
}

func (m appModel) cardShown() bool {
	return m.secretVisible() && m.surface.Status() != domain.RevealUninitialized
}

func (m appModel) inCard(p domain.Point) bool {
	return m.card.Width > 0 &&
		p.X >= m.card.Left && p.X < m.card.Left+m.card.Width &&
		p.Y >= m.card.Top && p.Y < m.card.Top+m.card.Height
}

func (m appModel) viewFooter() string {
	help := "tab focus • enter search/select • f1 units • f2 theme • esc quit"

	switch {
	case m.cardShown():
		help = fmt.Sprintf("drag to scratch (%.0f%% off) • ctrl+r re-cover • ctrl+l clear • %s",
			m.surface.RevealedFraction()*100, help)
	case m.focus == focusSecret:
		help = "enter reveal • ctrl+l clear • " + help
	}

	footer := m.palette.footer(m.boxWidth()).Render(help)

	if m.themeErr != nil {
		footer = lipgloss.JoinVertical(lipgloss.Left,
			m.palette.errorText().Padding(0, 0, 0, 2).Render("Theme not saved: "+m.themeErr.Error()),
			footer,
		)
	}

	return footer
}
