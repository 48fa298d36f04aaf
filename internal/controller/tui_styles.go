package controller

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

type palette struct {
	accent     lipgloss.Color
	text       lipgloss.Color
	muted      lipgloss.Color
	selectedFg lipgloss.Color
	selectedBg lipgloss.Color
	border     lipgloss.Color
	failure    lipgloss.Color
	occlusion  lipgloss.Color
}

func paletteFor(theme m.Theme) palette {
	if theme == m.ThemeNight {
		return palette{
			accent:     lipgloss.Color("141"),
			text:       lipgloss.Color("252"),
			muted:      lipgloss.Color("242"),
			selectedFg: lipgloss.Color("0"),
			selectedBg: lipgloss.Color("141"),
			border:     lipgloss.Color("99"),
			failure:    lipgloss.Color("203"),
			occlusion:  lipgloss.Color(domain.OcclusionColor),
		}
	}

	return palette{
		accent:     lipgloss.Color("25"),
		text:       lipgloss.Color("236"),
		muted:      lipgloss.Color("244"),
		selectedFg: lipgloss.Color("231"),
		selectedBg: lipgloss.Color("25"),
		border:     lipgloss.Color("33"),
		failure:    lipgloss.Color("160"),
		occlusion:  lipgloss.Color(domain.OcclusionColor),
	}
}

func (p palette) title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.accent).Bold(true).Padding(1, 0, 0, 2)
}

func (p palette) box(focused bool) lipgloss.Style {
	border := p.muted
	if focused {
		border = p.border
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Margin(0, 1).
		Padding(0, 1)
}

func (p palette) label() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.muted)
}

func (p palette) value() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.text).Bold(true)
}

func (p palette) errorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.failure).Bold(true)
}

func (p palette) footer(width int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.muted).Align(lipgloss.Center).Width(width)
}
