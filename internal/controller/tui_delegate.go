package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const coordWidth = 18

// suggestionDelegate renders one candidate per line; the selected label scrolls
// when it does not fit.
type suggestionDelegate struct {
	offset  int
	palette palette
	focused bool
}

func (d suggestionDelegate) Height() int  { return 1 }
func (d suggestionDelegate) Spacing() int { return 0 }
func (d suggestionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d suggestionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	c, ok := item.(candidateItem)
	if !ok {
		return
	}

	isSelected := d.focused && index == m.Index()

	var labelStyle, coordStyle lipgloss.Style

	var displayLabel string

	width := m.Width() - coordWidth - 2

	if isSelected {
		labelStyle = lipgloss.NewStyle().
			Foreground(d.palette.selectedFg).
			Background(d.palette.selectedBg).
			Bold(true)
		coordStyle = lipgloss.NewStyle().
			Foreground(d.palette.selectedFg).
			Background(d.palette.selectedBg).
			Width(coordWidth).
			Align(lipgloss.Right)

		displayLabel = animateScroll(c.candidate.Label(), width, d.offset)
	} else {
		labelStyle = lipgloss.NewStyle().Foreground(d.palette.text)
		coordStyle = lipgloss.NewStyle().
			Foreground(d.palette.muted).
			Width(coordWidth).
			Align(lipgloss.Right)

		displayLabel = truncateToWidth(c.candidate.Label(), width)
	}

	if pad := width - lipgloss.Width(displayLabel); pad > 0 && isSelected {
		displayLabel += fmt.Sprintf("%*s", pad, "")
	}

	line := fmt.Sprintf("%s  %s",
		labelStyle.Render(displayLabel),
		coordStyle.Render(fmt.Sprintf("%.2f, %.2f", c.candidate.Latitude, c.candidate.Longitude)),
	)
	_, _ = fmt.Fprint(w, line)
}

// animateScroll returns a width-wide window over text that advances with offset,
// after a short pause showing the truncated start.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const (
		gap   = "   "
		pause = 5
	)

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
