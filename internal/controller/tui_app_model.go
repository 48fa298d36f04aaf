package controller

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/weather-explorer/internal/domain"
	"github.com/mouse-blink/weather-explorer/internal/model"
)

type tickMsg time.Time

type focusArea int

const (
	focusSearch focusArea = iota
	focusSuggestions
	focusSecret
)

const (
	// The scratch card is drawn as a grid of terminal cells over the logical surface.
	cardCols = 40
	cardRows = 5

	cellWidth  = float64(domain.RevealWidth) / cardCols
	cellHeight = float64(domain.RevealHeight) / cardRows

	// Horizontal distance from the left edge of the screen to the first card cell:
	// margin, border, padding.
	cardInsetX = 3

	shade        = "▒"
	minBoxWidth  = cardCols + 2
	tickInterval = 150 * time.Millisecond
)

// appModel is the interactive explorer: search box, suggestions, weather card,
// secret-code input and scratch card.
type appModel struct {
	session Session
	units   model.UnitSystem
	theme   model.Theme
	palette palette

	width  int
	height int
	focus  focusArea

	search      textinput.Model
	secret      textinput.Model
	suggestions list.Model
	delegate    suggestionDelegate
	spinner     spinner.Model
	humidity    progress.Model

	suggest domain.SuggestionState
	weather domain.WeatherState
	reveal  model.RevealMessage
	surface *domain.RevealSurface
	card    domain.Box

	lastQuery    string
	initialQuery string
	animOffset   int
	lastSelected int
	themeErr     error
}

func newAppModel(cfg StartConfig) appModel {
	pal := paletteFor(cfg.theme)

	search := textinput.New()
	search.Placeholder = "Search for a city…"
	search.Prompt = "› "
	search.CharLimit = 100
	search.SetValue(cfg.initialQuery)
	search.Focus()

	secret := textinput.New()
	secret.Placeholder = "Secret code"
	secret.Prompt = "# "
	secret.CharLimit = 32

	delegate := suggestionDelegate{palette: pal}
	suggestions := list.New([]list.Item{}, delegate, minBoxWidth, domain.DefaultSuggestLimit)
	suggestions.SetShowPagination(false)
	suggestions.SetShowFilter(false)
	suggestions.SetFilteringEnabled(false)
	suggestions.SetShowHelp(false)
	suggestions.SetShowTitle(false)
	suggestions.SetShowStatusBar(false)
	suggestions.KeyMap.Quit.SetEnabled(false)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(pal.accent)

	humidity := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(20),
		progress.WithoutPercentage(),
	)

	return appModel{
		session:      cfg.session,
		units:        cfg.units,
		theme:        cfg.theme,
		palette:      pal,
		search:       search,
		secret:       secret,
		suggestions:  suggestions,
		delegate:     delegate,
		spinner:      spin,
		humidity:     humidity,
		surface:      domain.NewRevealSurface(cfg.pixelRatio),
		lastQuery:    cfg.initialQuery,
		initialQuery: cfg.initialQuery,
		lastSelected: -1,
	}
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.spinner.Tick,
		tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		}),
	}

	if query := strings.TrimSpace(m.initialQuery); query != "" {
		session := m.session
		cmds = append(cmds, func() tea.Msg {
			session.Submit(query)
			return nil
		})
	}

	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m = m.handleMouseMsg(msg)

	case tickMsg:
		m, cmd = m.handleTickMsg(msg)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	case suggestionsMsg:
		m = m.handleSuggestionsMsg(msg)

	case weatherMsg:
		m = m.handleWeatherMsg(msg)

	case themeMsg:
		m = m.handleThemeMsg(msg)

	default:
		var searchCmd, secretCmd tea.Cmd

		m.search, searchCmd = m.search.Update(msg)
		m.secret, secretCmd = m.secret.Update(msg)
		cmd = tea.Batch(searchCmd, secretCmd)
	}

	m = m.layoutCard()

	return m, cmd
}

func (m appModel) handleWindowSize(msg tea.WindowSizeMsg) appModel {
	m.width = msg.Width
	m.height = msg.Height

	m.suggestions.SetWidth(m.boxWidth() - 2)
	m.search.Width = m.boxWidth() - 4
	m.secret.Width = m.boxWidth() - 4

	return m
}

func (m appModel) handleKeyMsg(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		return m.cycleFocus(1)
	case "shift+tab":
		return m.cycleFocus(-1)
	case "f1", "alt+u":
		if m.units == model.UnitsImperial {
			m.units = model.UnitsMetric
		} else {
			m.units = model.UnitsImperial
		}

		return m, nil
	case "f2", "alt+t":
		return m, m.toggleThemeCmd()
	}

	switch m.focus {
	case focusSuggestions:
		return m.handleSuggestionKey(msg)
	case focusSecret:
		return m.handleSecretKey(msg)
	default:
		return m.handleSearchKey(msg)
	}
}

func (m appModel) handleSearchKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.session.Submit(m.search.Value())
		return m, nil
	case "down":
		if len(m.suggest.Candidates) > 0 {
			return m.setFocus(focusSuggestions)
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)

	if value := m.search.Value(); value != m.lastQuery {
		m.lastQuery = value
		m.session.QueryChanged(value)
	}

	return m, cmd
}

func (m appModel) handleSuggestionKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		item, ok := m.suggestions.SelectedItem().(candidateItem)
		if !ok {
			return m, nil
		}

		m.session.Choose(item.candidate)
		m = m.showQuery(item.candidate.Label())

		return m.setFocus(focusSearch)
	case "up", "k":
		if m.suggestions.Index() == 0 {
			return m.setFocus(focusSearch)
		}
	}

	var cmd tea.Cmd

	m.suggestions, cmd = m.suggestions.Update(msg)
	m = m.trackSelection()

	return m, cmd
}

func (m appModel) handleSecretKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.applyReveal(m.session.Reveal(m.secret.Value())), nil
	case "ctrl+l":
		m.secret.Reset()
		return m.applyReveal(model.RevealMessage{}), nil
	case "ctrl+r":
		m.surface.Reset()
		return m, nil
	}

	var cmd tea.Cmd

	before := m.secret.Value()
	m.secret, cmd = m.secret.Update(msg)

	if value := m.secret.Value(); value != before {
		if strings.TrimSpace(value) == "" {
			m = m.applyReveal(model.RevealMessage{})
		} else {
			m = m.applyReveal(m.reveal)
		}
	}

	return m, cmd
}

func (m appModel) handleMouseMsg(msg tea.MouseMsg) appModel {
	// Cell centre, in screen cells.
	p := domain.Point{X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.inCard(p) {
			m.surface.Engage(p)
		}
	case tea.MouseActionMotion:
		m.surface.Continue(p)
	case tea.MouseActionRelease:
		m.surface.Disengage()
	}

	return m
}

func (m appModel) handleTickMsg(_ tickMsg) (appModel, tea.Cmd) {
	if m.focus == focusSuggestions {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.suggestions.SetDelegate(m.delegate)
	}

	return m, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m appModel) handleSuggestionsMsg(msg suggestionsMsg) appModel {
	if msg.state.Version <= m.suggest.Version {
		return m
	}

	m.suggest = msg.state

	items := make([]list.Item, 0, len(msg.state.Candidates))
	for i, c := range msg.state.Candidates {
		items = append(items, candidateItem{candidate: c, index: i})
	}

	m.suggestions.SetItems(items)
	m.suggestions.Select(0)
	m.lastSelected = -1
	m = m.trackSelection()

	if len(items) == 0 && m.focus == focusSuggestions {
		m, _ = m.setFocus(focusSearch)
	}

	return m
}

func (m appModel) handleWeatherMsg(msg weatherMsg) appModel {
	if msg.state.Version <= m.weather.Version {
		return m
	}

	previous := m.weather.Location
	m.weather = msg.state

	if loc := msg.state.Location; loc != nil && (previous == nil || *previous != *loc) {
		m = m.showQuery(loc.Label)
	}

	if m.focus == focusSecret && !m.secretVisible() {
		m, _ = m.setFocus(focusSearch)
	}

	return m
}

// showQuery puts text in the search box without treating it as an edit.
func (m appModel) showQuery(text string) appModel {
	m.search.SetValue(text)
	m.search.CursorEnd()
	m.lastQuery = text

	return m
}

// secretVisible reports whether the secret input and scratch card are shown.
// They only appear next to loaded conditions.
func (m appModel) secretVisible() bool {
	return m.weather.Status == domain.WeatherReady && m.weather.Snapshot != nil
}

func (m appModel) handleThemeMsg(msg themeMsg) appModel {
	m.themeErr = msg.err

	if msg.theme == "" {
		return m
	}

	m.theme = msg.theme
	m.palette = paletteFor(msg.theme)
	m.delegate.palette = m.palette
	m.suggestions.SetDelegate(m.delegate)
	m.spinner.Style = lipgloss.NewStyle().Foreground(m.palette.accent)

	return m
}

func (m appModel) toggleThemeCmd() tea.Cmd {
	session, current := m.session, m.theme

	return func() tea.Msg {
		theme, err := session.ToggleTheme(current)
		return themeMsg{theme: theme, err: err}
	}
}

func (m appModel) cycleFocus(dir int) (appModel, tea.Cmd) {
	order := []focusArea{focusSearch}
	if len(m.suggest.Candidates) > 0 {
		order = append(order, focusSuggestions)
	}

	if m.secretVisible() {
		order = append(order, focusSecret)
	}

	current := 0

	for i, f := range order {
		if f == m.focus {
			current = i
		}
	}

	next := (current + dir + len(order)) % len(order)

	return m.setFocus(order[next])
}

func (m appModel) setFocus(f focusArea) (appModel, tea.Cmd) {
	var cmd tea.Cmd

	m.focus = f

	if f == focusSearch {
		cmd = m.search.Focus()
	} else {
		m.search.Blur()
	}

	if f == focusSecret {
		cmd = m.secret.Focus()
	} else {
		m.secret.Blur()
	}

	m.delegate.focused = f == focusSuggestions
	m.animOffset = 0
	m.delegate.offset = 0
	m.suggestions.SetDelegate(m.delegate)

	return m, cmd
}

// trackSelection restarts the marquee when the selected suggestion changes.
func (m appModel) trackSelection() appModel {
	if m.suggestions.Index() != m.lastSelected {
		m.lastSelected = m.suggestions.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.suggestions.SetDelegate(m.delegate)
	}

	return m
}

// applyReveal shows msg. A gated message is drawn on the card only while the
// input still holds the code.
func (m appModel) applyReveal(msg model.RevealMessage) appModel {
	if msg.Empty() {
		msg = model.RevealMessage{}
	}

	m.reveal = msg

	if msg.Kind == model.RevealGated && m.session.IsSecretCode(m.secret.Value()) {
		m.surface.SetMessage(msg.Text)
	} else {
		m.surface.SetMessage("")
	}

	return m
}
