package controller

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

type fakeSession struct {
	mu        sync.Mutex
	queries   []string
	submitted []string
	chosen    []m.Candidate
	toggled   []m.Theme
	toggleErr error
}

func (f *fakeSession) QueryChanged(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, text)
}

func (f *fakeSession) Choose(candidate m.Candidate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chosen = append(f.chosen, candidate)
}

func (f *fakeSession) Submit(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, text)
}

func (f *fakeSession) ToggleTheme(current m.Theme) (m.Theme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toggled = append(f.toggled, current)

	return current.Toggle(), f.toggleErr
}

func (f *fakeSession) Reveal(input string) m.RevealMessage {
	return domain.NewSecretPolicy("").Evaluate(input)
}

func (f *fakeSession) IsSecretCode(input string) bool {
	return domain.NewSecretPolicy("").IsCode(input)
}

var (
	paris  = m.Candidate{Name: "Paris", Country: "FR", Latitude: 48.85, Longitude: 2.35}
	berlin = m.Candidate{Name: "Berlin", Country: "DE", Latitude: 52.52, Longitude: 13.4}
)

func newTestAppModel(session Session, options ...StartOption) appModel {
	cfg := newStartConfig(append([]StartOption{WithSession(session)}, options...))
	model := newAppModel(cfg)

	return model.handleWindowSize(tea.WindowSizeMsg{Width: 80, Height: 40})
}

func update(model appModel, msg tea.Msg) (appModel, tea.Cmd) {
	next, cmd := model.Update(msg)
	return next.(appModel), cmd
}

func typeText(model appModel, text string) appModel {
	for _, r := range text {
		model, _ = update(model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return model
}

func TestAppModel_TypingForwardsEveryEdit(t *testing.T) {
	session := &fakeSession{}
	model := typeText(newTestAppModel(session), "par")

	want := []string{"p", "pa", "par"}
	if strings.Join(session.queries, ",") != strings.Join(want, ",") {
		t.Fatalf("queries = %v, want %v", session.queries, want)
	}

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := session.queries[len(session.queries)-1]; got != "pa" {
		t.Fatalf("last query after backspace = %q, want pa", got)
	}
}

func TestAppModel_EnterSubmitsSearch(t *testing.T) {
	session := &fakeSession{}
	model := typeText(newTestAppModel(session), "Oslo")

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyEnter})
	if len(session.submitted) != 1 || session.submitted[0] != "Oslo" {
		t.Fatalf("submitted = %v, want [Oslo]", session.submitted)
	}

	_ = model
}

func TestAppModel_SuggestionsRenderAndStaleVersionsAreDropped(t *testing.T) {
	session := &fakeSession{}
	model := newTestAppModel(session)

	model, _ = update(model, suggestionsMsg{state: domain.SuggestionState{
		Query: "par", Candidates: []m.Candidate{paris}, Version: 2,
	}})
	model, _ = update(model, suggestionsMsg{state: domain.SuggestionState{
		Query: "be", Candidates: []m.Candidate{berlin}, Version: 1,
	}})

	view := model.View()
	if !strings.Contains(view, "Paris, FR") {
		t.Fatalf("view missing suggestion\n%s", view)
	}

	if strings.Contains(view, "Berlin") {
		t.Fatalf("stale suggestions rendered\n%s", view)
	}
}

func TestAppModel_ChooseSuggestion(t *testing.T) {
	session := &fakeSession{}
	model := typeText(newTestAppModel(session), "ber")

	model, _ = update(model, suggestionsMsg{state: domain.SuggestionState{
		Query: "ber", Candidates: []m.Candidate{paris, berlin}, Version: 1,
	}})

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyTab})
	if model.focus != focusSuggestions {
		t.Fatalf("focus = %v, want suggestions", model.focus)
	}

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyDown})
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyEnter})

	if len(session.chosen) != 1 || session.chosen[0] != berlin {
		t.Fatalf("chosen = %v, want [Berlin]", session.chosen)
	}

	if model.search.Value() != "Berlin, DE" {
		t.Fatalf("search value = %q, want the full label", model.search.Value())
	}

	if model.focus != focusSearch {
		t.Fatalf("focus = %v, want search", model.focus)
	}

	// Setting the value programmatically is not an edit.
	if got := session.queries[len(session.queries)-1]; got != "ber" {
		t.Fatalf("last query = %q, want ber", got)
	}
}

func TestAppModel_EmptySuggestionsReturnFocusToSearch(t *testing.T) {
	model := newTestAppModel(&fakeSession{})

	model, _ = update(model, suggestionsMsg{state: domain.SuggestionState{Candidates: []m.Candidate{paris}, Version: 1}})
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyDown})

	if model.focus != focusSuggestions {
		t.Fatalf("focus = %v, want suggestions", model.focus)
	}

	model, _ = update(model, suggestionsMsg{state: domain.SuggestionState{Version: 2}})
	if model.focus != focusSearch {
		t.Fatalf("focus = %v, want search", model.focus)
	}
}

func TestAppModel_WeatherStates(t *testing.T) {
	model := newTestAppModel(&fakeSession{})

	if view := model.View(); !strings.Contains(view, "Search for a city") {
		t.Fatalf("idle view missing prompt\n%s", view)
	}

	loc := paris.Resolve()
	model, _ = update(model, weatherMsg{state: domain.WeatherState{Status: domain.WeatherLoading, Location: &loc, Version: 1}})

	if view := model.View(); !strings.Contains(view, "Loading weather for Paris, FR") {
		t.Fatalf("loading view\n%s", view)
	}

	model, _ = update(model, weatherMsg{state: domain.WeatherState{
		Status:   domain.WeatherReady,
		Location: &loc,
		Snapshot: &m.WeatherSnapshot{
			LocationLabel: "Paris, FR",
			Conditions: m.Conditions{
				TemperatureC: 20, FeelsLikeC: 18, HumidityPct: 55, WindSpeedMs: 5,
				Description: "clear sky", IconID: "01d",
			},
		},
		Version: 2,
	}})

	view := model.View()
	for _, want := range []string{"Paris, FR", "20°C", "18°C", "55%", "5.0 m/s", "clear sky"} {
		if !strings.Contains(view, want) {
			t.Fatalf("ready view missing %q\n%s", want, view)
		}
	}

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyF1})

	view = model.View()
	for _, want := range []string{"68°F", "11.2 mph", "imperial"} {
		if !strings.Contains(view, want) {
			t.Fatalf("imperial view missing %q\n%s", want, view)
		}
	}

	model, _ = update(model, weatherMsg{state: domain.WeatherState{
		Status: domain.WeatherFailed, Err: m.ErrNotFound, Version: 3,
	}})

	view = model.View()
	if !strings.Contains(view, "City not found") || strings.Contains(view, "20°C") {
		t.Fatalf("failed view\n%s", view)
	}

	// An older completion arriving late is ignored.
	model, _ = update(model, weatherMsg{state: domain.WeatherState{Status: domain.WeatherLoading, Version: 2}})
	if model.weather.Status != domain.WeatherFailed {
		t.Fatalf("stale weather state applied: %v", model.weather.Status)
	}
}

func TestAppModel_ThemeToggle(t *testing.T) {
	session := &fakeSession{}
	model := newTestAppModel(session)

	model, cmd := update(model, tea.KeyMsg{Type: tea.KeyF2})
	if cmd == nil {
		t.Fatalf("expected theme cmd")
	}

	msg := cmd()
	model, _ = update(model, msg)

	if model.theme != m.ThemeNight {
		t.Fatalf("theme = %v, want night", model.theme)
	}

	if len(session.toggled) != 1 || session.toggled[0] != m.ThemeDay {
		t.Fatalf("toggled = %v", session.toggled)
	}

	if !strings.Contains(model.View(), "night") {
		t.Fatalf("view missing theme name")
	}
}

func TestAppModel_ThemeSaveFailureIsShown(t *testing.T) {
	session := &fakeSession{toggleErr: errors.New("read-only file system")}
	model := newTestAppModel(session)

	_, cmd := update(model, tea.KeyMsg{Type: tea.KeyF2})
	model, _ = update(model, cmd())

	if model.theme != m.ThemeNight {
		t.Fatalf("theme = %v, want night for this session", model.theme)
	}

	if !strings.Contains(model.View(), "Theme not saved") {
		t.Fatalf("view missing save error")
	}
}

// withConditions delivers a loaded weather card and moves focus to the secret input.
func withConditions(t *testing.T, model appModel) appModel {
	t.Helper()

	loc := paris.Resolve()
	model, _ = update(model, weatherMsg{state: domain.WeatherState{
		Status:   domain.WeatherReady,
		Location: &loc,
		Snapshot: &m.WeatherSnapshot{
			LocationLabel: loc.Label,
			Conditions:    m.Conditions{TemperatureC: 20, HumidityPct: 50, IconID: "01d"},
		},
		Version: model.weather.Version + 1,
	}})

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyTab})
	if model.focus != focusSecret {
		t.Fatalf("focus = %v, want secret", model.focus)
	}

	return model
}

func TestAppModel_SecretHiddenUntilConditionsLoad(t *testing.T) {
	model := newTestAppModel(&fakeSession{})

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyTab})
	if model.focus != focusSearch {
		t.Fatalf("focus = %v, want search while no conditions are shown", model.focus)
	}

	if view := model.View(); strings.Contains(view, "Secret code") {
		t.Fatalf("secret input shown without conditions\n%s", view)
	}

	model = withConditions(t, model)
	model = typeText(model, domain.DefaultSecretCode)
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyEnter})

	if !model.cardShown() {
		t.Fatalf("card not shown after entering the code")
	}

	// A new search hides the secret box and the card, and returns focus to search.
	model, _ = update(model, weatherMsg{state: domain.WeatherState{Status: domain.WeatherLoading, Version: model.weather.Version + 1}})

	if model.focus != focusSearch {
		t.Fatalf("focus = %v, want search", model.focus)
	}

	view := model.View()
	if strings.Contains(view, "Secret code") || strings.Contains(view, shade) || model.card.Width != 0 {
		t.Fatalf("secret box or card shown while loading\n%s", view)
	}
}

func TestAppModel_SecretEvaluatedOnEnter(t *testing.T) {
	model := withConditions(t, newTestAppModel(&fakeSession{}))

	model = typeText(model, "2")
	if view := model.View(); strings.Contains(view, "Happy Hacking") {
		t.Fatalf("message shown before enter\n%s", view)
	}

	model = typeText(model, "hello")
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyEnter})

	view := model.View()
	if !strings.Contains(view, "Happy Hacking!!!!") {
		t.Fatalf("view missing plain message\n%s", view)
	}

	if model.surface.Status() != domain.RevealUninitialized || strings.Contains(view, shade) {
		t.Fatalf("plain message should not show a card")
	}

	// Editing keeps the message until the input is blank.
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyBackspace})
	if !strings.Contains(model.View(), "Happy Hacking!!!!") {
		t.Fatalf("message dropped on a non-blank edit")
	}

	for range len("2hell") {
		model, _ = update(model, tea.KeyMsg{Type: tea.KeyBackspace})
	}

	if model.secret.Value() != "" || strings.Contains(model.View(), "Happy Hacking") {
		t.Fatalf("blank input should hide the message, value %q", model.secret.Value())
	}
}

func TestAppModel_SecretClear(t *testing.T) {
	model := withConditions(t, newTestAppModel(&fakeSession{}))

	model = typeText(model, domain.DefaultSecretCode)
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.surface.Status() != domain.RevealOccluded {
		t.Fatalf("surface status = %v, want occluded", model.surface.Status())
	}

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyCtrlL})

	if model.secret.Value() != "" {
		t.Fatalf("secret value = %q, want empty", model.secret.Value())
	}

	if model.reveal.Kind != m.RevealNone || model.surface.Status() != domain.RevealUninitialized {
		t.Fatalf("clear left reveal %+v, surface %v", model.reveal, model.surface.Status())
	}
}

func TestAppModel_CardFollowsTheCode(t *testing.T) {
	model := withConditions(t, newTestAppModel(&fakeSession{}))

	model = typeText(model, domain.DefaultSecretCode)
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyEnter})

	// Once the input no longer holds the code, the card goes away without
	// showing the hidden text.
	model = typeText(model, "9")
	view := model.View()

	if model.cardShown() || strings.Contains(view, "innutya") {
		t.Fatalf("card or hidden text shown for a non-code input\n%s", view)
	}

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyBackspace})
	if model.surface.Status() != domain.RevealOccluded {
		t.Fatalf("surface status = %v, want a fresh card", model.surface.Status())
	}
}

func TestAppModel_ScratchCard(t *testing.T) {
	model := withConditions(t, newTestAppModel(&fakeSession{}, WithPixelRatio(2)))

	model = typeText(model, domain.DefaultSecretCode)
	if model.surface.Status() != domain.RevealUninitialized {
		t.Fatalf("card shown before enter")
	}

	model, _ = update(model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.surface.Status() != domain.RevealOccluded {
		t.Fatalf("surface status = %v, want occluded", model.surface.Status())
	}

	view := model.View()
	if !strings.Contains(view, shade) || strings.Contains(view, "innutya") {
		t.Fatalf("card should be fully covered\n%s", view)
	}

	if !strings.Contains(view, "(0% off)") {
		t.Fatalf("footer missing scratched share\n%s", view)
	}

	if model.card.Width != cardCols || model.card.Height != cardRows {
		t.Fatalf("card box = %+v", model.card)
	}

	left := int(model.card.Left)
	middle := int(model.card.Top) + cardRows/2

	// Motion without a press does nothing.
	model, _ = update(model, tea.MouseMsg{X: left + 5, Y: middle, Action: tea.MouseActionMotion})
	if model.surface.Status() != domain.RevealOccluded {
		t.Fatalf("motion without press erased the card")
	}

	model, _ = update(model, tea.MouseMsg{X: left, Y: middle, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for x := left + 1; x < left+cardCols; x++ {
		model, _ = update(model, tea.MouseMsg{X: x, Y: middle, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	}
	model, _ = update(model, tea.MouseMsg{X: left + cardCols - 1, Y: middle, Action: tea.MouseActionRelease})

	if model.surface.Status() != domain.RevealPartiallyRevealed {
		t.Fatalf("surface status = %v, want partially revealed", model.surface.Status())
	}

	for c := range cardCols {
		if model.cellCovered(c, cardRows/2) {
			t.Fatalf("cell %d of the middle row still covered", c)
		}
	}

	if !model.cellCovered(0, 0) {
		t.Fatalf("top row should stay covered")
	}

	if strings.Contains(model.View(), "(0% off)") {
		t.Fatalf("footer share did not move after scratching")
	}

	// Re-cover.
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyCtrlR})
	if model.surface.Status() != domain.RevealOccluded {
		t.Fatalf("ctrl+r did not re-cover the card")
	}

	// Clearing the code removes the card.
	for range len(domain.DefaultSecretCode) {
		model, _ = update(model, tea.KeyMsg{Type: tea.KeyBackspace})
	}

	if model.surface.Status() != domain.RevealUninitialized {
		t.Fatalf("surface status = %v, want uninitialized", model.surface.Status())
	}
}

func TestAppModel_PressOutsideCardIsIgnored(t *testing.T) {
	model := withConditions(t, newTestAppModel(&fakeSession{}))
	model = typeText(model, domain.DefaultSecretCode)
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyEnter})

	model, _ = update(model, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if model.surface.Engaged() {
		t.Fatalf("press outside the card engaged the surface")
	}
}

func TestAppModel_ResolvedLabelReplacesQuery(t *testing.T) {
	session := &fakeSession{}
	model := typeText(newTestAppModel(session), "paris")
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyEnter})

	loc := paris.Resolve()
	model, _ = update(model, weatherMsg{state: domain.WeatherState{Status: domain.WeatherLoading, Location: &loc, Version: 1}})

	if model.search.Value() != "Paris, FR" {
		t.Fatalf("search value = %q, want the resolved label", model.search.Value())
	}

	if got := session.queries[len(session.queries)-1]; got != "paris" {
		t.Fatalf("last query = %q, showing the label is not an edit", got)
	}
}

func TestAppModel_IconRow(t *testing.T) {
	model := withConditions(t, newTestAppModel(&fakeSession{}))

	if view := model.View(); !strings.Contains(view, "01d@2x.png") {
		t.Fatalf("view missing icon\n%s", view)
	}
}

func TestAppModel_InitAndQuit(t *testing.T) {
	model := newTestAppModel(&fakeSession{}, WithInitialQuery("Lima"))
	if cmd := model.Init(); cmd == nil {
		t.Fatalf("Init() returned nil")
	}

	if model.search.Value() != "Lima" {
		t.Fatalf("search value = %q, want Lima", model.search.Value())
	}

	_, cmd := update(model, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c did not quit")
	}
}

func TestAppModel_TickAnimatesFocusedSuggestion(t *testing.T) {
	model := newTestAppModel(&fakeSession{})
	model, _ = update(model, suggestionsMsg{state: domain.SuggestionState{Candidates: []m.Candidate{paris}, Version: 1}})
	model, _ = update(model, tea.KeyMsg{Type: tea.KeyTab})

	model, cmd := update(model, tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected tick cmd")
	}

	if model.animOffset != 1 || model.delegate.offset != 1 {
		t.Fatalf("animOffset = %d, delegate offset = %d", model.animOffset, model.delegate.offset)
	}
}

func TestCardCells(t *testing.T) {
	cells := cardCells("ab")
	if len(cells) != cardCols {
		t.Fatalf("len = %d, want %d", len(cells), cardCols)
	}

	if strings.Join(cells, "") != strings.Repeat(" ", 19)+"ab"+strings.Repeat(" ", 19) {
		t.Fatalf("cells = %q", strings.Join(cells, ""))
	}

	wide := cardCells("😙")
	joined := strings.Join(wide, "")
	if !strings.Contains(joined, "😙") {
		t.Fatalf("wide glyph lost: %q", joined)
	}

	long := cardCells(strings.Repeat("x", 60))
	if len(long) != cardCols {
		t.Fatalf("long message not clipped: %d", len(long))
	}
}
