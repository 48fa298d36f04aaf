package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func newTestTUI(buf *bytes.Buffer) *TUI {
	tui := NewTUI(buf)
	tui.options = []tea.ProgramOption{tea.WithInput(nil), tea.WithoutSignalHandler()}

	return tui
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// A second start is a no-op.
	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("second startWithModel error = %v", err)
	}

	// Display calls while running go through program.Send.
	_ = tui.DisplaySuggestions(domain.SuggestionState{Version: 1})
	_ = tui.DisplayWeather(domain.WeatherState{Version: 1})
	_ = tui.DisplayTheme(m.ThemeNight)

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}

	if err := tui.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
}

func TestTUI_SendBeforeStart_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	tui.send(weatherMsg{})
	_ = tui.DisplayTheme(m.ThemeDay)

	// Wait and Close on a TUI that never started return immediately.
	tui.Wait()
	tui.Close()
}

func TestTUI_StartRequiresSession(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.Start(WithUnits(m.UnitsMetric)); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Start() error = %v, want ErrNoSession", err)
	}
}
