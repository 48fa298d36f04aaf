package controller

import (
	"errors"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

// ErrNoSession is returned by TUI.Start when no session was supplied.
var ErrNoSession = errors.New("interactive UI requires a session")

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the interactive explorer. It returns once the program is running.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	if cfg.session == nil {
		return ErrNoSession
	}

	model := newAppModel(cfg)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.handleWindowSize(tea.WindowSizeMsg{Width: width, Height: height})
		}
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := append([]tea.ProgramOption{
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, t.options...)

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	program, done := t.program, t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}

// Wait blocks until the user quits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplaySuggestions forwards a suggestion state to the running program.
func (t *TUI) DisplaySuggestions(state domain.SuggestionState) error {
	t.send(suggestionsMsg{state: state})

	return nil
}

// DisplayWeather forwards a weather state to the running program.
func (t *TUI) DisplayWeather(state domain.WeatherState) error {
	t.send(weatherMsg{state: state})

	return nil
}

// DisplayTheme switches the running program to theme.
func (t *TUI) DisplayTheme(theme m.Theme) error {
	t.send(themeMsg{theme: theme})

	return nil
}

// send delivers msg without blocking the caller, which may be the program's own
// Update loop. Ordering is restored by the Version carried in each state.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	go program.Send(msg)
}
