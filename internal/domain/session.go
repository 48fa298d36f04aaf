package domain

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	m "github.com/mouse-blink/weather-explorer/internal/model"
)

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	onSuggestions func(SuggestionState)
	onWeather     func(WeatherState)
}

// WithSuggestionUpdates registers fn to receive every suggestion state change.
func WithSuggestionUpdates(fn func(SuggestionState)) SessionOption {
	return func(c *sessionConfig) {
		c.onSuggestions = fn
	}
}

// WithWeatherUpdates registers fn to receive every weather state change.
func WithWeatherUpdates(fn func(WeatherState)) SessionOption {
	return func(c *sessionConfig) {
		c.onWeather = fn
	}
}

// Session is one interactive run: query edits, selections, submissions,
// theme toggles and secret-code input. Fetches run in the background and
// report through the registered listeners.
type Session struct {
	suggester *Suggester
	weather   *WeatherWorkflow
	themes    *ThemeService
	secret    SecretPolicy
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func newSession(suggester *Suggester, weather *WeatherWorkflow, themes *ThemeService, secret SecretPolicy, logger *slog.Logger) *Session {
	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		suggester: suggester,
		weather:   weather,
		themes:    themes,
		secret:    secret,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// QueryChanged forwards a search-text edit to the suggester.
func (s *Session) QueryChanged(text string) {
	s.suggester.OnQueryChange(text)
}

// Choose fetches weather for a picked suggestion and clears the list.
func (s *Session) Choose(candidate m.Candidate) {
	s.suggester.Reset()

	loc := candidate.Resolve()
	s.background(func(ctx context.Context) error {
		return s.weather.FetchForLocation(ctx, loc)
	})
}

// Submit resolves free text to its first match and fetches weather there.
func (s *Session) Submit(text string) {
	s.suggester.Reset()

	s.background(func(ctx context.Context) error {
		_, err := s.weather.ResolveAndFetch(ctx, text)
		return err
	})
}

// ToggleTheme persists and returns the opposite of current.
func (s *Session) ToggleTheme(current m.Theme) (m.Theme, error) {
	return s.themes.Toggle(current)
}

// Reveal evaluates the secret-code input.
func (s *Session) Reveal(input string) m.RevealMessage {
	return s.secret.Evaluate(input)
}

// IsSecretCode reports whether input is the scratch-card code.
func (s *Session) IsSecretCode(input string) bool {
	return s.secret.IsCode(input)
}

// Suggestions returns the current suggestion state.
func (s *Session) Suggestions() SuggestionState {
	return s.suggester.State()
}

// Weather returns the current weather state.
func (s *Session) Weather() WeatherState {
	return s.weather.State()
}

// Close cancels outstanding work and waits for background fetches to return.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.suggester.Close()
	s.wg.Wait()
}

func (s *Session) background(fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		if err := fn(s.ctx); err != nil && !errors.Is(err, ErrSuperseded) {
			s.logger.Debug("weather fetch finished with error", "error", err)
		}
	}()
}
