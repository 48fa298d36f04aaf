package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mouse-blink/weather-explorer/internal/adapter"
	m "github.com/mouse-blink/weather-explorer/internal/model"
	"github.com/mouse-blink/weather-explorer/internal/observability"
)

// Explorer defines the operations the commands run against the weather services.
type Explorer interface {
	Search(ctx context.Context, query string) ([]m.Candidate, error)
	Current(ctx context.Context, query string) (WeatherState, error)
	Theme() (m.Theme, error)
	SetTheme(theme m.Theme) error
	NewSession(opts ...SessionOption) *Session
}

// ExplorerArgs holds the settings shared by every flow.
type ExplorerArgs struct {
	// Available is false when no API key is configured.
	Available    bool
	Debounce     time.Duration
	SuggestLimit int
	SecretCode   string
	Clock        clockwork.Clock
	Logger       *slog.Logger
	Metrics      *observability.Metrics
}

type explorer struct {
	geocoder adapter.Geocoder
	weather  adapter.WeatherProvider
	themes   *ThemeService
	args     ExplorerArgs
}

// NewExplorer creates an Explorer over the given collaborators.
func NewExplorer(geocoder adapter.Geocoder, weather adapter.WeatherProvider, prefs adapter.PreferenceStore, args ExplorerArgs) Explorer {
	if args.Logger == nil {
		args.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if args.Clock == nil {
		args.Clock = clockwork.NewRealClock()
	}

	if args.SuggestLimit <= 0 {
		args.SuggestLimit = DefaultSuggestLimit
	}

	if args.Debounce <= 0 {
		args.Debounce = DefaultDebounce
	}

	return &explorer{
		geocoder: geocoder,
		weather:  weather,
		themes:   NewThemeService(prefs),
		args:     args,
	}
}

// Search returns up to the configured number of candidates for query, without debouncing.
func (e *explorer) Search(ctx context.Context, query string) ([]m.Candidate, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, m.ErrInvalidInput
	}

	if !e.args.Available {
		return nil, fmt.Errorf("search %q: %w", q, m.ErrMissingConfiguration)
	}

	candidates, err := e.geocoder.Search(ctx, q, e.args.SuggestLimit)
	if err != nil {
		e.countSearch("error")
		return nil, fmt.Errorf("search %q: %w", q, err)
	}

	if len(candidates) == 0 {
		e.countSearch("empty")
		return nil, nil
	}

	e.countSearch("success")

	if len(candidates) > e.args.SuggestLimit {
		candidates = candidates[:e.args.SuggestLimit]
	}

	return candidates, nil
}

// Current resolves query and fetches its conditions. The returned state is the
// final visible state, including the user-facing error on failure.
func (e *explorer) Current(ctx context.Context, query string) (WeatherState, error) {
	workflow := e.newWorkflow(e.args.Logger)

	_, err := workflow.ResolveAndFetch(ctx, query)

	return workflow.State(), err
}

// Theme returns the persisted theme.
func (e *explorer) Theme() (m.Theme, error) {
	return e.themes.Load()
}

// SetTheme persists theme.
func (e *explorer) SetTheme(theme m.Theme) error {
	return e.themes.Save(theme)
}

// NewSession wires a Suggester and a WeatherWorkflow for one interactive run.
func (e *explorer) NewSession(opts ...SessionOption) *Session {
	cfg := sessionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := e.args.Logger.With("session", uuid.NewString())

	suggesterOpts := []SuggesterOption{
		WithSuggestClock(e.args.Clock),
		WithDebounce(e.args.Debounce),
		WithSuggestLimit(e.args.SuggestLimit),
		WithSuggestLogger(logger),
		WithSuggestMetrics(e.args.Metrics),
		WithGeocodingAvailable(e.args.Available),
	}
	if cfg.onSuggestions != nil {
		suggesterOpts = append(suggesterOpts, WithSuggestionsListener(cfg.onSuggestions))
	}

	workflow := e.newWorkflow(logger)
	if cfg.onWeather != nil {
		workflow.listener = cfg.onWeather
	}

	return newSession(
		NewSuggester(e.geocoder, suggesterOpts...),
		workflow,
		e.themes,
		NewSecretPolicy(e.args.SecretCode),
		logger,
	)
}

func (e *explorer) newWorkflow(logger *slog.Logger) *WeatherWorkflow {
	return NewWeatherWorkflow(e.geocoder, e.weather,
		WithWeatherAvailable(e.args.Available),
		WithWeatherLogger(logger),
		WithWeatherMetrics(e.args.Metrics),
	)
}

func (e *explorer) countSearch(outcome string) {
	if e.args.Metrics != nil {
		e.args.Metrics.GeocodeRequests.WithLabelValues("search", outcome).Inc()
	}
}
