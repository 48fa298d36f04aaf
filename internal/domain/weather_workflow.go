package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/mouse-blink/weather-explorer/internal/adapter"
	m "github.com/mouse-blink/weather-explorer/internal/model"
	"github.com/mouse-blink/weather-explorer/internal/observability"
)

// ErrSuperseded is returned to the caller of a fetch whose result was discarded
// because a newer fetch started before it completed.
var ErrSuperseded = errors.New("superseded by a newer request")

// WeatherStatus is the lifecycle stage of the weather display.
type WeatherStatus int

// Available WeatherStatus values.
const (
	WeatherIdle WeatherStatus = iota
	WeatherLoading
	WeatherReady
	WeatherFailed
)

func (s WeatherStatus) String() string {
	switch s {
	case WeatherLoading:
		return "loading"
	case WeatherReady:
		return "ready"
	case WeatherFailed:
		return "failed"
	default:
		return "idle"
	}
}

// WeatherState is the single visible weather state. Snapshot is set only when
// Status is WeatherReady and Err only when Status is WeatherFailed.
type WeatherState struct {
	Status   WeatherStatus
	Location *m.ResolvedLocation
	Snapshot *m.WeatherSnapshot
	Err      error
	// Version increases with every visible change; listeners drop older versions.
	Version uint64
}

// Message is the user-visible error text, empty unless the state failed.
func (s WeatherState) Message() string {
	return m.UserMessage(s.Err)
}

// WeatherOption configures a WeatherWorkflow.
type WeatherOption func(*WeatherWorkflow)

// WithWeatherLogger sets the workflow logger.
func WithWeatherLogger(logger *slog.Logger) WeatherOption {
	return func(w *WeatherWorkflow) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithWeatherMetrics records request outcomes.
func WithWeatherMetrics(metrics *observability.Metrics) WeatherOption {
	return func(w *WeatherWorkflow) {
		w.metrics = metrics
	}
}

// WithWeatherListener registers fn to receive a copy of the state after every change.
func WithWeatherListener(fn func(WeatherState)) WeatherOption {
	return func(w *WeatherWorkflow) {
		w.listener = fn
	}
}

// WithWeatherAvailable makes every fetch fail with model.ErrMissingConfiguration when false.
func WithWeatherAvailable(available bool) WeatherOption {
	return func(w *WeatherWorkflow) {
		w.available = available
	}
}

// WeatherWorkflow fetches current conditions for a location. Each fetch gets a
// generation number; only the latest generation may change the visible state.
type WeatherWorkflow struct {
	geocoder  adapter.Geocoder
	weather   adapter.WeatherProvider
	available bool
	logger    *slog.Logger
	metrics   *observability.Metrics
	listener  func(WeatherState)

	mu         sync.Mutex
	generation uint64
	state      WeatherState
}

// NewWeatherWorkflow creates a WeatherWorkflow.
func NewWeatherWorkflow(geocoder adapter.Geocoder, weather adapter.WeatherProvider, opts ...WeatherOption) *WeatherWorkflow {
	w := &WeatherWorkflow{
		geocoder:  geocoder,
		weather:   weather,
		available: true,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// State returns a copy of the current state.
func (w *WeatherWorkflow) State() WeatherState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// FetchForLocation replaces the visible state with loading and fetches conditions for loc.
func (w *WeatherWorkflow) FetchForLocation(ctx context.Context, loc m.ResolvedLocation) error {
	if !w.available {
		return w.failNow(fmt.Errorf("fetch weather: %w", m.ErrMissingConfiguration))
	}

	if !validCoordinates(loc) {
		return w.failNow(fmt.Errorf("coordinates %v,%v: %w", loc.Latitude, loc.Longitude, m.ErrInvalidInput))
	}

	gen := w.begin(&loc)

	return w.fetch(ctx, gen, loc)
}

// ResolveAndFetch geocodes raw text to its first match and fetches conditions there.
// The resolved location is returned even when the weather fetch itself fails.
func (w *WeatherWorkflow) ResolveAndFetch(ctx context.Context, raw string) (m.ResolvedLocation, error) {
	query := strings.TrimSpace(raw)
	if query == "" {
		return m.ResolvedLocation{}, w.failNow(m.ErrInvalidInput)
	}

	if !w.available {
		return m.ResolvedLocation{}, w.failNow(fmt.Errorf("resolve %q: %w", query, m.ErrMissingConfiguration))
	}

	gen := w.begin(nil)

	candidates, err := w.geocoder.Search(ctx, query, 1)
	if err != nil {
		w.countResolve("error")
		return m.ResolvedLocation{}, w.fail(gen, fmt.Errorf("resolve %q: %w", query, err))
	}

	if len(candidates) == 0 {
		w.countResolve("empty")
		return m.ResolvedLocation{}, w.fail(gen, fmt.Errorf("resolve %q: %w", query, m.ErrNotFound))
	}

	w.countResolve("success")

	loc := candidates[0].Resolve()
	if !w.commit(gen, func(s *WeatherState) { s.Location = &loc }) {
		return loc, ErrSuperseded
	}

	return loc, w.fetch(ctx, gen, loc)
}

func (w *WeatherWorkflow) fetch(ctx context.Context, gen uint64, loc m.ResolvedLocation) error {
	conditions, err := w.weather.CurrentConditions(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		w.countWeather("error")
		return w.fail(gen, fmt.Errorf("fetch weather for %s: %w", loc.Label, err))
	}

	w.countWeather("success")

	snapshot := &m.WeatherSnapshot{LocationLabel: loc.Label, Conditions: conditions}

	applied := w.commit(gen, func(s *WeatherState) {
		s.Status = WeatherReady
		s.Snapshot = snapshot
		s.Err = nil
	})
	if !applied {
		return ErrSuperseded
	}

	return nil
}

// begin starts a new generation and shows the loading state.
func (w *WeatherWorkflow) begin(loc *m.ResolvedLocation) uint64 {
	w.mu.Lock()
	w.generation++
	gen := w.generation
	w.state = WeatherState{Status: WeatherLoading, Location: loc, Version: w.state.Version + 1}
	snapshot := w.state
	w.mu.Unlock()

	w.notify(snapshot)

	return gen
}

// failNow supersedes everything in flight with an immediate failure.
func (w *WeatherWorkflow) failNow(err error) error {
	w.mu.Lock()
	w.generation++
	w.state = WeatherState{Status: WeatherFailed, Err: err, Version: w.state.Version + 1}
	snapshot := w.state
	w.mu.Unlock()

	w.logger.Info("weather request rejected", "error", err)
	w.notify(snapshot)

	return err
}

func (w *WeatherWorkflow) fail(gen uint64, err error) error {
	applied := w.commit(gen, func(s *WeatherState) {
		s.Status = WeatherFailed
		s.Snapshot = nil
		s.Err = err
	})
	if !applied {
		return ErrSuperseded
	}

	w.logger.Warn("weather request failed", "error", err)

	return err
}

// commit applies mutate when gen is still current and reports whether it did.
func (w *WeatherWorkflow) commit(gen uint64, mutate func(*WeatherState)) bool {
	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		w.logger.Debug("discarding stale weather completion", "generation", gen)

		if w.metrics != nil {
			w.metrics.StaleDiscards.WithLabelValues("weather").Inc()
		}

		return false
	}

	mutate(&w.state)
	w.state.Version++
	snapshot := w.state
	w.mu.Unlock()

	w.notify(snapshot)

	return true
}

func validCoordinates(loc m.ResolvedLocation) bool {
	if math.IsNaN(loc.Latitude) || math.IsNaN(loc.Longitude) {
		return false
	}

	return math.Abs(loc.Latitude) <= 90 && math.Abs(loc.Longitude) <= 180
}

func (w *WeatherWorkflow) notify(state WeatherState) {
	if w.listener != nil {
		w.listener(state)
	}
}

func (w *WeatherWorkflow) countResolve(outcome string) {
	if w.metrics != nil {
		w.metrics.GeocodeRequests.WithLabelValues("resolve", outcome).Inc()
	}
}

func (w *WeatherWorkflow) countWeather(outcome string) {
	if w.metrics != nil {
		w.metrics.WeatherRequests.WithLabelValues(outcome).Inc()
	}
}
