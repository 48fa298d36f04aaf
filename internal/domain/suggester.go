package domain

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/mouse-blink/weather-explorer/internal/adapter"
	m "github.com/mouse-blink/weather-explorer/internal/model"
	"github.com/mouse-blink/weather-explorer/internal/observability"
)

const (
	// DefaultDebounce is the quiet period after the last edit before a lookup fires.
	DefaultDebounce = 300 * time.Millisecond
	// DefaultSuggestLimit caps the number of suggestions shown.
	DefaultSuggestLimit = 5

	minQueryLength = 2
)

// SuggestionState is what the location picker renders.
type SuggestionState struct {
	Query      string
	Candidates []m.Candidate
	Loading    bool
	// Version increases with every visible change; listeners drop older versions.
	Version uint64
}

// SuggesterOption configures a Suggester.
type SuggesterOption func(*Suggester)

// WithSuggestClock sets the clock used for the debounce timer.
func WithSuggestClock(clock clockwork.Clock) SuggesterOption {
	return func(s *Suggester) {
		s.clock = clock
	}
}

// WithDebounce sets the quiet period.
func WithDebounce(d time.Duration) SuggesterOption {
	return func(s *Suggester) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithSuggestLimit sets the maximum number of candidates kept.
func WithSuggestLimit(limit int) SuggesterOption {
	return func(s *Suggester) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithSuggestLogger sets the logger that receives absorbed lookup failures.
func WithSuggestLogger(logger *slog.Logger) SuggesterOption {
	return func(s *Suggester) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSuggestMetrics records lookup outcomes.
func WithSuggestMetrics(metrics *observability.Metrics) SuggesterOption {
	return func(s *Suggester) {
		s.metrics = metrics
	}
}

// WithSuggestionsListener registers fn to receive a copy of the state after every change.
// fn is called without the Suggester's lock held, possibly from a timer goroutine.
func WithSuggestionsListener(fn func(SuggestionState)) SuggesterOption {
	return func(s *Suggester) {
		s.listener = fn
	}
}

// WithGeocodingAvailable disables lookups entirely when false (e.g. no API key).
func WithGeocodingAvailable(available bool) SuggesterOption {
	return func(s *Suggester) {
		s.available = available
	}
}

// Suggester turns a stream of query edits into a candidate list. Edits are
// debounced; only the lookup scheduled by the latest edit may change the list.
type Suggester struct {
	geocoder  adapter.Geocoder
	clock     clockwork.Clock
	debounce  time.Duration
	limit     int
	available bool
	logger    *slog.Logger
	metrics   *observability.Metrics
	listener  func(SuggestionState)

	mu         sync.Mutex
	generation uint64
	timer      clockwork.Timer
	cancel     context.CancelFunc
	state      SuggestionState
	closed     bool
}

// NewSuggester creates a Suggester over geocoder.
func NewSuggester(geocoder adapter.Geocoder, opts ...SuggesterOption) *Suggester {
	s := &Suggester{
		geocoder:  geocoder,
		clock:     clockwork.NewRealClock(),
		debounce:  DefaultDebounce,
		limit:     DefaultSuggestLimit,
		available: true,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// OnQueryChange handles an edit of the search text.
func (s *Suggester) OnQueryChange(text string) {
	query := strings.TrimSpace(text)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.generation++
	gen := s.generation
	s.stopPendingLocked()

	s.state.Query = query

	if utf8.RuneCountInString(query) < minQueryLength || !s.available {
		s.state.Candidates = nil
		s.state.Loading = false
		snapshot := s.changedLocked()
		s.mu.Unlock()
		s.notify(snapshot)

		return
	}

	var cleared *SuggestionState

	if s.state.Loading {
		// The lookup that set it was just cancelled.
		s.state.Loading = false
		snapshot := s.changedLocked()
		cleared = &snapshot
	}

	s.timer = s.clock.AfterFunc(s.debounce, func() { s.lookup(gen, query) })
	s.mu.Unlock()

	if cleared != nil {
		s.notify(*cleared)
	}
}

// Reset cancels pending work and clears the list, e.g. after a candidate was picked.
func (s *Suggester) Reset() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.generation++
	s.stopPendingLocked()
	s.state.Candidates = nil
	s.state.Loading = false
	snapshot := s.changedLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// Close stops the debounce timer and cancels any in-flight lookup. Later calls are no-ops.
func (s *Suggester) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	s.generation++
	s.stopPendingLocked()
}

// State returns a copy of the current state.
func (s *Suggester) State() SuggestionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Suggester) lookup(gen uint64, query string) {
	s.mu.Lock()
	if s.closed || gen != s.generation {
		s.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.timer = nil
	s.cancel = cancel
	s.state.Loading = true
	snapshot := s.changedLocked()
	s.mu.Unlock()

	s.notify(snapshot)

	candidates, err := s.geocoder.Search(ctx, query, s.limit)

	s.mu.Lock()
	cancel()

	if s.closed || gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("discarding stale suggestions", "query", query)
		s.countStale()

		return
	}

	s.cancel = nil
	s.state.Loading = false

	outcome := "success"

	switch {
	case err != nil:
		s.state.Candidates = nil
		outcome = "error"
	case len(candidates) == 0:
		s.state.Candidates = nil
		outcome = "empty"
	default:
		if len(candidates) > s.limit {
			candidates = candidates[:s.limit]
		}

		s.state.Candidates = append([]m.Candidate(nil), candidates...)
	}

	snapshot = s.changedLocked()
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("city suggestions failed", "query", query, "error", err)
	}

	s.countLookup(outcome)
	s.notify(snapshot)
}

func (s *Suggester) stopPendingLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Suggester) changedLocked() SuggestionState {
	s.state.Version++

	return s.snapshotLocked()
}

func (s *Suggester) snapshotLocked() SuggestionState {
	snapshot := s.state
	snapshot.Candidates = append([]m.Candidate(nil), s.state.Candidates...)

	return snapshot
}

func (s *Suggester) notify(state SuggestionState) {
	if s.listener != nil {
		s.listener(state)
	}
}

func (s *Suggester) countLookup(outcome string) {
	if s.metrics != nil {
		s.metrics.GeocodeRequests.WithLabelValues("suggest", outcome).Inc()
	}
}

func (s *Suggester) countStale() {
	if s.metrics != nil {
		s.metrics.StaleDiscards.WithLabelValues("suggest").Inc()
	}
}
