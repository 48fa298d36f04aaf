package domain

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/weather-explorer/internal/adapter/mocks"
	m "github.com/mouse-blink/weather-explorer/internal/model"
	"github.com/mouse-blink/weather-explorer/internal/observability"
)

type explorerMocks struct {
	geocoder *adaptermocks.MockGeocoder
	weather  *adaptermocks.MockWeatherProvider
	prefs    *adaptermocks.MockPreferenceStore
}

func newExplorerMocks(t *testing.T) explorerMocks {
	return explorerMocks{
		geocoder: adaptermocks.NewMockGeocoder(t),
		weather:  adaptermocks.NewMockWeatherProvider(t),
		prefs:    adaptermocks.NewMockPreferenceStore(t),
	}
}

func (em explorerMocks) explorer(args ExplorerArgs) Explorer {
	return NewExplorer(em.geocoder, em.weather, em.prefs, args)
}

func TestExplorer_Search(t *testing.T) {
	mocks := newExplorerMocks(t)
	metrics := observability.NewMetricsForTesting()

	mocks.geocoder.EXPECT().Search(mock.Anything, "san", 3).
		Return(candidates("San Diego", "San Jose", "Santiago", "Santander"), nil).Once()

	e := mocks.explorer(ExplorerArgs{Available: true, SuggestLimit: 3, Metrics: metrics})

	got, err := e.Search(context.Background(), "  san ")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Santiago", got[2].Name)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.GeocodeRequests.WithLabelValues("search", "success")), 0)
}

func TestExplorer_SearchRejectsBlankQuery(t *testing.T) {
	mocks := newExplorerMocks(t)
	e := mocks.explorer(ExplorerArgs{Available: true})

	_, err := e.Search(context.Background(), "   ")
	require.ErrorIs(t, err, m.ErrInvalidInput)
}

func TestExplorer_SearchWithoutKey(t *testing.T) {
	mocks := newExplorerMocks(t)
	e := mocks.explorer(ExplorerArgs{})

	_, err := e.Search(context.Background(), "paris")
	require.ErrorIs(t, err, m.ErrMissingConfiguration)
}

func TestExplorer_SearchNoMatches(t *testing.T) {
	mocks := newExplorerMocks(t)
	mocks.geocoder.EXPECT().Search(mock.Anything, "zzz", DefaultSuggestLimit).Return(nil, nil).Once()

	e := mocks.explorer(ExplorerArgs{Available: true})

	got, err := e.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExplorer_SearchFailure(t *testing.T) {
	mocks := newExplorerMocks(t)
	mocks.geocoder.EXPECT().Search(mock.Anything, "paris", DefaultSuggestLimit).
		Return(nil, errors.Join(m.ErrNetwork, errors.New("dial tcp"))).Once()

	e := mocks.explorer(ExplorerArgs{Available: true})

	_, err := e.Search(context.Background(), "paris")
	require.ErrorIs(t, err, m.ErrNetwork)
	assert.Contains(t, err.Error(), `search "paris"`)
}

func TestExplorer_Current(t *testing.T) {
	mocks := newExplorerMocks(t)
	mocks.geocoder.EXPECT().Search(mock.Anything, "Paris", 1).Return([]m.Candidate{paris}, nil).Once()
	mocks.weather.EXPECT().CurrentConditions(mock.Anything, paris.Latitude, paris.Longitude).
		Return(m.Conditions{TemperatureC: 20, WindSpeedMs: 5}, nil).Once()

	e := mocks.explorer(ExplorerArgs{Available: true})

	state, err := e.Current(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, WeatherReady, state.Status)
	require.NotNil(t, state.Snapshot)
	assert.InDelta(t, 20, state.Snapshot.TemperatureC, 0)
}

func TestExplorer_CurrentNotFound(t *testing.T) {
	mocks := newExplorerMocks(t)
	mocks.geocoder.EXPECT().Search(mock.Anything, "Atlantis", 1).Return([]m.Candidate{}, nil).Once()

	e := mocks.explorer(ExplorerArgs{Available: true})

	state, err := e.Current(context.Background(), "Atlantis")
	require.ErrorIs(t, err, m.ErrNotFound)
	assert.Equal(t, "City not found", state.Message())
}

func TestExplorer_Theme(t *testing.T) {
	mocks := newExplorerMocks(t)
	mocks.prefs.EXPECT().Get(m.ThemeKey).Return("night", true, nil).Once()
	mocks.prefs.EXPECT().Set(m.ThemeKey, "day").Return(nil).Once()

	e := mocks.explorer(ExplorerArgs{Available: true})

	theme, err := e.Theme()
	require.NoError(t, err)
	assert.Equal(t, m.ThemeNight, theme)

	require.NoError(t, e.SetTheme(m.ThemeDay))
}

func TestSession_QueryChangedDebouncesIntoSuggestions(t *testing.T) {
	mocks := newExplorerMocks(t)
	clock := clockwork.NewFakeClock()

	mocks.geocoder.EXPECT().Search(mock.Anything, "ber", DefaultSuggestLimit).
		Return([]m.Candidate{berlin}, nil).Once()

	updates := make(chan SuggestionState, 8)
	e := mocks.explorer(ExplorerArgs{Available: true, Clock: clock})
	s := e.NewSession(WithSuggestionUpdates(func(state SuggestionState) { updates <- state }))
	defer s.Close()

	s.QueryChanged("b")
	s.QueryChanged("be")
	s.QueryChanged("ber")
	clock.Advance(DefaultDebounce)

	require.Eventually(t, func() bool { return len(s.Suggestions().Candidates) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "ber", s.Suggestions().Query)
	assert.NotEmpty(t, updates)
}

func TestSession_ChooseFetchesAndClearsSuggestions(t *testing.T) {
	mocks := newExplorerMocks(t)
	mocks.weather.EXPECT().CurrentConditions(mock.Anything, berlin.Latitude, berlin.Longitude).
		Return(m.Conditions{TemperatureC: 3}, nil).Once()

	ready := make(chan WeatherState, 1)
	e := mocks.explorer(ExplorerArgs{Available: true, Clock: clockwork.NewFakeClock()})
	s := e.NewSession(WithWeatherUpdates(func(state WeatherState) {
		if state.Status == WeatherReady {
			ready <- state
		}
	}))
	defer s.Close()

	s.Choose(berlin)

	select {
	case state := <-ready:
		assert.Equal(t, "Berlin, DE", state.Snapshot.LocationLabel)
	case <-time.After(2 * time.Second):
		t.Fatal("no ready state")
	}

	assert.Empty(t, s.Suggestions().Candidates)
}

func TestSession_SubmitResolvesFirstMatch(t *testing.T) {
	mocks := newExplorerMocks(t)
	mocks.geocoder.EXPECT().Search(mock.Anything, "Paris", 1).Return([]m.Candidate{paris}, nil).Once()
	mocks.weather.EXPECT().CurrentConditions(mock.Anything, paris.Latitude, paris.Longitude).
		Return(m.Conditions{TemperatureC: 20}, nil).Once()

	e := mocks.explorer(ExplorerArgs{Available: true, Clock: clockwork.NewFakeClock()})
	s := e.NewSession()

	s.Submit("Paris")
	s.Close()

	state := s.Weather()
	assert.Equal(t, WeatherReady, state.Status)
	require.NotNil(t, state.Location)
	assert.Equal(t, "Paris, Ile-de-France, FR", state.Location.Label)
}

func TestSession_ClosedSessionIgnoresWork(t *testing.T) {
	mocks := newExplorerMocks(t)
	e := mocks.explorer(ExplorerArgs{Available: true, Clock: clockwork.NewFakeClock()})
	s := e.NewSession()

	s.Close()
	s.Submit("Paris")
	s.Choose(paris)
	s.Close()

	assert.Equal(t, WeatherIdle, s.Weather().Status)
}

func TestSession_RevealAndTheme(t *testing.T) {
	mocks := newExplorerMocks(t)
	mocks.prefs.EXPECT().Set(m.ThemeKey, "night").Return(nil).Once()

	e := mocks.explorer(ExplorerArgs{Available: true, SecretCode: "open sesame", Clock: clockwork.NewFakeClock()})
	s := e.NewSession()
	defer s.Close()

	assert.Equal(t, m.RevealGated, s.Reveal(" Open Sesame ").Kind)
	assert.Equal(t, m.RevealPlain, s.Reveal("280828").Kind)
	assert.Equal(t, m.RevealNone, s.Reveal("  ").Kind)
	assert.True(t, s.IsSecretCode("OPEN SESAME"))
	assert.False(t, s.IsSecretCode("280828"))

	theme, err := s.ToggleTheme(m.ThemeDay)
	require.NoError(t, err)
	assert.Equal(t, m.ThemeNight, theme)
}

func TestSession_LogsCarrySessionID(t *testing.T) {
	mocks := newExplorerMocks(t)

	var (
		logs bytes.Buffer
		mu   sync.Mutex
	)

	logger := slog.New(slog.NewTextHandler(&lockedWriter{w: &logs, mu: &mu}, nil))
	e := mocks.explorer(ExplorerArgs{Available: true, Logger: logger})

	first := e.NewSession()
	first.Submit("   ")
	first.Close()

	second := e.NewSession()
	second.Submit("")
	second.Close()

	mu.Lock()
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	mu.Unlock()

	require.Len(t, lines, 2)

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		require.Contains(t, line, "weather request rejected")

		_, after, found := strings.Cut(line, "session=")
		require.True(t, found, line)

		ids = append(ids, strings.Fields(after)[0])
	}

	assert.NotEqual(t, ids[0], ids[1])
}
