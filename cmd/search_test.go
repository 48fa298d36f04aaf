package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/weather-explorer/internal/domain"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

func TestSearchCmd_DisplaysCandidates(t *testing.T) {
	mockExplorer, _, mockPrinter := useMocks(t, true)

	candidates := []m.Candidate{
		{Name: "Springfield", Region: "Illinois", Country: "US", Latitude: 39.78, Longitude: -89.65},
		{Name: "Springfield", Region: "Missouri", Country: "US", Latitude: 37.21, Longitude: -93.29},
	}

	mockExplorer.EXPECT().Search(mock.Anything, "springfield").Return(candidates, nil)
	mockPrinter.EXPECT().DisplaySuggestions(domain.SuggestionState{
		Query:      "springfield",
		Candidates: candidates,
	}).Return(nil)

	require.NoError(t, newTestRootCmd("search", "springfield").Execute())
}

func TestSearchCmd_NoMatches(t *testing.T) {
	mockExplorer, _, mockPrinter := useMocks(t, true)

	mockExplorer.EXPECT().Search(mock.Anything, "zzzz").Return(nil, nil)
	mockPrinter.EXPECT().DisplaySuggestions(mock.MatchedBy(func(state domain.SuggestionState) bool {
		return state.Query == "zzzz" && len(state.Candidates) == 0
	})).Return(nil)

	require.NoError(t, newTestRootCmd("search", "zzzz").Execute())
}

func TestSearchCmd_Error(t *testing.T) {
	mockExplorer, _, _ := useMocks(t, true)

	mockExplorer.EXPECT().Search(mock.Anything, "paris").
		Return(nil, fmt.Errorf("search %q: %w", "paris", m.ErrMissingConfiguration))

	err := newTestRootCmd("search", "paris").Execute()
	assert.ErrorIs(t, err, m.ErrMissingConfiguration)
}

func TestNewSearchCmd(t *testing.T) {
	cmd := newSearchCmd()

	assert.Equal(t, "search <query>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}
