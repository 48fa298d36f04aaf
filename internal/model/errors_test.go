package model

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"missing config", fmt.Errorf("weather: %w", ErrMissingConfiguration), KindMissingConfiguration},
		{"invalid input", ErrInvalidInput, KindInvalidInput},
		{"not found", fmt.Errorf("resolve %q: %w", "x", ErrNotFound), KindNotFound},
		{"network", fmt.Errorf("status 500: %w", ErrNetwork), KindNetworkFailure},
		{"deadline", context.DeadlineExceeded, KindNetworkFailure},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "City not found", UserMessage(ErrNotFound))
	assert.Equal(t, "Please enter a city name", UserMessage(ErrInvalidInput))
	assert.Equal(t, "Failed to fetch weather", UserMessage(fmt.Errorf("x: %w", ErrNetwork)))
	assert.Contains(t, UserMessage(ErrMissingConfiguration), "OPENWEATHER_API_KEY")
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
}
