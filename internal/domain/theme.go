package domain

import (
	"fmt"

	"github.com/mouse-blink/weather-explorer/internal/adapter"
	m "github.com/mouse-blink/weather-explorer/internal/model"
)

// ThemeService reads and persists the UI theme.
type ThemeService struct {
	store adapter.PreferenceStore
}

// NewThemeService creates a ThemeService over the given store.
func NewThemeService(store adapter.PreferenceStore) *ThemeService {
	return &ThemeService{store: store}
}

// Load returns the stored theme. Missing or unknown values yield ThemeDay;
// a store error is returned alongside ThemeDay so the caller can still start.
func (s *ThemeService) Load() (m.Theme, error) {
	value, ok, err := s.store.Get(m.ThemeKey)
	if err != nil {
		return m.ThemeDay, fmt.Errorf("load theme: %w", err)
	}

	if !ok {
		return m.ThemeDay, nil
	}

	theme, valid := m.ParseTheme(value)
	if !valid {
		return m.ThemeDay, nil
	}

	return theme, nil
}

// Save persists theme.
func (s *ThemeService) Save(theme m.Theme) error {
	if err := s.store.Set(m.ThemeKey, string(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	return nil
}

// Toggle persists and returns the opposite of current.
func (s *ThemeService) Toggle(current m.Theme) (m.Theme, error) {
	next := current.Toggle()

	return next, s.Save(next)
}
