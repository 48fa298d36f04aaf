package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// PreferenceStore persists small string preferences across sessions.
type PreferenceStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// LocalPreferenceStore keeps preferences in a YAML file.
type LocalPreferenceStore struct {
	path string
	mu   sync.Mutex
}

type preferencesYAML struct {
	Values map[string]string `yaml:"preferences"`
}

// NewLocalPreferenceStore constructs a PreferenceStore backed by the file at path.
// The file and its directory are created on the first Set.
func NewLocalPreferenceStore(path string) *LocalPreferenceStore {
	return &LocalPreferenceStore{path: path}
}

// Get returns the stored value for key. A missing file means no preferences yet.
func (s *LocalPreferenceStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return "", false, err
	}

	value, ok := prefs.Values[key]

	return value, ok, nil
}

// Set stores value under key, rewriting the whole file.
func (s *LocalPreferenceStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}

	prefs.Values[key] = value

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}

	return nil
}

func (s *LocalPreferenceStore) load() (preferencesYAML, error) {
	prefs := preferencesYAML{Values: map[string]string{}}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return prefs, nil
	}

	if err != nil {
		return prefs, fmt.Errorf("read preferences: %w", err)
	}

	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("decode preferences: %w", err)
	}

	if prefs.Values == nil {
		prefs.Values = map[string]string{}
	}

	return prefs, nil
}
