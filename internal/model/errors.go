package model

import (
	"context"
	"errors"
)

// ErrorKind classifies failures that reach the user.
type ErrorKind string

// Available ErrorKind values.
const (
	KindMissingConfiguration ErrorKind = "missing_configuration"
	KindInvalidInput         ErrorKind = "invalid_input"
	KindNotFound             ErrorKind = "not_found"
	KindNetworkFailure       ErrorKind = "network_failure"
	KindUnknown              ErrorKind = "unknown"
)

// Sentinel errors, wrapped with context by the adapters and the domain.
var (
	ErrMissingConfiguration = errors.New("missing API key")
	ErrInvalidInput         = errors.New("please enter a city name")
	ErrNotFound             = errors.New("city not found")
	ErrNetwork              = errors.New("network failure")
)

// KindOf classifies err. Anything not wrapping a sentinel is KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingConfiguration):
		return KindMissingConfiguration
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return KindNetworkFailure
	default:
		return KindUnknown
	}
}

// UserMessage is the single line shown in place of a weather card.
func UserMessage(err error) string {
	switch KindOf(err) {
	case "":
		return ""
	case KindMissingConfiguration:
		return "Missing API key. Set OPENWEATHER_API_KEY in the environment or .env."
	case KindInvalidInput:
		return "Please enter a city name"
	case KindNotFound:
		return "City not found"
	case KindNetworkFailure:
		return "Failed to fetch weather"
	default:
		if msg := err.Error(); msg != "" {
			return msg
		}

		return "Could not load weather"
	}
}
