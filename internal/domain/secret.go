package domain

import (
	"strings"

	m "github.com/mouse-blink/weather-explorer/internal/model"
)

// DefaultSecretCode unlocks the scratch card.
const DefaultSecretCode = "280828"

// SecretPolicy maps the secret-code input to a reveal message.
type SecretPolicy struct {
	Code         string
	GatedMessage string
	PlainMessage string
}

// NewSecretPolicy returns the policy for code, falling back to DefaultSecretCode.
func NewSecretPolicy(code string) SecretPolicy {
	code = normalizeSecret(code)
	if code == "" {
		code = DefaultSecretCode
	}

	return SecretPolicy{
		Code:         code,
		GatedMessage: "nte innutyaaattoooooo 😙",
		PlainMessage: "Happy Hacking!!!!",
	}
}

// Evaluate matches input against the code after trimming and lower-casing.
// Blank input produces no message.
func (p SecretPolicy) Evaluate(input string) m.RevealMessage {
	text := normalizeSecret(input)

	switch {
	case text == "":
		return m.RevealMessage{Kind: m.RevealNone}
	case text == p.Code:
		return m.RevealMessage{Text: p.GatedMessage, Kind: m.RevealGated}
	default:
		return m.RevealMessage{Text: p.PlainMessage, Kind: m.RevealPlain}
	}
}

// IsCode reports whether input currently matches the code.
func (p SecretPolicy) IsCode(input string) bool {
	return normalizeSecret(input) == p.Code
}

func normalizeSecret(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
