package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/weather-explorer/internal/model"
)

func TestSecretPolicy_Evaluate(t *testing.T) {
	p := NewSecretPolicy("")

	tests := []struct {
		name  string
		input string
		kind  m.RevealKind
	}{
		{"empty", "", m.RevealNone},
		{"whitespace only", "   \t", m.RevealNone},
		{"exact code", "280828", m.RevealGated},
		{"padded code", "  280828 ", m.RevealGated},
		{"other text", "hello", m.RevealPlain},
		{"partial code", "2808", m.RevealPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Evaluate(tt.input)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.kind == m.RevealNone, got.Empty())
		})
	}

	assert.Equal(t, p.GatedMessage, p.Evaluate("280828").Text)
	assert.Equal(t, "Happy Hacking!!!!", p.Evaluate("nope").Text)
}

func TestSecretPolicy_CaseInsensitiveCustomCode(t *testing.T) {
	p := NewSecretPolicy(" OpenSesame ")

	assert.Equal(t, "opensesame", p.Code)
	assert.True(t, p.IsCode("OPENSESAME"))
	assert.Equal(t, m.RevealGated, p.Evaluate("openSesame").Kind)
	assert.False(t, p.IsCode("280828"))
}
