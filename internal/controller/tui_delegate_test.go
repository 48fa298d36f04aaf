package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"

	m "github.com/mouse-blink/weather-explorer/internal/model"
)

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("hello", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("hi", 5, 0); got != "hi" {
		t.Fatalf("animateScroll short text = %q, want hi", got)
	}

	if got := animateScroll("Llanfairpwllgwyngyll", 5, 0); got != "Llan…" {
		t.Fatalf("animateScroll pause = %q, want Llan…", got)
	}

	if got := animateScroll("abcdef", 3, 6); got != "bcd" {
		t.Fatalf("animateScroll scrolled = %q, want bcd", got)
	}

	// Wraps around through the gap.
	if got := animateScroll("abcdef", 3, 5+5); got != "f  " {
		t.Fatalf("animateScroll wrapped = %q, want %q", got, "f  ")
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 0, ""},
		{"hello", 10, "hello"},
		{"hello", 1, "…"},
		{"hello", 2, "h…"},
		{"São Paulo, SP, BR", 6, "São P…"},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Fatalf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestSuggestionDelegate_Render(t *testing.T) {
	delegate := suggestionDelegate{palette: paletteFor(m.ThemeDay), focused: true}
	items := []list.Item{candidateItem{candidate: m.Candidate{Name: "Springfield", Region: "Illinois", Country: "US", Latitude: 39.8, Longitude: -89.64}}}
	lm := list.New(items, delegate, 60, 5)

	var buf bytes.Buffer
	delegate.Render(&buf, lm, 0, items[0])

	if !strings.Contains(buf.String(), "Springfield, Illinois, US") {
		t.Fatalf("render output missing label: %q", buf.String())
	}

	if !strings.Contains(buf.String(), "39.80, -89.64") {
		t.Fatalf("render output missing coordinates: %q", buf.String())
	}

	buf.Reset()
	delegate.Render(&buf, lm, 1, items[0])
	if buf.Len() == 0 {
		t.Fatalf("render output empty")
	}

	// Render with bad item type should not panic
	buf.Reset()
	delegate.Render(&buf, lm, 0, struct{ list.Item }{})
	if buf.Len() != 0 {
		t.Fatalf("render of foreign item wrote %q", buf.String())
	}

	if delegate.Height() != 1 {
		t.Fatalf("Height() = %d, want 1", delegate.Height())
	}

	if delegate.Spacing() != 0 {
		t.Fatalf("Spacing() = %d, want 0", delegate.Spacing())
	}

	if cmd := delegate.Update(nil, &lm); cmd != nil {
		t.Fatalf("Update() returned cmd")
	}
}
