package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{605, "10:05"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatCountdown(tt.in); got != tt.want {
			t.Errorf("FormatCountdown(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, "⏱ 00:09", ansi.Strip(Countdown(9)))
	assert.Equal(t, "⏱ 02:00", ansi.Strip(Countdown(120)))
}

func TestRenderHeader(t *testing.T) {
	out := ansi.Strip(RenderHeader("Capitals of Europe", "⏱ 01:00", 100))
	assert.Contains(t, out, "quizdeck")
	assert.Contains(t, out, "Capitals of Europe")
	assert.Contains(t, out, "⏱ 01:00")

	long := strings.Repeat("very long title ", 20)
	out = ansi.Strip(RenderHeader(long, "⏱ 01:00", 80))
	assert.Contains(t, out, "…")
	assert.Contains(t, out, "⏱ 01:00", "status survives a long title")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 80)
	}
}

func TestRenderFooter(t *testing.T) {
	hints := []KeyHint{
		{Key: "←/→", Description: "Prev/Next"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
	out := ansi.Strip(RenderFooter(hints, 100))
	assert.Contains(t, out, "Ctrl+S Submit")
	assert.Contains(t, out, "Esc Leave")

	many := append([]KeyHint{}, hints...)
	for range 6 {
		many = append(many, KeyHint{Key: "X", Description: "a rather wordy description"})
	}
	out = ansi.Strip(RenderFooter(many, 80))
	assert.NotContains(t, out, "Submit")
	assert.Contains(t, out, "Ctrl+S", "keys stay when descriptions are dropped")
}

func TestRenderFrame(t *testing.T) {
	header := RenderHeader("T", "", 80)
	footer := RenderFooter(nil, 80)
	out := RenderFrame(header, "body", footer, 80, 24)
	assert.Equal(t, 24, strings.Count(out, "\n")+1)
	assert.Contains(t, out, "body")
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
	assert.Contains(t, RenderMinSizeMessage(40, 10), "40 x 10")
}
