package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/hue-hunt/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.FillRect(core.NewRect(0, 1, 3, 1), core.RGB{R: 10, G: 20, B: 30})

	got := RenderScreen(s)
	expected := "abcd  \n      "
	if got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenTrueColorBackground(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	s := core.NewScreen(4, 1)
	s.FillRect(core.NewRect(0, 0, 2, 1), core.RGB{R: 255, G: 0, B: 0})
	s.FillRect(core.NewRect(2, 0, 2, 1), core.RGB{R: 0, G: 0, B: 255})

	got := RenderScreen(s)
	for _, want := range []string{"48;2;255;0;0", "48;2;0;0;255"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderScreen() = %q, missing background %q", got, want)
		}
	}
}

func TestKeyOfIgnoresBackgroundWithoutFill(t *testing.T) {
	a := core.Cell{Rune: 'x', BG: core.RGB{R: 1}}
	b := core.Cell{Rune: 'y'}
	if keyOf(a) != keyOf(b) {
		t.Error("unfilled cells with different BG values should share a run")
	}
}
