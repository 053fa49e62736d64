package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/hue-hunt/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlack:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
}

// runKey identifies cells that can share one styled run.
type runKey struct {
	fg   core.Color
	bg   core.RGB
	fill bool
}

func keyOf(c core.Cell) runKey {
	k := runKey{fg: c.Color, fill: c.Fill}
	if c.Fill {
		k.bg = c.BG
	}
	return k
}

// styleFor returns the style of a run, caching truecolor backgrounds for
// the duration of one render.
func styleFor(k runKey, cache map[runKey]lipgloss.Style) lipgloss.Style {
	if s, ok := cache[k]; ok {
		return s
	}
	style, ok := colorStyles[k.fg]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	if k.fill {
		style = style.Background(backgroundColor(k.bg))
	}
	cache[k] = style
	return style
}

func backgroundColor(c core.RGB) lipgloss.Color {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return lipgloss.Color(cf.Hex())
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	cache := make(map[runKey]lipgloss.Style)

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start, cache).Render(run.String()))
		}
	}
	return sb.String()
}
