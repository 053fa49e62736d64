package huehunt

import (
	"math/rand"

	"github.com/vovakirdan/hue-hunt/internal/config"
	"github.com/vovakirdan/hue-hunt/internal/core"
)

// StageLayout is one generated board. Every cell holds Base except
// Cells[OddIndex], which holds Odd.
type StageLayout struct {
	Stage    int
	GridSize int // cells per side
	Cells    []core.RGB
	OddIndex int
	Base     core.RGB
	Odd      core.RGB
	Pick     Pick
	Delta    float64 // signed lightness offset of the odd cell
}

// CellCount returns GridSize squared.
func (l StageLayout) CellCount() int {
	return l.GridSize * l.GridSize
}

// Pick holds the random draws a layout is built from.
type Pick struct {
	Hue        float64 // [0, 1)
	Saturation float64 // [0.5, 0.9) with default config
	Lightness  float64 // [0.4, 0.6) with default config
	OddIndex   int     // [0, GridSize^2)
}

// GridSize returns the board side for a stage with the default 10x10 cap.
func GridSize(stage int) int {
	return gridSize(stage, config.MaxGridSize)
}

// LightnessDiff returns the default contrast curve: 0.25 / (stage*0.5 + 1).
// It starts near 0.1667 at stage 1 and falls toward zero without reaching it.
func LightnessDiff(stage int) float64 {
	def := config.DefaultHueHuntConfig()
	return lightnessDiff(stage, def.Contrast)
}

func gridSize(stage, maxSize int) int {
	return min(maxSize, max(stage, 1)+1)
}

func lightnessDiff(stage int, c config.ContrastConfig) float64 {
	return c.Base / (float64(max(stage, 1))*c.StageFactor + 1)
}

// Layout builds the board for a stage from explicit draws. It is pure:
// the same inputs always produce the same layout. Stages below 1 are
// treated as 1 and an out-of-range odd index wraps onto the board.
func Layout(stage int, p Pick, cfg config.HueHuntConfig) StageLayout {
	stage = max(stage, 1)
	size := gridSize(stage, cfg.Grid.MaxSize)
	count := size * size

	diff := lightnessDiff(stage, cfg.Contrast)
	lOdd := p.Lightness + diff // lighter unless that washes out
	if lOdd > cfg.Color.LightnessCeiling {
		lOdd = p.Lightness - diff
	}

	base := HSLToRGB(p.Hue, p.Saturation, p.Lightness)
	odd := HSLToRGB(p.Hue, p.Saturation, lOdd)
	if odd == base {
		// Deep stages shrink the delta below one 8-bit step.
		odd = nudge(base, lOdd >= p.Lightness)
	}
	p.OddIndex = core.Wrap(p.OddIndex, count)

	cells := make([]core.RGB, count)
	for i := range cells {
		cells[i] = base
	}
	cells[p.OddIndex] = odd

	return StageLayout{
		Stage:    stage,
		GridSize: size,
		Cells:    cells,
		OddIndex: p.OddIndex,
		Base:     base,
		Odd:      odd,
		Pick:     p,
		Delta:    lOdd - p.Lightness,
	}
}

// nudge moves every channel one step lighter or darker, saturating at the ends.
func nudge(c core.RGB, lighter bool) core.RGB {
	step := func(v uint8) uint8 {
		switch {
		case lighter && v < 255:
			return v + 1
		case !lighter && v > 0:
			return v - 1
		}
		return v
	}
	return core.RGB{R: step(c.R), G: step(c.G), B: step(c.B)}
}

// Generator draws random stage layouts from a seeded source.
type Generator struct {
	cfg config.HueHuntConfig
	rng *rand.Rand
}

// NewGenerator creates a generator. The same seed yields the same sequence
// of layouts for the same sequence of stages.
func NewGenerator(cfg config.HueHuntConfig, seed int64) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate draws hue, saturation, lightness and the odd index, in that
// order, and builds the layout for the stage.
func (g *Generator) Generate(stage int) StageLayout {
	size := gridSize(stage, g.cfg.Grid.MaxSize)
	c := g.cfg.Color

	p := Pick{
		Hue:        g.rng.Float64(),
		Saturation: c.SaturationMin + g.rng.Float64()*c.SaturationSpan,
		Lightness:  c.LightnessMin + g.rng.Float64()*c.LightnessSpan,
	}
	p.OddIndex = g.rng.Intn(size * size)

	return Layout(stage, p, g.cfg)
}
