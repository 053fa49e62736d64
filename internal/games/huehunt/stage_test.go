package huehunt

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/hue-hunt/internal/config"
)

func TestGridSize(t *testing.T) {
	tests := []struct {
		stage, expected int
	}{
		{1, 2},
		{2, 3},
		{5, 6},
		{9, 10},
		{10, 10},
		{250, 10},
		{0, 2}, // below range is treated as stage 1
	}

	for _, tc := range tests {
		if got := GridSize(tc.stage); got != tc.expected {
			t.Errorf("GridSize(%d) = %d, expected %d", tc.stage, got, tc.expected)
		}
	}

	prev := GridSize(1)
	for stage := 2; stage <= 100; stage++ {
		cur := GridSize(stage)
		if cur < prev || cur > 10 {
			t.Fatalf("GridSize(%d) = %d after %d: must be non-decreasing and capped at 10", stage, cur, prev)
		}
		prev = cur
	}
}

func TestLightnessDiff(t *testing.T) {
	if got := LightnessDiff(1); math.Abs(got-0.25/1.5) > 1e-12 {
		t.Errorf("LightnessDiff(1) = %v, expected ~0.1667", got)
	}
	if got := LightnessDiff(3); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("LightnessDiff(3) = %v, expected 0.1", got)
	}

	prev := LightnessDiff(1)
	for stage := 2; stage <= 1000; stage++ {
		cur := LightnessDiff(stage)
		if cur >= prev {
			t.Fatalf("LightnessDiff(%d) = %v, not below LightnessDiff(%d) = %v", stage, cur, stage-1, prev)
		}
		if cur <= 0 {
			t.Fatalf("LightnessDiff(%d) = %v, expected > 0", stage, cur)
		}
		prev = cur
	}
}

// assertOneOdd checks the layout invariant: every cell is Base except
// Cells[OddIndex], which is Odd, and Odd differs from Base.
func assertOneOdd(t *testing.T, l StageLayout) {
	t.Helper()

	if len(l.Cells) != l.GridSize*l.GridSize {
		t.Fatalf("stage %d: %d cells, expected %d", l.Stage, len(l.Cells), l.GridSize*l.GridSize)
	}
	if l.OddIndex < 0 || l.OddIndex >= len(l.Cells) {
		t.Fatalf("stage %d: OddIndex %d out of range", l.Stage, l.OddIndex)
	}
	if l.Base == l.Odd {
		t.Fatalf("stage %d: base and odd colors are identical (%v)", l.Stage, l.Base)
	}

	differing := 0
	for i, c := range l.Cells {
		if c == l.Base {
			continue
		}
		differing++
		if i != l.OddIndex || c != l.Odd {
			t.Fatalf("stage %d: unexpected color %v at %d (odd index %d)", l.Stage, c, i, l.OddIndex)
		}
	}
	if differing != 1 {
		t.Fatalf("stage %d: %d differing cells, expected 1", l.Stage, differing)
	}
}

func TestGenerateExactlyOneOddCell(t *testing.T) {
	gen := NewGenerator(config.DefaultHueHuntConfig(), 42)

	for stage := 1; stage <= 400; stage++ {
		l := gen.Generate(stage)
		if l.GridSize != GridSize(stage) {
			t.Fatalf("Generate(%d).GridSize = %d, expected %d", stage, l.GridSize, GridSize(stage))
		}
		assertOneOdd(t, l)
	}
}

func TestGenerateDrawRanges(t *testing.T) {
	gen := NewGenerator(config.DefaultHueHuntConfig(), 7)
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		l := gen.Generate(1)
		p := l.Pick
		if p.Hue < 0 || p.Hue >= 1 {
			t.Fatalf("hue %v outside [0, 1)", p.Hue)
		}
		if p.Saturation < 0.5 || p.Saturation >= 0.9 {
			t.Fatalf("saturation %v outside [0.5, 0.9)", p.Saturation)
		}
		if p.Lightness < 0.4 || p.Lightness >= 0.6 {
			t.Fatalf("lightness %v outside [0.4, 0.6)", p.Lightness)
		}
		seen[l.OddIndex] = true
	}

	// Stage 1 is a 2x2 board; every position should come up.
	if len(seen) != 4 {
		t.Errorf("odd index hit %d of 4 positions", len(seen))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.DefaultHueHuntConfig()
	g1 := NewGenerator(cfg, 12345)
	g2 := NewGenerator(cfg, 12345)

	for _, stage := range []int{1, 2, 1, 5, 9, 12} {
		a, b := g1.Generate(stage), g2.Generate(stage)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("stage %d: layouts differ for the same seed", stage)
		}
	}
}

func TestLayoutLighterByDefault(t *testing.T) {
	p := Pick{Hue: 0.3, Saturation: 0.7, Lightness: 0.5, OddIndex: 2}
	l := Layout(1, p, config.DefaultHueHuntConfig())

	if math.Abs(l.Delta-LightnessDiff(1)) > 1e-12 {
		t.Errorf("Delta = %v, expected +%v", l.Delta, LightnessDiff(1))
	}
	if l.Odd != HSLToRGB(0.3, 0.7, 0.5+LightnessDiff(1)) {
		t.Errorf("Odd = %v, expected the lighter variant", l.Odd)
	}
	if l.Base != HSLToRGB(0.3, 0.7, 0.5) {
		t.Errorf("Base = %v, expected HSLToRGB(0.3, 0.7, 0.5)", l.Base)
	}
	if l.OddIndex != 2 || l.Cells[2] != l.Odd {
		t.Errorf("odd cell not at index 2")
	}
	assertOneOdd(t, l)
}

func TestLayoutFlipsDarkerNearWhite(t *testing.T) {
	cfg := config.DefaultHueHuntConfig()
	cfg.Color.LightnessCeiling = 0.7

	p := Pick{Hue: 0.6, Saturation: 0.8, Lightness: 0.59}
	l := Layout(1, p, cfg)

	diff := LightnessDiff(1)
	if math.Abs(l.Delta+diff) > 1e-12 {
		t.Errorf("Delta = %v, expected -%v", l.Delta, diff)
	}
	if l.Odd != HSLToRGB(0.6, 0.8, 0.59-diff) {
		t.Errorf("Odd = %v, expected the darker variant", l.Odd)
	}
	assertOneOdd(t, l)
}

func TestLayoutIsPure(t *testing.T) {
	cfg := config.DefaultHueHuntConfig()
	p := Pick{Hue: 0.11, Saturation: 0.66, Lightness: 0.44, OddIndex: 17}

	a := Layout(6, p, cfg)
	b := Layout(6, p, cfg)
	if !reflect.DeepEqual(a, b) {
		t.Error("Layout() should return identical results for identical input")
	}
}

func TestLayoutEdgeInputs(t *testing.T) {
	cfg := config.DefaultHueHuntConfig()

	l := Layout(0, Pick{Hue: 0.5, Saturation: 0.6, Lightness: 0.5}, cfg)
	if l.Stage != 1 || l.GridSize != 2 {
		t.Errorf("Layout(0) = stage %d grid %d, expected stage 1 grid 2", l.Stage, l.GridSize)
	}

	l = Layout(2, Pick{Hue: 0.5, Saturation: 0.6, Lightness: 0.5, OddIndex: 10}, cfg)
	if l.OddIndex != 1 {
		t.Errorf("OddIndex 10 on a 3x3 board wrapped to %d, expected 1", l.OddIndex)
	}
	assertOneOdd(t, l)
}

func TestLayoutDeepStageStillDistinct(t *testing.T) {
	// At very deep stages the lightness delta is smaller than one 8-bit
	// step; the odd cell must still differ.
	cfg := config.DefaultHueHuntConfig()
	for _, stage := range []int{500, 5000, 50000} {
		l := Layout(stage, Pick{Hue: 0.42, Saturation: 0.55, Lightness: 0.47}, cfg)
		assertOneOdd(t, l)
	}
}

func TestLayoutCustomGridCap(t *testing.T) {
	cfg := config.DefaultHueHuntConfig()
	cfg.Grid.MaxSize = 4

	l := Layout(20, Pick{Hue: 0.2, Saturation: 0.6, Lightness: 0.5}, cfg)
	if l.GridSize != 4 {
		t.Errorf("GridSize = %d, expected the configured cap of 4", l.GridSize)
	}
}
