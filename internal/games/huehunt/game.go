// Package huehunt implements Hue Hunt: find the one cell whose color differs
// before the countdown runs out. Each hit grows the grid and lowers the
// contrast, each miss drops a stage.
package huehunt

import (
	"time"

	"github.com/vovakirdan/hue-hunt/internal/config"
	"github.com/vovakirdan/hue-hunt/internal/core"
	"github.com/vovakirdan/hue-hunt/internal/registry"
)

// GameID is the registry key for Hue Hunt.
const GameID = "huehunt"

// Game adapts the controller to the game platform: it turns platform
// input into controller calls, drives the scheduler from platform ticks and
// draws the view state.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.HueHuntConfig
	override *config.HueHuntConfig // bypasses file loading when set
	preset   *config.DifficultyPreset

	sched *core.Scheduler
	ctrl  *Controller
	view  *view

	frame    int64
	row, col int // cursor
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a Hue Hunt game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.HueHuntConfig) *Game {
	return &Game{override: &cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

var _ registry.Tunable = (*Game)(nil)

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hue Hunt"
}

// Reset discards any round in progress and shows the start prompt.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.sched = core.NewScheduler()
	g.view = &view{}
	g.ctrl = NewController(g.cfg, NewGenerator(g.cfg, runtime.Seed), g.sched, g.view)
	g.frame = 0
	g.row, g.col = 0, 0
}

func (g *Game) loadConfig() config.HueHuntConfig {
	if g.override != nil {
		cfg := *g.override
		if g.preset != nil {
			config.ApplyHueHuntPreset(&cfg, *g.preset)
		}
		return cfg
	}

	cfg, err := config.LoadHueHunt(configPath)
	if err != nil {
		cfg = config.DefaultHueHuntConfig()
	}
	if g.preset != nil {
		config.ApplyHueHuntPreset(&cfg, *g.preset)
	}
	return cfg
}

// Difficulties lists the presets offered in the menu.
func (g *Game) Difficulties() []string {
	return []string{
		string(config.DifficultyEasy),
		string(config.DifficultyNormal),
		string(config.DifficultyHard),
	}
}

// SetDifficulty selects a preset for this game. It takes effect on the
// next Reset.
func (g *Game) SetDifficulty(name string) error {
	p, err := config.ParseDifficultyPreset(name)
	if err != nil {
		return err
	}
	g.preset = &p
	return nil
}

// Difficulty names the preset in effect; normal when none was chosen.
func (g *Game) Difficulty() string {
	if g.preset == nil || *g.preset == "" {
		return string(config.DifficultyNormal)
	}
	return string(*g.preset)
}

// Resize adapts the board to a new terminal size without touching the round.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// Step handles the input collected since the last tick, then advances the
// scheduler clock by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.view.screen.Kind {
	case ScreenStartPrompt:
		if in.Has(core.ActionSelect) || in.Has(core.ActionClick) {
			g.ctrl.Start()
			g.row, g.col = 0, 0
		}
	case ScreenPlaying:
		g.handlePlayInput(in)
	case ScreenEnded:
		if in.Has(core.ActionRestart) {
			g.ctrl.Restart()
			g.row, g.col = 0, 0
		}
	}

	// Scheduler time is derived from the frame count so per-tick rounding
	// never accumulates.
	g.frame++
	rate := time.Duration(g.runtime.EffectiveTickRate())
	g.sched.AdvanceTo(time.Duration(g.frame) * time.Second / rate)

	return core.StepResult{State: g.State()}
}

func (g *Game) handlePlayInput(in core.InputFrame) {
	n := g.ctrl.Layout().GridSize

	if in.Has(core.ActionUp) {
		g.row = core.Wrap(g.row-1, n)
	}
	if in.Has(core.ActionDown) {
		g.row = core.Wrap(g.row+1, n)
	}
	if in.Has(core.ActionLeft) {
		g.col = core.Wrap(g.col-1, n)
	}
	if in.Has(core.ActionRight) {
		g.col = core.Wrap(g.col+1, n)
	}

	if in.Has(core.ActionClick) {
		geo, ok := computeGeometry(g.runtime.ScreenW, g.runtime.ScreenH, n)
		if !ok {
			return
		}
		idx, hit := geo.IndexAt(in.Pointer.X, in.Pointer.Y)
		if !hit {
			return
		}
		g.row, g.col = idx/n, idx%n
		g.selectCursor()
		return
	}

	if in.Has(core.ActionSelect) {
		g.selectCursor()
	}
}

// selectCursor picks the cell under the cursor, then keeps the cursor on
// the board in case the grid shrank.
func (g *Game) selectCursor() {
	n := g.ctrl.Layout().GridSize
	g.ctrl.SelectCell(g.row*n + g.col)

	n = g.ctrl.Layout().GridSize
	g.row = min(g.row, n-1)
	g.col = min(g.col, n-1)
}

// Cursor returns the cell index under the cursor on the live layout.
func (g *Game) Cursor() int {
	return g.row*g.ctrl.Layout().GridSize + g.col
}

// Controller exposes the round controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// State reports the current stage as the score. The round counts as over
// once the countdown hits zero and as paused while the start prompt shows.
func (g *Game) State() core.GameState {
	st := g.ctrl.State()
	return core.GameState{
		Score:    st.Stage,
		GameOver: st.Status == StatusEnded,
		Paused:   st.Status == StatusIdle,
	}
}
