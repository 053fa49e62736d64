package huehunt

import (
	"fmt"
	"time"

	"github.com/vovakirdan/hue-hunt/internal/config"
	"github.com/vovakirdan/hue-hunt/internal/core"
)

// Status is the round lifecycle: Idle -> Running -> Ended -> Running.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusEnded
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState is the controller's view of a round.
type GameState struct {
	Status           Status
	RemainingSeconds int
	Stage            int
}

// Outcome is the result of a cell selection.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // no round running
	OutcomeHit
	OutcomeMiss
)

// Scheduler runs callbacks later on the controller's goroutine.
// *core.Scheduler satisfies it.
type Scheduler interface {
	Every(interval time.Duration, fn func()) *core.Timer
	After(delay time.Duration, fn func()) *core.Timer
}

// Controller owns the countdown, the stage and the live layout.
// All mutation goes through Start, Tick, SelectCell and Restart, and all of
// them must be called from the same goroutine that drives the Scheduler.
type Controller struct {
	cfg   config.HueHuntConfig
	gen   *Generator
	sched Scheduler
	view  Renderer

	state  GameState
	layout StageLayout
	ticker *core.Timer
	shake  *core.Timer

	shaking   bool
	hits      int
	misses    int
	peakStage int
}

// NewController creates an idle controller and shows the start prompt.
func NewController(cfg config.HueHuntConfig, gen *Generator, sched Scheduler, view Renderer) *Controller {
	c := &Controller{
		cfg:   cfg,
		gen:   gen,
		sched: sched,
		view:  view,
		state: GameState{Status: StatusIdle, RemainingSeconds: cfg.Round.Seconds, Stage: 1},
	}
	view.RenderScreen(ScreenState{Kind: ScreenStartPrompt})
	return c
}

// Start begins a fresh round. Any tick or shake timer left from an earlier
// round is stopped first so it can never touch the new state.
func (c *Controller) Start() {
	c.stopTimers()

	c.state = GameState{
		Status:           StatusRunning,
		RemainingSeconds: c.cfg.Round.Seconds,
		Stage:            1,
	}
	c.hits, c.misses, c.peakStage = 0, 0, 1

	c.view.RenderScreen(ScreenState{Kind: ScreenPlaying})
	c.regenerate()
	c.view.RenderInfo(c.state.RemainingSeconds, c.state.Stage)

	c.ticker = c.sched.Every(c.cfg.TickInterval(), c.Tick)
}

// Restart is Start after a round has ended.
func (c *Controller) Restart() {
	c.Start()
}

// Tick advances the countdown by one step. It does nothing unless running.
func (c *Controller) Tick() {
	if c.state.Status != StatusRunning {
		return
	}

	c.state.RemainingSeconds--
	if c.state.RemainingSeconds <= 0 {
		c.state.RemainingSeconds = 0
		c.view.RenderInfo(c.state.RemainingSeconds, c.state.Stage)
		c.end()
		return
	}
	c.view.RenderInfo(c.state.RemainingSeconds, c.state.Stage)
}

func (c *Controller) end() {
	c.state.Status = StatusEnded
	c.stopTimers()
	c.view.RenderScreen(ScreenState{Kind: ScreenEnded, FinalStage: c.state.Stage})
}

// SelectCell reports that the player picked the cell at index on the live
// layout. Selections outside a running round are ignored. An index outside
// the live layout is a caller bug and panics.
func (c *Controller) SelectCell(index int) Outcome {
	if c.state.Status != StatusRunning {
		return OutcomeIgnored
	}
	if index < 0 || index >= c.layout.CellCount() {
		panic(fmt.Sprintf("huehunt: cell index %d outside [0, %d)", index, c.layout.CellCount()))
	}

	if index == c.layout.OddIndex {
		c.hits++
		c.state.Stage++
		c.peakStage = max(c.peakStage, c.state.Stage)
		c.regenerate()
		c.view.RenderInfo(c.state.RemainingSeconds, c.state.Stage)
		return OutcomeHit
	}

	c.misses++
	c.state.Stage = max(1, c.state.Stage-1)
	c.regenerate()
	c.view.RenderInfo(c.state.RemainingSeconds, c.state.Stage)
	c.triggerShake()
	return OutcomeMiss
}

// triggerShake turns the cue on and re-arms its clear timer, so rapid
// misses coalesce into one cue that ends after the last of them.
func (c *Controller) triggerShake() {
	c.shake.Stop()
	c.shaking = true
	c.view.TriggerShakeCue()
	c.shake = c.sched.After(c.cfg.ShakeDuration(), func() {
		c.shake = nil
		c.shaking = false
		c.view.ClearShakeCue()
	})
}

func (c *Controller) regenerate() {
	c.layout = c.gen.Generate(c.state.Stage)
	c.view.RenderLayout(c.layout)
}

// stopTimers cancels the countdown and any pending shake clear. A cue
// that was on is cleared right away.
func (c *Controller) stopTimers() {
	c.ticker.Stop()
	c.ticker = nil
	c.shake.Stop()
	c.shake = nil
	if c.shaking {
		c.shaking = false
		c.view.ClearShakeCue()
	}
}

// State returns the current round state.
func (c *Controller) State() GameState {
	return c.state
}

// Layout returns the live layout. It is empty before the first Start.
func (c *Controller) Layout() StageLayout {
	return c.layout
}

// Shaking reports whether the shake cue is on.
func (c *Controller) Shaking() bool {
	return c.shaking
}

// Hits returns correct selections this round.
func (c *Controller) Hits() int {
	return c.hits
}

// Misses returns wrong selections this round.
func (c *Controller) Misses() int {
	return c.misses
}

// PeakStage returns the highest stage reached this round.
func (c *Controller) PeakStage() int {
	return c.peakStage
}
