package huehunt

// ScreenKind identifies which screen the renderer shows.
type ScreenKind int

const (
	ScreenStartPrompt ScreenKind = iota
	ScreenPlaying
	ScreenEnded
)

// String returns a human-readable name for the screen.
func (k ScreenKind) String() string {
	switch k {
	case ScreenStartPrompt:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ScreenState is the screen to show. FinalStage is set for ScreenEnded.
type ScreenState struct {
	Kind       ScreenKind
	FinalStage int
}

// Renderer receives everything the controller wants drawn.
// Calls happen on the controller's goroutine and must not block.
type Renderer interface {
	RenderLayout(layout StageLayout)
	RenderInfo(remainingSeconds, stage int)
	RenderScreen(screen ScreenState)
	TriggerShakeCue()
	ClearShakeCue()
}

// view is the Renderer the game draws from. It only records what it is
// told; Game.Render turns it into screen cells.
type view struct {
	screen    ScreenState
	layout    StageLayout
	remaining int
	stage     int
	shaking   bool
	shakes    int // cues triggered since the last start
}

var _ Renderer = (*view)(nil)

func (v *view) RenderLayout(layout StageLayout) {
	v.layout = layout
}

func (v *view) RenderInfo(remainingSeconds, stage int) {
	v.remaining = remainingSeconds
	v.stage = stage
}

func (v *view) RenderScreen(screen ScreenState) {
	if screen.Kind == ScreenPlaying && v.screen.Kind != ScreenPlaying {
		v.shakes = 0
	}
	v.screen = screen
}

func (v *view) TriggerShakeCue() {
	v.shaking = true
	v.shakes++
}

func (v *view) ClearShakeCue() {
	v.shaking = false
}
