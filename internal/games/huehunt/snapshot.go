package huehunt

// Snapshot captures the observable game state for tests and replays.
type Snapshot struct {
	Tick      int64
	Status    Status
	Screen    ScreenKind
	Stage     int
	Remaining int
	GridSize  int
	OddIndex  int
	Cursor    int
	Shaking   bool
	Hits      int
	Misses    int
	Contrast  float64 // CIEDE2000 distance between base and odd color
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.ctrl.State()
	layout := g.ctrl.Layout()

	snap := Snapshot{
		Tick:      g.frame,
		Status:    st.Status,
		Screen:    g.view.screen.Kind,
		Stage:     st.Stage,
		Remaining: st.RemainingSeconds,
		GridSize:  layout.GridSize,
		OddIndex:  layout.OddIndex,
		Shaking:   g.ctrl.Shaking(),
		Hits:      g.ctrl.Hits(),
		Misses:    g.ctrl.Misses(),
	}
	if layout.CellCount() > 0 {
		snap.Cursor = g.Cursor()
		snap.Contrast = Contrast(layout.Base, layout.Odd)
	}
	return snap
}
