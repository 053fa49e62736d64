package huehunt

import (
	"fmt"

	"github.com/vovakirdan/hue-hunt/internal/core"
)

// Screen layout: one HUD row on top, one footer row at the bottom and a
// one-cell border around the board.
const (
	hudRows    = 1
	footerRows = 1
	borderSize = 1
)

// shakePattern is the horizontal border offset per frame while the shake
// cue is on.
var shakePattern = [...]int{-1, 0, 1, 0}

// boardGeometry places the grid cells on screen.
type boardGeometry struct {
	Size         int // cells per side
	Origin       core.Point
	CellW, CellH int
	GapX, GapY   int
}

// computeGeometry fits a size x size board into the screen. Cells are twice
// as wide as they are tall so they look square in a terminal. Returns false
// when even 2x1 cells do not fit.
func computeGeometry(screenW, screenH, size int) (boardGeometry, bool) {
	if size <= 0 {
		return boardGeometry{}, false
	}
	availW := screenW - 2*borderSize
	availH := screenH - hudRows - footerRows - 2*borderSize

	geo := boardGeometry{Size: size, GapX: 1}
	maxW := (availW - (size-1)*geo.GapX) / size

	// Prefer a one-row gap between rows; drop it on short terminals.
	for _, gapY := range []int{1, 0} {
		cellH := min((availH-(size-1)*gapY)/size, maxW/2)
		if cellH >= 1 {
			geo.GapY = gapY
			geo.CellH = cellH
			geo.CellW = cellH * 2
			break
		}
	}
	if geo.CellH == 0 {
		return boardGeometry{}, false
	}

	bounds := geo.Bounds()
	geo.Origin = core.Point{
		X: (screenW - bounds.W) / 2,
		Y: hudRows + borderSize + (availH-bounds.H)/2,
	}
	return geo, true
}

// Bounds returns the board area, gaps included.
func (b boardGeometry) Bounds() core.Rect {
	w := b.Size*b.CellW + (b.Size-1)*b.GapX
	h := b.Size*b.CellH + (b.Size-1)*b.GapY
	return core.NewRect(b.Origin.X, b.Origin.Y, w, h)
}

// CellRect returns the screen area of cell i (row-major).
func (b boardGeometry) CellRect(i int) core.Rect {
	row, col := i/b.Size, i%b.Size
	return core.NewRect(
		b.Origin.X+col*(b.CellW+b.GapX),
		b.Origin.Y+row*(b.CellH+b.GapY),
		b.CellW,
		b.CellH,
	)
}

// IndexAt returns the cell under screen position (x, y). Gaps and
// positions off the board return false.
func (b boardGeometry) IndexAt(x, y int) (int, bool) {
	if !b.Bounds().Contains(x, y) {
		return 0, false
	}
	for i := 0; i < b.Size*b.Size; i++ {
		if b.CellRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the current view state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.view.screen.Kind {
	case ScreenStartPrompt:
		g.renderStart(dst)
	case ScreenPlaying:
		g.renderPlaying(dst)
	case ScreenEnded:
		g.renderEnded(dst)
	}
}

func (g *Game) renderStart(dst *core.Screen) {
	y := max(dst.Height()/2-6, 0)

	dst.DrawTextCentered(y, "H U E   H U N T", core.ColorCyan)
	g.renderHueStrip(dst, y+2)

	lines := []string{
		"Find the one cell whose color is different.",
		fmt.Sprintf("You have %d seconds.", g.cfg.Round.Seconds),
		"Every hit grows the grid and lowers the contrast.",
		"Every miss drops you a stage.",
	}
	for i, line := range lines {
		dst.DrawTextCentered(y+4+i, line, core.ColorDefault)
	}

	dst.DrawTextCentered(y+9, "Enter/Space: Start  |  Q: Quit", core.ColorGray)
}

// renderHueStrip draws a row of swatches around the hue wheel.
func (g *Game) renderHueStrip(dst *core.Screen, y int) {
	const swatches = 12
	const width = 3
	x := (dst.Width() - swatches*width) / 2
	for i := 0; i < swatches; i++ {
		c := HSLToRGB(float64(i)/swatches, 0.7, 0.5)
		dst.FillRect(core.NewRect(x+i*width, y, width, 1), c)
	}
}

func (g *Game) renderPlaying(dst *core.Screen) {
	layout := g.view.layout
	g.renderHUD(dst)

	geo, ok := computeGeometry(dst.Width(), dst.Height(), layout.GridSize)
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	// Border jitters while the shake cue is on; cells stay put so clicks
	// always land where the player sees them.
	border := geo.Bounds()
	border = core.NewRect(border.X-borderSize, border.Y-borderSize, border.W+2*borderSize, border.H+2*borderSize)
	borderColor := core.ColorGray
	if g.view.shaking {
		border.X += shakePattern[g.frame%int64(len(shakePattern))]
		borderColor = core.ColorRed
	}
	dst.DrawBox(border, borderColor)

	for i, c := range layout.Cells {
		dst.FillRect(geo.CellRect(i), c)
	}

	g.renderCursor(dst, geo)

	footer := "Arrows/hjkl: Move  |  Enter/Space/Click: Pick  |  Q: Quit"
	dst.DrawTextCentered(dst.Height()-1, footer, core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, "HUE HUNT")

	stage := fmt.Sprintf("Stage %d", g.view.stage)
	dst.DrawTextCentered(0, stage, core.ColorBrightWhite)

	timeColor := core.ColorGreen
	switch {
	case g.view.remaining <= 10:
		timeColor = core.ColorRed
	case g.view.remaining <= 20:
		timeColor = core.ColorYellow
	}
	timer := fmt.Sprintf("Time %2ds", g.view.remaining)
	dst.DrawTextColored(dst.Width()-len(timer)-1, 0, timer, timeColor)
}

// renderCursor marks the cursor cell with brackets in a color that stays
// readable on top of the cell.
func (g *Game) renderCursor(dst *core.Screen, geo boardGeometry) {
	idx := g.row*geo.Size + g.col
	if idx < 0 || idx >= len(g.view.layout.Cells) {
		return
	}
	r := geo.CellRect(idx)
	mark := core.ColorBlack
	if g.view.layout.Cells[idx].Luma() < 128 {
		mark = core.ColorBrightWhite
	}

	y := r.Y + r.H/2
	if r.W <= 2 {
		dst.SetColored(r.X, y, '<', mark)
		dst.SetColored(r.X+1, y, '>', mark)
		return
	}
	dst.SetColored(r.X, y, '[', mark)
	dst.SetColored(r.Right()-1, y, ']', mark)
}

func (g *Game) renderEnded(dst *core.Screen) {
	y := max(dst.Height()/2-5, 0)
	layout := g.view.layout

	dst.DrawTextCentered(y, "TIME'S UP", core.ColorYellow)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Final stage: %d", g.view.screen.FinalStage), core.ColorBrightWhite)

	stats := fmt.Sprintf("Peak stage: %d  |  Hits: %d  |  Misses: %d",
		g.ctrl.PeakStage(), g.ctrl.Hits(), g.ctrl.Misses())
	dst.DrawTextCentered(y+4, stats, core.ColorDefault)

	if layout.CellCount() > 0 {
		last := fmt.Sprintf("Last board: %dx%d, contrast %.3f", layout.GridSize, layout.GridSize, Contrast(layout.Base, layout.Odd))
		dst.DrawTextCentered(y+5, last, core.ColorGray)
	}

	dst.DrawTextCentered(y+8, "R: Play again  |  B/Esc: Menu  |  Q: Quit", core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}
