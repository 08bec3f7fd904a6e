package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleShip     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFlame    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleAsteroid = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleParticle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// hudRows is how many rows at the top are kept for the status line.
const hudRows = 1

// shipGlyphs point right, down, left, up; screen y grows downwards.
var shipGlyphs = [4]rune{'>', 'v', '<', '^'}

// Projection maps world coordinates onto terminal cells below the HUD.
type Projection struct {
	Cols, Rows     int // playfield cells
	WorldW, WorldH float64
}

// NewProjection fits a world of w×h into a screen of cols×rows cells.
func NewProjection(cols, rows int, w, h float64) Projection {
	return Projection{Cols: cols, Rows: max(rows-hudRows, 0), WorldW: w, WorldH: h}
}

// Cell returns the screen cell for p. ok is false when the projection has
// no playfield.
func (pr Projection) Cell(p game.Vec2) (x, y int, ok bool) {
	if pr.Cols <= 0 || pr.Rows <= 0 || pr.WorldW <= 0 || pr.WorldH <= 0 {
		return 0, 0, false
	}
	x = clampCell(int(p.X/pr.WorldW*float64(pr.Cols)), pr.Cols)
	y = clampCell(int(p.Y/pr.WorldH*float64(pr.Rows)), pr.Rows) + hudRows
	return x, y, true
}

func clampCell(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

// shipGlyph picks the arrow closest to facing.
func shipGlyph(facing float64) rune {
	q := int(math.Round(facing/(math.Pi/2))) % 4
	if q < 0 {
		q += 4
	}
	return shipGlyphs[q]
}

// Render draws one frame of snap onto screen. The caller calls Show.
func Render(screen tcell.Screen, snap game.WorldSnapshot, status string) {
	screen.Clear()
	cols, rows := screen.Size()
	pr := NewProjection(cols, rows, snap.Width, snap.Height)

	put := func(p game.Vec2, r rune, style tcell.Style) {
		if x, y, ok := pr.Cell(p); ok {
			screen.SetContent(x, y, r, nil, style)
		}
	}

	for _, a := range snap.Asteroids {
		for _, pt := range a.Outline {
			put(pt, '*', styleAsteroid)
		}
	}
	for _, pt := range snap.Particles {
		put(pt.Pos, '.', styleParticle)
	}
	for _, s := range snap.Ships {
		if s.Boosting {
			put(s.State.Pos.Add(s.State.Pos.Sub(s.Hull[0])), '~', styleFlame)
		}
		put(s.State.Pos, shipGlyph(s.State.Facing), styleShip)
	}

	drawString(screen, 0, 0, hudLine(snap, status), styleHUD)
	if snap.State == game.RoundPaused {
		drawCentred(screen, rows/2, "PAUSED  p resume  q quit", styleBanner)
	}
}

// RenderReport draws the game-over screen for report.
func RenderReport(screen tcell.Screen, report game.RoundReport) {
	screen.Clear()
	_, rows := screen.Size()
	lines := strings.Split(strings.TrimRight(report.Format(), "\n"), "\n")
	y := rows/2 - len(lines)/2 - 2
	drawCentred(screen, y, "GAME OVER", styleBanner)
	for i, line := range lines {
		drawCentred(screen, y+2+i, line, styleHUD)
	}
	drawCentred(screen, y+3+len(lines), "r new round   q quit", styleDim)
}

func hudLine(snap game.WorldSnapshot, status string) string {
	line := fmt.Sprintf("SCORE %d  T=%d  %s", snap.Score, snap.Tick, strings.ToUpper(snap.State.String()))
	if status != "" {
		line += "  " + status
	}
	return line
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentred(screen tcell.Screen, y int, s string, style tcell.Style) {
	cols, _ := screen.Size()
	drawString(screen, max((cols-len([]rune(s)))/2, 0), y, s, style)
}
