package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

var (
	colBackground = color.RGBA{R: 4, G: 4, B: 10, A: 255}
	colShip       = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	colFlame      = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	colAsteroid   = color.RGBA{R: 170, G: 160, B: 150, A: 255}
	colParticle   = color.RGBA{R: 255, G: 255, B: 120, A: 255}
	colText       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	colDim        = color.RGBA{R: 130, G: 130, B: 150, A: 255}
	colHighlight  = color.RGBA{R: 120, G: 220, B: 255, A: 255}
)

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	switch g.screen {
	case screenMenu:
		g.drawMenu(screen)
	case screenPlay:
		g.drawWorld(screen, g.round.Snapshot())
		g.drawHUD(screen)
	case screenOver:
		g.drawOver(screen)
	}
	g.feed.Draw(screen, int(g.cfg.Window.Width), int(g.cfg.Window.Height))
}

// drawText writes s with its top-left corner at (x, y).
func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = 16
	text.Draw(dst, s, g.face, op)
}

// drawCentred writes s centred horizontally on the playfield.
func (g *Game) drawCentred(dst *ebiten.Image, s string, y float64, c color.Color) {
	w, _ := text.Measure(s, g.face, 16)
	g.drawText(dst, s, (g.cfg.Window.Width-w)/2, y, c)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	mid := g.cfg.Window.Height / 2
	g.drawCentred(screen, strings.ToUpper(g.cfg.Window.Title), mid-80, colHighlight)
	g.drawCentred(screen, "Choose a pilot", mid-40, colDim)
	g.drawCentred(screen, fmt.Sprintf("<  %s  >", g.SelectedAgent()), mid, colText)
	g.drawCentred(screen, "Left/Right select   L launch", mid+50, colDim)
	g.drawCentred(screen, "W boost  A/D turn  Space fire  P pause  K menu", mid+70, colDim)
}

func (g *Game) drawOver(screen *ebiten.Image) {
	mid := g.cfg.Window.Height / 2
	g.drawCentred(screen, "GAME OVER", mid-90, colFlame)
	g.drawCentred(screen, fmt.Sprintf("Points: %d", g.report.Score), mid-60, colText)
	y := mid - 20
	for _, line := range strings.Split(strings.TrimRight(g.report.Format(), "\n"), "\n") {
		g.drawCentred(screen, line, y, colDim)
		y += 16
	}
	g.drawCentred(screen, "L play again   K menu   C copy report", y+24, colText)
	if g.status != "" {
		g.drawCentred(screen, g.status, y+44, colHighlight)
	}
}

func (g *Game) drawWorld(screen *ebiten.Image, snap game.WorldSnapshot) {
	for _, a := range snap.Asteroids {
		strokePolygon(screen, a.Outline[:], 1.5, colAsteroid)
	}
	for _, s := range snap.Ships {
		strokePolygon(screen, s.Hull[:], 1.5, colShip)
		if s.Boosting {
			// Flame between the rear vertices.
			rear := s.Hull[1].Add(s.Hull[2]).Scale(0.5)
			tail := s.State.Pos.Add(s.State.Pos.Sub(s.Hull[0]).Scale(0.6))
			vector.StrokeLine(screen, float32(rear.X), float32(rear.Y), float32(tail.X), float32(tail.Y), 2, colFlame, false)
		}
		g.drawText(screen, s.Label, s.State.Pos.X+14, s.State.Pos.Y-18, colDim)
	}
	for _, p := range snap.Particles {
		vector.DrawFilledRect(screen, float32(p.Pos.X-1), float32(p.Pos.Y-1), 3, 3, colParticle, false)
	}
}

// strokePolygon draws the closed outline through pts.
func strokePolygon(dst *ebiten.Image, pts []game.Vec2, width float32, c color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	state := "IN PLAY"
	if g.round.State() == game.RoundPaused {
		state = "PAUSED"
	}
	g.drawText(screen, fmt.Sprintf("SCORE %d", g.round.Score()), 10, 8, colText)
	g.drawText(screen, fmt.Sprintf("%s  T=%d  %s", state, g.round.Tick(), g.SelectedAgent()), 10, 26, colDim)
	if g.round.State() == game.RoundPaused {
		g.drawCentred(screen, "PAUSED  P resume  K menu", g.cfg.Window.Height/2, colHighlight)
	}
}
