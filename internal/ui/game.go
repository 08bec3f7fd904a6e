// Package ui is the ebiten window frontend: an agent menu, the live round
// and a game-over screen.
package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Asteroid-Sense/internal/agents"
	"github.com/Garsondee/Asteroid-Sense/internal/config"
	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

// screen is which view the window is showing.
type screen int

const (
	screenMenu screen = iota
	screenPlay
	screenOver
)

func (s screen) String() string {
	switch s {
	case screenMenu:
		return "menu"
	case screenPlay:
		return "play"
	case screenOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game implements ebiten.Game.
type Game struct {
	cfg      *config.Config
	registry *agents.Registry
	names    []string
	selected int
	screen   screen

	round   *game.Round
	human   *agents.Human // nil unless the selected agent is human
	logSeen int           // round log entries already copied to the feed
	report  game.RoundReport
	status  string // one-line notice on the game-over screen

	feed   *EventFeed
	keys   *keyTracker
	face   *text.GoXFace
	logger *zap.Logger

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error
}

// New builds the window frontend starting at the agent menu.
func New(cfg *config.Config, registry *agents.Registry, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		cfg:      cfg,
		registry: registry,
		names:    registry.Names(),
		feed:     NewEventFeed(),
		keys:     newKeyTracker(),
		face:     text.NewGoXFace(basicfont.Face7x13),
		logger:   logger.Named("ui"),
		copyText: clipboard.WriteAll,
	}
	// Start on the reactive agent when it is registered.
	for i, n := range g.names {
		if n == agents.NameReactive {
			g.selected = i
		}
	}
	return g
}

// SelectedAgent is the agent name highlighted in the menu.
func (g *Game) SelectedAgent() string {
	if len(g.names) == 0 {
		return ""
	}
	return g.names[g.selected]
}

// cycle moves the menu selection by delta, wrapping at both ends.
func (g *Game) cycle(delta int) {
	n := len(g.names)
	if n == 0 {
		return
	}
	g.selected = ((g.selected+delta)%n + n) % n
}

// launch starts a round flown by the selected agent.
func (g *Game) launch() error {
	name := g.SelectedAgent()
	a, err := g.registry.New(name)
	if err != nil {
		return err
	}
	g.human, _ = a.(*agents.Human)
	opts := append(g.cfg.RoundOptions(),
		game.WithLogger(g.logger),
		game.WithAgent(name, a),
	)
	g.round = game.NewRound(opts...)
	g.logSeen = 0
	g.status = ""
	g.feed.Reset()
	g.screen = screenPlay
	g.pumpLog()
	g.logger.Info("launching round", zap.String("agent", name), zap.String("round", g.round.ID().String()))
	return nil
}

// toMenu abandons any round and returns to agent selection.
func (g *Game) toMenu() {
	g.round = nil
	g.human = nil
	g.screen = screenMenu
}

// advance runs one frame of the current screen's simulation.
func (g *Game) advance() {
	if g.screen != screenPlay || g.round == nil {
		return
	}
	g.round.Step()
	g.pumpLog()
	if g.round.State() == game.RoundOver {
		g.report = g.round.Report()
		g.screen = screenOver
		g.logger.Info("round finished", zap.String("report", g.report.String()))
	}
}

// pumpLog copies new round log entries into the feed.
func (g *Game) pumpLog() {
	entries := g.round.Log().Entries()
	for _, e := range entries[g.logSeen:] {
		g.feed.AddLogEntry(e)
	}
	g.logSeen = len(entries)
}

// copyReport puts the last round's report on the clipboard.
func (g *Game) copyReport() {
	if err := g.copyText(g.report.Format()); err != nil {
		g.status = "copy failed: " + err.Error()
		g.logger.Warn("clipboard copy failed", zap.Error(err))
		return
	}
	g.status = "report copied to clipboard"
}

// Update handles input then advances the round one tick.
func (g *Game) Update() error {
	g.keys.update(ebiten.IsKeyPressed)
	if err := g.handleInput(); err != nil {
		return err
	}
	g.advance()
	return nil
}

func (g *Game) handleInput() error {
	switch g.screen {
	case screenMenu:
		if g.keys.pressed(ebiten.KeyArrowLeft) {
			g.cycle(-1)
		}
		if g.keys.pressed(ebiten.KeyArrowRight) {
			g.cycle(1)
		}
		if g.keys.pressed(ebiten.KeyL) {
			if err := g.launch(); err != nil {
				return fmt.Errorf("launch %s: %w", g.SelectedAgent(), err)
			}
		}
	case screenPlay:
		g.keys.forwardControls(g.human)
		if g.keys.pressed(ebiten.KeyP) {
			g.round.TogglePause()
		}
		if g.keys.pressed(ebiten.KeyK) {
			g.toMenu()
		}
	case screenOver:
		if g.keys.pressed(ebiten.KeyC) {
			g.copyReport()
		}
		if g.keys.pressed(ebiten.KeyL) {
			if err := g.launch(); err != nil {
				return fmt.Errorf("relaunch %s: %w", g.SelectedAgent(), err)
			}
		}
		if g.keys.pressed(ebiten.KeyK) {
			g.toMenu()
		}
	}
	return nil
}

// Layout fixes the logical screen to the playfield plus the feed panel.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Window.Width) + feedPanelWidth, int(g.cfg.Window.Height)
}
