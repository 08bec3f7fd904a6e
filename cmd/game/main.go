package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Asteroid-Sense/internal/agents"
	"github.com/Garsondee/Asteroid-Sense/internal/config"
	"github.com/Garsondee/Asteroid-Sense/internal/observability"
	"github.com/Garsondee/Asteroid-Sense/internal/ui"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default ./asteroids.yaml)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	observability.InitializeLogger(cfg.Logger)
	defer observability.Sync()
	logger := observability.GetLogger()

	g := ui.New(cfg, agents.Builtin(), logger)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(cfg.Window.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game exited", zap.Error(err))
		observability.Sync()
		log.Fatal(err)
	}
}
