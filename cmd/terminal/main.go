package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Garsondee/Asteroid-Sense/internal/agents"
	"github.com/Garsondee/Asteroid-Sense/internal/config"
	"github.com/Garsondee/Asteroid-Sense/internal/game"
	"github.com/Garsondee/Asteroid-Sense/internal/observability"
	"github.com/Garsondee/Asteroid-Sense/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := func(ctx context.Context, cfg *config.Config) error {
		return runSpectator(ctx, cfg, agents.Builtin())
	}
	if err := newRootCmd(run).ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("terminal spectator failed", zap.Error(err))
		observability.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd wires flags into a fresh viper so every run starts clean.
// run receives the loaded configuration.
func newRootCmd(run func(context.Context, *config.Config) error) *cobra.Command {
	v := config.NewViper()
	var cfgFile string
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:   "terminal",
		Short: "Watch a computer pilot play in the terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			loaded, err := config.FromViper(v)
			if err != nil {
				return err
			}
			cfg = loaded
			// The terminal belongs to tcell; log to the rotating file only.
			observability.Initialize(cfg.Logger, zapcore.AddSync(io.Discard))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer observability.Sync()
			return run(cmd.Context(), cfg)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./asteroids.yaml)")
	flags.String("agent", "reactive", "computer pilot to watch")
	flags.Bool("sound", true, "play a tone when the pilot scores")
	flags.Int64("seed", 1, "seed for the first round")
	if err := config.BindFlags(v, flags, map[string]string{
		"terminal.agent": "agent",
		"terminal.sound": "sound",
		"round.seed":     "seed",
	}); err != nil {
		panic(err)
	}
	return cmd
}

// roundFactory builds rounds flown by the named agent, bumping the seed
// between rounds so each one differs.
func roundFactory(cfg *config.Config, registry *agents.Registry, logger *zap.Logger) (tui.RoundFactory, error) {
	name := cfg.Terminal.Agent
	if name == agents.NameHuman {
		return nil, fmt.Errorf("agent %q needs the window frontend", name)
	}
	if _, err := registry.New(name); err != nil {
		return nil, err
	}
	seed := cfg.Round.Seed
	return func() (*game.Round, error) {
		a, err := registry.New(name)
		if err != nil {
			return nil, err
		}
		opts := append(cfg.RoundOptions(),
			game.WithSeed(seed),
			game.WithLogger(logger),
			game.WithAgent(name, a),
		)
		seed++
		return game.NewRound(opts...), nil
	}, nil
}

func runSpectator(ctx context.Context, cfg *config.Config, registry *agents.Registry) error {
	logger := observability.GetLogger()
	newRound, err := roundFactory(cfg, registry, logger)
	if err != nil {
		return err
	}

	var chime tui.Chime
	if cfg.Terminal.Sound {
		beeper := tui.NewBeeper()
		if err := beeper.Init(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer beeper.Close()
			chime = beeper
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	sp, err := tui.NewSpectator(screen, newRound, cfg.Window.TickRate, chime, logger)
	if err != nil {
		return err
	}
	return sp.Run(ctx)
}
