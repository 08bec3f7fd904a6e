// Package tui is a terminal spectator: it runs rounds with a computer pilot
// and draws them with tcell.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

// RoundFactory builds the next round to watch.
type RoundFactory func() (*game.Round, error)

// Spectator drives rounds at a fixed tick rate and draws each tick.
type Spectator struct {
	screen   tcell.Screen
	newRound RoundFactory
	chime    Chime
	limiter  *rate.Limiter
	logger   *zap.Logger

	round     *game.Round
	lastScore int
	report    *game.RoundReport // set once the current round is over
	rounds    int
}

// NewSpectator wires a spectator. chime may be nil for silence.
func NewSpectator(screen tcell.Screen, newRound RoundFactory, tickRate int, chime Chime, logger *zap.Logger) (*Spectator, error) {
	if tickRate <= 0 {
		return nil, errors.New("tick rate must be positive")
	}
	if chime == nil {
		chime = SilentChime{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Spectator{
		screen:   screen,
		newRound: newRound,
		chime:    chime,
		limiter:  rate.NewLimiter(rate.Every(time.Second/time.Duration(tickRate)), 1),
		logger:   logger.Named("tui"),
	}
	if err := s.restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Rounds is how many rounds have been started.
func (s *Spectator) Rounds() int { return s.rounds }

// Round is the round being watched.
func (s *Spectator) Round() *game.Round { return s.round }

func (s *Spectator) restart() error {
	r, err := s.newRound()
	if err != nil {
		return err
	}
	s.round = r
	s.lastScore = r.Score()
	s.report = nil
	s.rounds++
	s.logger.Info("watching round", zap.String("round", r.ID().String()), zap.Int("number", s.rounds))
	return nil
}

// step advances the round one tick and rings the chime on a score.
func (s *Spectator) step() {
	if s.report != nil {
		return
	}
	s.round.Step()
	if score := s.round.Score(); score > s.lastScore {
		s.chime.Hit()
		s.lastScore = score
	}
	if s.round.State() == game.RoundOver {
		rep := s.round.Report()
		s.report = &rep
		s.logger.Info("round over", zap.String("report", rep.String()))
	}
}

// handleKey applies one key press. It reports false when the viewer quits.
func (s *Spectator) handleKey(key tcell.Key, r rune) (bool, error) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, nil
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false, nil
		case 'p', 'P':
			if s.report == nil {
				s.round.TogglePause()
			}
		case 'r', 'R':
			if s.report != nil {
				if err := s.restart(); err != nil {
					return false, err
				}
			}
		}
	}
	return true, nil
}

func (s *Spectator) draw() {
	if s.report != nil {
		RenderReport(s.screen, *s.report)
	} else {
		Render(s.screen, s.round.Snapshot(), "")
	}
	s.screen.Show()
}

// Run polls input and advances the round until the viewer quits or ctx is
// done. The caller owns the screen and finalises it afterwards.
func (s *Spectator) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		// Wait fails only when ctx is done or its deadline is too close.
		if err := s.limiter.Wait(ctx); err != nil {
			return nil
		}
		for pending := true; pending; {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					keep, err := s.handleKey(ev.Key(), ev.Rune())
					if err != nil || !keep {
						return err
					}
				case *tcell.EventResize:
					s.screen.Sync()
				}
			default:
				pending = false
			}
		}
		s.step()
		s.draw()
	}
}
