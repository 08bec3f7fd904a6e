package agents

import "github.com/Garsondee/Asteroid-Sense/internal/game"

// Idle never acts. It is a baseline for batch runs.
type Idle struct{}

func (Idle) PerceptionKind() game.PerceptionKind { return game.PerceptionNone }

func (Idle) Perceive(game.Perception) {}

func (Idle) Decide() []game.Action { return []game.Action{game.ActionNone} }
