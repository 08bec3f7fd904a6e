package agents

import "github.com/Garsondee/Asteroid-Sense/internal/game"

// Dumb spins right and fires every tick, keeping a tally of its rewards.
type Dumb struct {
	points int
}

// NewDumb returns a dumb agent with no points.
func NewDumb() *Dumb { return &Dumb{} }

func (d *Dumb) PerceptionKind() game.PerceptionKind { return game.PerceptionVector }

func (d *Dumb) Perceive(game.Perception) {}

func (d *Dumb) Decide() []game.Action {
	return []game.Action{game.ActionTurnRight, game.ActionFire}
}

// ReceiveReward adds the tick's reward to the tally.
func (d *Dumb) ReceiveReward(reward int) { d.points += reward }

// Points is the reward collected so far.
func (d *Dumb) Points() int { return d.points }
