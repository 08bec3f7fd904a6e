package agents

import (
	"math"

	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

// aimReach is how far ahead of and behind the nose the aiming line runs.
const aimReach = 100.0

// Reactive turns toward the nearest asteroid and fires once it sits on the
// line running out of the nose.
type Reactive struct {
	ship   game.ShipState
	target game.AsteroidState
	hasAim bool
}

// NewReactive returns a reactive agent with no target.
func NewReactive() *Reactive { return &Reactive{} }

func (r *Reactive) PerceptionKind() game.PerceptionKind { return game.PerceptionVector }

// Perceive remembers the ship and the asteroid closest to it.
func (r *Reactive) Perceive(p game.Perception) {
	r.ship = p.Ship
	r.hasAim = false
	best := math.Inf(1)
	for _, a := range p.Asteroids {
		d, err := game.Distance(a.Pos.Slice(), p.Ship.Pos.Slice())
		if err != nil {
			continue
		}
		if d < best {
			best = d
			r.target = a
			r.hasAim = true
		}
	}
}

// Decide fires when on target, otherwise turns toward it.
func (r *Reactive) Decide() []game.Action {
	if !r.hasAim {
		return []game.Action{game.ActionStopTurn}
	}
	nose := r.ship.Nose()
	ahead, err := game.PointAtOffset(nose.Slice(), r.ship.Pos.Slice(), aimReach)
	if err != nil {
		return nil
	}
	behind, err := game.PointAtOffset(nose.Slice(), r.ship.Pos.Slice(), -aimReach)
	if err != nil {
		return nil
	}
	if onFiringLine(nose.Slice(), ahead, r.target) {
		return []game.Action{game.ActionStopTurn, game.ActionFire}
	}
	from := game.Vec2{X: behind[0], Y: behind[1]}
	to := game.Vec2{X: ahead[0], Y: ahead[1]}
	if game.IsLeftTurn(from, to, r.target.Pos) {
		return []game.Action{game.ActionTurnLeft}
	}
	return []game.Action{game.ActionTurnRight}
}

// onFiringLine reports whether the detour nose→asteroid→ahead is within one
// radius of the straight run nose→ahead.
func onFiringLine(nose, ahead []float64, a game.AsteroidState) bool {
	centre := a.Pos.Slice()
	toRock, err := game.Distance(nose, centre)
	if err != nil {
		return false
	}
	fromRock, err := game.Distance(ahead, centre)
	if err != nil {
		return false
	}
	straight, err := game.Distance(nose, ahead)
	if err != nil {
		return false
	}
	detour := toRock + fromRock
	return detour >= straight-a.Radius && detour <= straight+a.Radius
}
