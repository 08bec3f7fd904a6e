package game

import "math"

// wrapMargin is how far past a window edge a ship may drift before it
// reappears on the opposite side.
const wrapMargin = 10.0

// TurnState is the ship's current rotation command.
type TurnState int

const (
	TurnStationary TurnState = iota
	TurnLeft
	TurnRight
)

func (ts TurnState) String() string {
	switch ts {
	case TurnStationary:
		return "stationary"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoostState is whether the booster is firing.
type BoostState int

const (
	BoostOff BoostState = iota
	Boosting
)

func (bs BoostState) String() string {
	if bs == Boosting {
		return "boosting"
	}
	return "off"
}

// ShipSpec holds the fixed handling characteristics of a ship.
type ShipSpec struct {
	Height      float64 // nose-to-centre length
	TurnSpeed   float64 // radians per tick
	ThrustMax   float64
	ThrustIncr  float64 // thrust gained per boosting tick
	CanonSpeed  float64 // projectile launch speed
	ReloadTicks int     // minimum ticks between shots
}

// DefaultShipSpec returns the stock ship.
func DefaultShipSpec() ShipSpec {
	return ShipSpec{
		Height:      10,
		TurnSpeed:   0.1,
		ThrustMax:   2,
		ThrustIncr:  0.4,
		CanonSpeed:  20,
		ReloadTicks: 15,
	}
}

// Ship is a player or agent controlled triangle.
type Ship struct {
	Pos    Vec2
	Vel    Vec2
	Facing float64 // radians, [0, 2π)
	Thrust float64
	Turn   TurnState
	Boost  BoostState
	Spec   ShipSpec

	lastFire int
}

// NewShip places a stationary ship facing along +X at pos.
func NewShip(pos Vec2, spec ShipSpec) *Ship {
	return &Ship{
		Pos:      pos,
		Spec:     spec,
		lastFire: -spec.ReloadTicks,
	}
}

func (s *Ship) TurnLeft()  { s.Turn = TurnLeft }
func (s *Ship) TurnRight() { s.Turn = TurnRight }
func (s *Ship) StopTurn()  { s.Turn = TurnStationary }

func (s *Ship) StartBoost() { s.Boost = Boosting }
func (s *Ship) StopBoost()  { s.Boost = BoostOff }

// turn rotates the ship one tick according to its turn state.
func (s *Ship) turn() {
	switch s.Turn {
	case TurnLeft:
		s.Facing = wrapAngle(s.Facing + s.Spec.TurnSpeed)
	case TurnRight:
		s.Facing = wrapAngle(s.Facing - s.Spec.TurnSpeed)
	}
}

// applyThrust ramps thrust while boosting and pushes the velocity along the
// facing. Releasing the booster drops thrust to zero but keeps the drift.
func (s *Ship) applyThrust() {
	if s.Boost != Boosting {
		s.Thrust = 0
		return
	}
	s.Thrust = math.Min(s.Thrust+s.Spec.ThrustIncr, s.Spec.ThrustMax)
	s.Vel = s.Vel.Add(FromAngle(s.Facing, s.Thrust))
}

// integrate moves the ship and wraps it around a w×h window.
func (s *Ship) integrate(w, h float64) {
	s.Pos = s.Pos.Add(s.Vel)
	s.Pos.X = wrapCoord(s.Pos.X, w)
	s.Pos.Y = wrapCoord(s.Pos.Y, h)
}

func wrapCoord(c, limit float64) float64 {
	if c < -wrapMargin {
		return limit + wrapMargin
	}
	if c > limit+wrapMargin {
		return -wrapMargin
	}
	return c
}

// Update advances the ship by one tick inside a w×h window.
func (s *Ship) Update(w, h float64) {
	s.turn()
	s.applyThrust()
	s.integrate(w, h)
}

// CanFire reports whether the canon has reloaded at the given tick.
func (s *Ship) CanFire(tick int) bool {
	return tick-s.lastFire >= s.Spec.ReloadTicks
}

// Fire launches a particle from just ahead of the nose. It returns false when
// the canon is still reloading.
func (s *Ship) Fire(tick int) (*Particle, bool) {
	if !s.CanFire(tick) {
		return nil, false
	}
	s.lastFire = tick
	return &Particle{
		Pos: s.Pos.Add(FromAngle(s.Facing, 2*s.Spec.Height)),
		Vel: FromAngle(s.Facing, s.Spec.CanonSpeed),
	}, true
}

// State returns a read-only copy of the ship's kinematics.
func (s *Ship) State() ShipState {
	return ShipState{
		Pos:       s.Pos,
		Vel:       s.Vel,
		Facing:    s.Facing,
		Thrust:    s.Thrust,
		TurnSpeed: s.Spec.TurnSpeed,
		Height:    s.Spec.Height,
	}
}
